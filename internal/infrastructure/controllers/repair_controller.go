package controllers

import (
	"context"
	"fmt"
	"strconv"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/envfixer/internal/domain/commands"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
	"github.com/rios0rios0/envfixer/internal/infrastructure/repositories/venv"
)

// RepairController handles the "repair" subcommand.
type RepairController struct {
	command commands.Repair
	factory repositories.EnvironmentRepositoryFactory
}

// NewRepairController creates a new RepairController.
func NewRepairController(
	command commands.Repair,
	factory repositories.EnvironmentRepositoryFactory,
) *RepairController {
	return &RepairController{command: command, factory: factory}
}

// GetBind returns the Cobra command metadata for the repair controller.
func (it *RepairController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repair <env-path> [min-rounds]",
		Short: "Repair dependency inconsistencies in a virtual environment",
		Long: `Repair dependency inconsistencies in one Python virtual environment.

Runs pip check, parses its diagnostics, installs missing dependencies,
and replaces conflicting packages with versions guessed from the reported
requirement boundaries. Repeats until the environment converges, stops
improving, or the round budget runs out.

The command always exits successfully; residual conflicts are printed for
manual follow-up instead of being turned into an exit code.`,
		Args: cobra.RangeArgs(1, 2),
	}
}

// Execute runs one repair session against the environment at args[0].
func (it *RepairController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings := loadSettings(cmd)

	minRounds := settings.Repair.MinRounds
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed < 1 {
			logger.Errorf("invalid minimum round budget %q: expected a positive integer", args[1])
			return
		}
		minRounds = parsed
	}

	env, err := venv.Resolve(args[0], settings.PythonBinary)
	if err != nil {
		logger.Errorf("failed to resolve environment: %v", err)
		return
	}
	logger.Infof("[repair] target environment: %s (%s)", env.Name, env.PythonPath)

	upgradeOutdated := settings.Repair.UpgradeOutdated
	if cmd.Flags().Changed("upgrade-outdated") {
		upgradeOutdated, _ = cmd.Flags().GetBool("upgrade-outdated")
	}

	summary := it.command.Execute(ctx, it.factory.ForEnvironment(env), commands.RepairOptions{
		MinRounds:       minRounds,
		RoundBuffer:     settings.Repair.RoundBuffer,
		UpgradeOutdated: upgradeOutdated,
	})

	it.report(summary)
}

// report prints the session result and the final checker output.
func (it *RepairController) report(summary *entities.SessionSummary) {
	switch summary.Outcome {
	case entities.OutcomeConvergedNoIssues:
		logger.Infof(
			"[repair] environment is consistent after %d rounds",
			summary.RoundsExecuted,
		)
	case entities.OutcomeStalledNoImprovement:
		logger.Warnf(
			"[repair] stopped after %d rounds: conflict count stopped improving (%d remain)",
			summary.RoundsExecuted, summary.FinalConflicts,
		)
	case entities.OutcomeRoundBudgetExhausted:
		logger.Warnf(
			"[repair] round budget of %d exhausted with %d conflicts remaining",
			summary.RoundBudget, summary.FinalConflicts,
		)
	default:
		logger.Warnf("[repair] session ended in unexpected state %q", summary.Outcome)
	}

	if len(summary.FinalOutput) == 0 {
		return
	}
	fmt.Println("Final checker output:")
	for _, line := range summary.FinalOutput {
		fmt.Println("  " + line)
	}
}

// AddFlags adds the repair-specific flags to the given Cobra command.
func (it *RepairController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("upgrade-outdated", false,
		"After convergence, upgrade every outdated package")
}
