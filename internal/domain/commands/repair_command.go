package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/envfixer/internal/domain/diagnostics"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// Repair is the interface for the repair command.
type Repair interface {
	Execute(
		ctx context.Context,
		repo repositories.EnvironmentRepository,
		opts RepairOptions,
	) *entities.SessionSummary
}

// RepairOptions holds runtime options for a single repair session.
type RepairOptions struct {
	// MinRounds floors the dynamic round budget.
	MinRounds int
	// RoundBuffer is added to the initial conflict count to form the budget.
	RoundBuffer int
	// UpgradeOutdated enables the post-convergence outdated-package sweep.
	UpgradeOutdated bool
}

// RepairCommand runs the check -> parse -> fix -> bulk-update loop against
// one environment until it converges, stalls, or runs out of rounds.
//
// Nothing here is fatal: collaborator failures are logged and the session
// moves on, because partial progress across rounds is still valuable and the
// final checker output is always reported for manual follow-up.
type RepairCommand struct{}

// NewRepairCommand creates a new RepairCommand.
func NewRepairCommand() *RepairCommand {
	return &RepairCommand{}
}

// Execute runs one full repair session. The returned summary carries the
// terminal outcome and the last checker output; it never signals an error
// because residual conflicts are expected terminal states, not failures.
func (it *RepairCommand) Execute(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	opts RepairOptions,
) *entities.SessionSummary {
	budget := it.computeBudget(ctx, repo, opts)
	logger.Infof("[repair] %s: round budget is %d", repo.Name(), budget)

	state := entities.NewRoundState()
	summary := &entities.SessionSummary{
		Outcome:     entities.OutcomeRunning,
		RoundBudget: budget,
	}

	for {
		round := state.RoundNumber + 1
		lines, checkErr := repo.RunConsistencyCheck(ctx)
		if checkErr != nil {
			logger.Warnf("[repair] round %d: consistency check failed: %v", round, checkErr)
		}
		summary.FinalOutput = lines

		extraction := diagnostics.Extract(lines)
		state.Observe(len(extraction.Conflicts))
		summary.FinalConflicts = state.ConflictCount
		summary.RoundsExecuted = round

		logger.Infof(
			"[repair] round %d: %d missing, %d conflicting",
			round, len(extraction.Missing), state.ConflictCount,
		)

		if state.ConflictCount == 0 && len(extraction.Missing) == 0 {
			summary.Outcome = entities.OutcomeConvergedNoIssues
			it.sweepOutdated(ctx, repo, opts)
			return summary
		}

		if state.ConflictCount > 0 && !state.Improved() {
			logger.Warnf(
				"[repair] round %d: no improvement over previous round (%d conflicts), stopping",
				round, state.ConflictCount,
			)
			summary.Outcome = entities.OutcomeStalledNoImprovement
			return summary
		}

		it.installMissing(ctx, repo, extraction)
		it.applyConflictFixes(ctx, repo, extraction)

		if updateErr := repo.BulkUpdateAll(ctx); updateErr != nil {
			logger.Warnf("[repair] round %d: bulk update failed: %v", round, updateErr)
		}

		state.Advance()
		if state.RoundNumber > budget {
			summary.Outcome = entities.OutcomeRoundBudgetExhausted
			return summary
		}
	}
}

// computeBudget issues the initial diagnostic query (not counted as a round)
// and derives the dynamic round budget from the conflict count it observes.
func (it *RepairCommand) computeBudget(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	opts RepairOptions,
) int {
	lines, err := repo.RunConsistencyCheck(ctx)
	if err != nil {
		logger.Warnf("[repair] initial consistency check failed: %v", err)
	}

	budget := len(diagnostics.Extract(lines).Conflicts) + opts.RoundBuffer
	if budget < opts.MinRounds {
		budget = opts.MinRounds
	}
	return budget
}

// installMissing installs the deduplicated missing dependencies in one call.
func (it *RepairCommand) installMissing(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	extraction diagnostics.Extraction,
) {
	names := extraction.MissingNames()
	if len(names) == 0 {
		return
	}

	logger.Infof("[repair] installing %d missing dependencies: %v", len(names), names)
	if err := repo.InstallPackages(ctx, names); err != nil {
		logger.Warnf("[repair] failed to install missing dependencies: %v", err)
	}
}

// applyConflictFixes computes and dispatches the fix for every applicable
// conflict, one at a time in extraction order. Each fix can change the state
// the next one depends on, so there is no parallelism here.
func (it *RepairCommand) applyConflictFixes(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	extraction diagnostics.Extraction,
) {
	liveVersion := it.resolveInterpreterVersion(ctx, repo, extraction)

	for _, conflict := range extraction.Conflicts {
		action := PlanFix(conflict, liveVersion)
		if !action.ShouldApply {
			logger.Infof(
				"[repair] skipping %s: condition %q does not hold",
				conflict.Dependency, conflict.Condition,
			)
			continue
		}

		logger.Infof(
			"[repair] fixing %s: %s%s%s required, have %s, requesting %s",
			conflict.Dependency, conflict.Dependency, conflict.Operator,
			conflict.RequiredVersion, conflict.ActualVersion, action.TargetVersion,
		)

		if err := repo.UninstallPackage(ctx, action.Dependency); err != nil {
			logger.Warnf("[repair] failed to uninstall %s: %v", action.Dependency, err)
		}
		if err := repo.InstallPackageAtVersion(ctx, action.Dependency, action.TargetVersion); err != nil {
			logger.Warnf(
				"[repair] failed to install %s==%s: %v",
				action.Dependency, action.TargetVersion, err,
			)
		}
	}
}

// resolveInterpreterVersion queries the live interpreter version once per
// round, and only when some conflict actually carries a condition. An empty
// result makes every genuine condition evaluate false (fail closed).
func (it *RepairCommand) resolveInterpreterVersion(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	extraction diagnostics.Extraction,
) string {
	needed := false
	for _, conflict := range extraction.Conflicts {
		if conflict.Condition != "" {
			needed = true
			break
		}
	}
	if !needed {
		return ""
	}

	version, err := repo.InterpreterVersion(ctx)
	if err != nil {
		logger.Warnf("[repair] could not determine interpreter version: %v", err)
		return ""
	}
	return version
}

// sweepOutdated optionally upgrades every outdated package after the
// environment has converged.
func (it *RepairCommand) sweepOutdated(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	opts RepairOptions,
) {
	if !opts.UpgradeOutdated {
		return
	}

	names, err := repo.ListOutdatedPackages(ctx)
	if err != nil {
		logger.Warnf("[repair] failed to list outdated packages: %v", err)
		return
	}
	if len(names) == 0 {
		logger.Info("[repair] no outdated packages to upgrade")
		return
	}

	logger.Infof("[repair] upgrading %d outdated packages", len(names))
	if installErr := repo.InstallPackages(ctx, names); installErr != nil {
		logger.Warnf("[repair] failed to upgrade outdated packages: %v", installErr)
	}
}

// PlanFix turns one conflict into a concrete repair action. The target is a
// guessed version string derived from the boundary; no package index is
// consulted.
func PlanFix(conflict entities.VersionConflict, liveVersion string) entities.RepairAction {
	boundary, err := entities.ParseVersion(conflict.RequiredVersion)
	if err != nil {
		// Grammar already validated the boundary; an unparsable one is a
		// malformed record and the fix is skipped.
		return entities.RepairAction{Dependency: conflict.Dependency, ShouldApply: false}
	}

	return entities.RepairAction{
		Dependency:    conflict.Dependency,
		TargetVersion: entities.FixTarget(conflict.Operator, boundary).String(),
		ShouldApply:   diagnostics.EvaluateCondition(conflict.Condition, liveVersion),
	}
}
