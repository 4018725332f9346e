package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/envfixer/internal/domain/commands"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// AuditController handles the "audit" subcommand.
type AuditController struct {
	command commands.Audit
}

// NewAuditController creates a new AuditController.
func NewAuditController(command commands.Audit) *AuditController {
	return &AuditController{command: command}
}

// GetBind returns the Cobra command metadata for the audit controller.
func (it *AuditController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "audit <root>",
		Short: "Audit every virtual environment under a directory",
		Long: `Audit every Python virtual environment found under a directory.

For each environment, captures the interpreter version, installation
prefix, installed packages with last-access staleness, and the raw
pip check output. Aggregates everything into two CSV reports: one row
per package and one row per environment.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute runs the audit over the tree at args[0].
func (it *AuditController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings := loadSettings(cmd)

	packagesOut := settings.Audit.PackageReportPath
	if cmd.Flags().Changed("packages-out") {
		packagesOut, _ = cmd.Flags().GetString("packages-out")
	}
	envsOut := settings.Audit.EnvironmentReportPath
	if cmd.Flags().Changed("envs-out") {
		envsOut, _ = cmd.Flags().GetString("envs-out")
	}

	if err := it.command.Execute(ctx, commands.AuditOptions{
		Root:                  args[0],
		PackageReportPath:     packagesOut,
		EnvironmentReportPath: envsOut,
	}); err != nil {
		logger.Errorf("Audit failed: %v", err)
	}
}

// AddFlags adds the audit-specific flags to the given Cobra command.
func (it *AuditController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("packages-out", "",
		"Path for the per-package CSV report (overrides config)")
	cmd.Flags().String("envs-out", "",
		"Path for the per-environment CSV report (overrides config)")
}
