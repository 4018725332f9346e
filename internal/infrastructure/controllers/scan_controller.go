package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/envfixer/internal/domain/commands"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan <root>",
		Short: "List the virtual environments under a directory",
		Long: `Recursively search a directory for Python virtual environments.

A directory counts as an environment when it contains a python
executable in the expected location (bin/python on Unix-like systems,
Scripts\python.exe on Windows). Subdirectories of a found environment
are not searched.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute lists the environments under args[0].
func (it *ScanController) Execute(_ *cobra.Command, args []string) {
	ctx := context.Background()

	environments, err := it.command.Execute(ctx, args[0])
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}

	if len(environments) == 0 {
		fmt.Printf("No virtual environments found under %s\n", args[0])
		return
	}

	fmt.Printf("Found %d virtual environments:\n", len(environments))
	for _, env := range environments {
		fmt.Printf("  %s\t%s\n", env.Name, env.Path)
	}
}
