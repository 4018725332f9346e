package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, root string) ([]entities.Environment, error)
}

// ScanCommand lists the virtual environments under a directory tree.
type ScanCommand struct {
	locator repositories.LocatorRepository
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(locator repositories.LocatorRepository) *ScanCommand {
	return &ScanCommand{locator: locator}
}

// Execute discovers and returns the environments under root.
func (it *ScanCommand) Execute(ctx context.Context, root string) ([]entities.Environment, error) {
	environments, err := it.locator.Discover(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover environments under %q: %w", root, err)
	}

	for _, env := range environments {
		logger.Infof("[scan] %s (%s)", env.Name, env.PythonPath)
	}
	return environments, nil
}
