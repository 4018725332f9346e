package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewRepairController); err != nil {
		return err
	}
	if err := container.Provide(NewAuditController); err != nil {
		return err
	}
	if err := container.Provide(NewScanController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppContext.
func NewControllers(
	repairController *RepairController,
	auditController *AuditController,
	scanController *ScanController,
) *[]entities.Controller {
	return &[]entities.Controller{
		repairController,
		auditController,
		scanController,
	}
}
