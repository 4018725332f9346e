package repositories

import (
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// PackageRow pairs an installed package with the environment it belongs to.
type PackageRow struct {
	Environment entities.Environment
	Interpreter string
	Prefix      string
	Package     entities.InstalledPackage
}

// ReportRepository persists the audit results.
type ReportRepository interface {
	WritePackageReport(path string, rows []PackageRow) error
	WriteEnvironmentReport(path string, rows []entities.EnvironmentReport) error
}
