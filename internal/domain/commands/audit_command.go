package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// Audit is the interface for the audit command.
type Audit interface {
	Execute(ctx context.Context, opts AuditOptions) error
}

// AuditOptions holds runtime options for a single audit run.
type AuditOptions struct {
	Root                  string
	PackageReportPath     string
	EnvironmentReportPath string
}

// AuditCommand walks a directory tree for virtual environments and
// aggregates per-package and per-environment health data into two reports.
type AuditCommand struct {
	locator repositories.LocatorRepository
	factory repositories.EnvironmentRepositoryFactory
	reports repositories.ReportRepository
}

// NewAuditCommand creates a new AuditCommand.
func NewAuditCommand(
	locator repositories.LocatorRepository,
	factory repositories.EnvironmentRepositoryFactory,
	reports repositories.ReportRepository,
) *AuditCommand {
	return &AuditCommand{locator: locator, factory: factory, reports: reports}
}

// Execute discovers environments under the root and writes both reports.
// A broken environment still produces its environment row; only the rows
// that genuinely could not be collected are missing from the output.
func (it *AuditCommand) Execute(ctx context.Context, opts AuditOptions) error {
	environments, err := it.locator.Discover(ctx, opts.Root)
	if err != nil {
		return fmt.Errorf("failed to discover environments under %q: %w", opts.Root, err)
	}
	if len(environments) == 0 {
		return fmt.Errorf("no virtual environments found under %q", opts.Root)
	}

	logger.Infof("[audit] found %d environments under %s", len(environments), opts.Root)

	var packageRows []repositories.PackageRow
	var envRows []entities.EnvironmentReport

	for _, env := range environments {
		logger.Infof("[audit] processing %s at %s", env.Name, env.Path)
		repo := it.factory.ForEnvironment(env)

		envRow, pkgRows := it.inspect(ctx, repo, env)
		envRows = append(envRows, envRow)
		packageRows = append(packageRows, pkgRows...)
	}

	if writeErr := it.reports.WritePackageReport(opts.PackageReportPath, packageRows); writeErr != nil {
		return fmt.Errorf("failed to write package report: %w", writeErr)
	}
	if writeErr := it.reports.WriteEnvironmentReport(opts.EnvironmentReportPath, envRows); writeErr != nil {
		return fmt.Errorf("failed to write environment report: %w", writeErr)
	}

	logger.Infof(
		"[audit] reports written: %s (%d packages), %s (%d environments)",
		opts.PackageReportPath, len(packageRows),
		opts.EnvironmentReportPath, len(envRows),
	)
	return nil
}

// inspect collects one environment's metadata, package list, and checker
// output. Every collaborator failure is logged and leaves the corresponding
// fields blank instead of aborting the audit.
func (it *AuditCommand) inspect(
	ctx context.Context,
	repo repositories.EnvironmentRepository,
	env entities.Environment,
) (entities.EnvironmentReport, []repositories.PackageRow) {
	row := entities.EnvironmentReport{Name: env.Name, Path: env.Path}

	if info, statErr := os.Stat(env.Path); statErr == nil {
		row.LastAccess = info.ModTime()
	}

	interpreter, err := repo.InterpreterVersion(ctx)
	if err != nil {
		logger.Warnf("[audit] %s: could not determine interpreter version: %v", env.Name, err)
	}
	row.InterpreterVersion = interpreter

	prefix, err := repo.Prefix(ctx)
	if err != nil {
		logger.Warnf("[audit] %s: could not determine prefix: %v", env.Name, err)
	}
	row.Prefix = prefix

	lines, err := repo.RunConsistencyCheck(ctx)
	if err != nil {
		logger.Warnf("[audit] %s: consistency check failed: %v", env.Name, err)
	}
	row.CheckOutput = strings.Join(lines, "\n")

	packages, err := repo.ListInstalledPackages(ctx)
	if err != nil {
		logger.Warnf("[audit] %s: could not list packages: %v", env.Name, err)
		return row, nil
	}

	rows := make([]repositories.PackageRow, 0, len(packages))
	for _, pkg := range packages {
		rows = append(rows, repositories.PackageRow{
			Environment: env,
			Interpreter: interpreter,
			Prefix:      prefix,
			Package:     pkg,
		})
	}
	return row, rows
}
