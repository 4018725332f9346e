package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/envfixer/internal/domain/repositories"
	"github.com/rios0rios0/envfixer/internal/infrastructure/repositories/pip"
	"github.com/rios0rios0/envfixer/internal/infrastructure/repositories/report"
	"github.com/rios0rios0/envfixer/internal/infrastructure/repositories/venv"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(pip.NewFactory); err != nil {
		return err
	}
	if err := container.Provide(venv.NewVenvLocatorRepository); err != nil {
		return err
	}
	if err := container.Provide(report.NewCSVReportRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *pip.Factory) domainRepos.EnvironmentRepositoryFactory {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *venv.VenvLocatorRepository) domainRepos.LocatorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *report.CSVReportRepository) domainRepos.ReportRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
