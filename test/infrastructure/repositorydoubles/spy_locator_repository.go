//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// SpyLocatorRepository implements repositories.LocatorRepository as a
// configurable spy.
type SpyLocatorRepository struct {
	Environments []entities.Environment
	DiscoverErr  error
	// spy: roots that were searched
	DiscoveredRoots []string
}

var _ repositories.LocatorRepository = (*SpyLocatorRepository)(nil)

func (s *SpyLocatorRepository) Discover(
	_ context.Context,
	root string,
) ([]entities.Environment, error) {
	s.DiscoveredRoots = append(s.DiscoveredRoots, root)
	return s.Environments, s.DiscoverErr
}

// StubEnvironmentRepositoryFactory hands out a fixed repository for every
// environment and records which environments were requested.
type StubEnvironmentRepositoryFactory struct {
	Repository repositories.EnvironmentRepository
	// spy: environments a repository was built for
	Requested []entities.Environment
}

var _ repositories.EnvironmentRepositoryFactory = (*StubEnvironmentRepositoryFactory)(nil)

func (s *StubEnvironmentRepositoryFactory) ForEnvironment(
	env entities.Environment,
) repositories.EnvironmentRepository {
	s.Requested = append(s.Requested, env)
	return s.Repository
}

// SpyReportRepository implements repositories.ReportRepository as a spy.
type SpyReportRepository struct {
	PackageReportErr     error
	EnvironmentReportErr error
	// spy: what was written where
	PackagePath     string
	PackageRows     []repositories.PackageRow
	EnvironmentPath string
	EnvironmentRows []entities.EnvironmentReport
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) WritePackageReport(
	path string,
	rows []repositories.PackageRow,
) error {
	s.PackagePath = path
	s.PackageRows = rows
	return s.PackageReportErr
}

func (s *SpyReportRepository) WriteEnvironmentReport(
	path string,
	rows []entities.EnvironmentReport,
) error {
	s.EnvironmentPath = path
	s.EnvironmentRows = rows
	return s.EnvironmentReportErr
}
