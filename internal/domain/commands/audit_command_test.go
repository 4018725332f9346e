//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/envfixer/internal/domain/commands"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
	doubles "github.com/rios0rios0/envfixer/test/infrastructure/repositorydoubles"
)

func TestAuditCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should write one environment row and its package rows", func(t *testing.T) {
		// given
		env := entities.Environment{Name: "venv", Path: "/envs/venv", PythonPath: "/envs/venv/bin/python"}
		envRepo := &doubles.SpyEnvironmentRepository{
			EnvironmentName: "venv",
			Interpreter:     "3.8.10",
			PrefixValue:     "/envs/venv",
			CheckOutputs:    [][]string{{"No broken requirements found."}},
			Installed: []entities.InstalledPackage{
				{Name: "requests", Version: "2.28.0"},
				{Name: "urllib3", Version: "2.0.0"},
			},
		}
		locator := &doubles.SpyLocatorRepository{Environments: []entities.Environment{env}}
		factory := &doubles.StubEnvironmentRepositoryFactory{Repository: envRepo}
		reports := &doubles.SpyReportRepository{}

		cmd := commands.NewAuditCommand(locator, factory, reports)

		// when
		err := cmd.Execute(context.Background(), commands.AuditOptions{
			Root:                  "/envs",
			PackageReportPath:     "packages.csv",
			EnvironmentReportPath: "envs.csv",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/envs"}, locator.DiscoveredRoots)
		require.Len(t, reports.EnvironmentRows, 1)
		assert.Equal(t, "3.8.10", reports.EnvironmentRows[0].InterpreterVersion)
		assert.Equal(t, "No broken requirements found.", reports.EnvironmentRows[0].CheckOutput)
		require.Len(t, reports.PackageRows, 2)
		assert.Equal(t, "requests", reports.PackageRows[0].Package.Name)
		assert.Equal(t, "packages.csv", reports.PackagePath)
		assert.Equal(t, "envs.csv", reports.EnvironmentPath)
	})

	t.Run("should still write the environment row when package listing fails", func(t *testing.T) {
		// given
		env := entities.Environment{Name: "broken", Path: "/envs/broken"}
		envRepo := &doubles.SpyEnvironmentRepository{
			EnvironmentName: "broken",
			InstalledErr:    errors.New("pip exploded"),
		}
		locator := &doubles.SpyLocatorRepository{Environments: []entities.Environment{env}}
		factory := &doubles.StubEnvironmentRepositoryFactory{Repository: envRepo}
		reports := &doubles.SpyReportRepository{}

		cmd := commands.NewAuditCommand(locator, factory, reports)

		// when
		err := cmd.Execute(context.Background(), commands.AuditOptions{
			Root:                  "/envs",
			PackageReportPath:     "packages.csv",
			EnvironmentReportPath: "envs.csv",
		})

		// then
		require.NoError(t, err)
		assert.Len(t, reports.EnvironmentRows, 1)
		assert.Empty(t, reports.PackageRows)
	})

	t.Run("should fail when no environments are found", func(t *testing.T) {
		// given
		locator := &doubles.SpyLocatorRepository{}
		factory := &doubles.StubEnvironmentRepositoryFactory{}
		reports := &doubles.SpyReportRepository{}

		cmd := commands.NewAuditCommand(locator, factory, reports)

		// when
		err := cmd.Execute(context.Background(), commands.AuditOptions{Root: "/empty"})

		// then
		require.Error(t, err)
		assert.Empty(t, factory.Requested)
	})

	t.Run("should propagate report write failures", func(t *testing.T) {
		// given
		env := entities.Environment{Name: "venv", Path: "/envs/venv"}
		locator := &doubles.SpyLocatorRepository{Environments: []entities.Environment{env}}
		factory := &doubles.StubEnvironmentRepositoryFactory{
			Repository: &doubles.SpyEnvironmentRepository{EnvironmentName: "venv"},
		}
		reports := &doubles.SpyReportRepository{
			PackageReportErr: errors.New("disk full"),
		}

		cmd := commands.NewAuditCommand(locator, factory, reports)

		// when
		err := cmd.Execute(context.Background(), commands.AuditOptions{
			Root:                  "/envs",
			PackageReportPath:     "packages.csv",
			EnvironmentReportPath: "envs.csv",
		})

		// then
		require.Error(t, err)
	})
}

func TestScanCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the discovered environments", func(t *testing.T) {
		// given
		expected := []entities.Environment{
			{Name: "venv-a", Path: "/envs/venv-a"},
			{Name: "venv-b", Path: "/envs/venv-b"},
		}
		locator := &doubles.SpyLocatorRepository{Environments: expected}

		cmd := commands.NewScanCommand(locator)

		// when
		environments, err := cmd.Execute(context.Background(), "/envs")

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, environments)
		assert.Equal(t, []string{"/envs"}, locator.DiscoveredRoots)
	})

	t.Run("should wrap discovery failures", func(t *testing.T) {
		// given
		locator := &doubles.SpyLocatorRepository{DiscoverErr: errors.New("permission denied")}

		cmd := commands.NewScanCommand(locator)

		// when
		_, err := cmd.Execute(context.Background(), "/envs")

		// then
		require.Error(t, err)
	})
}
