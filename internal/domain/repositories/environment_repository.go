package repositories

import (
	"context"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// EnvironmentRepository abstracts one Python environment's package manager.
// Every call blocks until the underlying tool finishes; callers issue them
// strictly sequentially because each install or uninstall can change the
// state the next call depends on.
type EnvironmentRepository interface {
	// Name returns a human-readable identifier for the environment.
	Name() string

	// RunConsistencyCheck invokes the dependency checker and returns its
	// merged standard output and error text, line-split. A non-empty result
	// with a non-zero tool exit is normal: the checker exits non-zero
	// whenever it finds issues.
	RunConsistencyCheck(ctx context.Context) ([]string, error)

	// InterpreterVersion returns the environment's interpreter version.
	InterpreterVersion(ctx context.Context) (string, error)

	// Prefix returns the environment's installation prefix.
	Prefix(ctx context.Context) (string, error)

	// InstallPackages installs or upgrades packages to their latest
	// resolvable versions.
	InstallPackages(ctx context.Context, names []string) error

	// InstallPackageAtVersion installs one package pinned to a version.
	InstallPackageAtVersion(ctx context.Context, name, version string) error

	// UninstallPackage removes one package.
	UninstallPackage(ctx context.Context, name string) error

	// BulkUpdateAll updates all packages to mutually-compatible latest
	// versions, best-effort.
	BulkUpdateAll(ctx context.Context) error

	// ListOutdatedPackages returns the names of packages with newer versions
	// available.
	ListOutdatedPackages(ctx context.Context) ([]string, error)

	// ListInstalledPackages returns every installed distribution with
	// best-effort last-access metadata.
	ListInstalledPackages(ctx context.Context) ([]entities.InstalledPackage, error)
}
