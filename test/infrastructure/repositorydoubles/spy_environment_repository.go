//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// PinnedInstall records a single InstallPackageAtVersion invocation.
type PinnedInstall struct {
	Name    string
	Version string
}

// SpyEnvironmentRepository implements repositories.EnvironmentRepository as
// a configurable spy. Configure the response fields for the methods your
// test exercises, then inspect the call-tracking fields to verify behavior.
type SpyEnvironmentRepository struct {
	// --- identity ---
	EnvironmentName string

	// --- RunConsistencyCheck ---
	// CheckOutputs is consumed one entry per call; the last entry is
	// repeated once exhausted.
	CheckOutputs [][]string
	CheckErr     error
	// spy: number of checks issued
	CheckCalls int

	// --- InterpreterVersion ---
	Interpreter    string
	InterpreterErr error
	// spy: number of version queries
	InterpreterCalls int

	// --- Prefix ---
	PrefixValue string
	PrefixErr   error

	// --- InstallPackages ---
	InstallErr error
	// spy: each call's name slice
	InstallCalls [][]string

	// --- InstallPackageAtVersion ---
	InstallAtVersionErr error
	// spy: pinned installs received
	PinnedInstalls []PinnedInstall

	// --- UninstallPackage ---
	UninstallErr error
	// spy: names uninstalled
	Uninstalled []string

	// --- BulkUpdateAll ---
	BulkUpdateErr error
	// spy: number of bulk updates
	BulkUpdateCalls int

	// --- ListOutdatedPackages ---
	Outdated    []string
	OutdatedErr error
	// spy: number of outdated listings
	OutdatedCalls int

	// --- ListInstalledPackages ---
	Installed    []entities.InstalledPackage
	InstalledErr error
}

var _ repositories.EnvironmentRepository = (*SpyEnvironmentRepository)(nil)

func (s *SpyEnvironmentRepository) Name() string { return s.EnvironmentName }

func (s *SpyEnvironmentRepository) RunConsistencyCheck(_ context.Context) ([]string, error) {
	index := s.CheckCalls
	s.CheckCalls++
	if s.CheckErr != nil {
		return nil, s.CheckErr
	}
	if len(s.CheckOutputs) == 0 {
		return nil, nil
	}
	if index >= len(s.CheckOutputs) {
		index = len(s.CheckOutputs) - 1
	}
	return s.CheckOutputs[index], nil
}

func (s *SpyEnvironmentRepository) InterpreterVersion(_ context.Context) (string, error) {
	s.InterpreterCalls++
	return s.Interpreter, s.InterpreterErr
}

func (s *SpyEnvironmentRepository) Prefix(_ context.Context) (string, error) {
	return s.PrefixValue, s.PrefixErr
}

func (s *SpyEnvironmentRepository) InstallPackages(_ context.Context, names []string) error {
	s.InstallCalls = append(s.InstallCalls, names)
	return s.InstallErr
}

func (s *SpyEnvironmentRepository) InstallPackageAtVersion(
	_ context.Context,
	name, version string,
) error {
	s.PinnedInstalls = append(s.PinnedInstalls, PinnedInstall{Name: name, Version: version})
	return s.InstallAtVersionErr
}

func (s *SpyEnvironmentRepository) UninstallPackage(_ context.Context, name string) error {
	s.Uninstalled = append(s.Uninstalled, name)
	return s.UninstallErr
}

func (s *SpyEnvironmentRepository) BulkUpdateAll(_ context.Context) error {
	s.BulkUpdateCalls++
	return s.BulkUpdateErr
}

func (s *SpyEnvironmentRepository) ListOutdatedPackages(_ context.Context) ([]string, error) {
	s.OutdatedCalls++
	return s.Outdated, s.OutdatedErr
}

func (s *SpyEnvironmentRepository) ListInstalledPackages(
	_ context.Context,
) ([]entities.InstalledPackage, error) {
	return s.Installed, s.InstalledErr
}
