package pip

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

const hoursPerDay = 24

// PipEnvironmentRepository implements repositories.EnvironmentRepository by
// exec-ing the environment's own interpreter with `-m pip`. Every call
// blocks until pip finishes; no per-call timeout is applied.
type PipEnvironmentRepository struct {
	env          entities.Environment
	versionCache *lru.Cache[string, string]
}

var _ repositories.EnvironmentRepository = (*PipEnvironmentRepository)(nil)

func (r *PipEnvironmentRepository) Name() string { return r.env.Name }

// RunConsistencyCheck runs `pip check` and returns its merged output
// line-split. pip check exits non-zero whenever it finds issues, so a
// non-empty output suppresses the exit error; only an empty-handed failure
// is reported as one.
func (r *PipEnvironmentRepository) RunConsistencyCheck(ctx context.Context) ([]string, error) {
	output, err := runMerged(ctx, r.env.PythonPath, "-m", "pip", "check")
	lines := splitLines(output)
	if err != nil && len(lines) == 0 {
		return nil, fmt.Errorf("pip check produced no output: %w", err)
	}
	return lines, nil
}

// InterpreterVersion returns the environment's interpreter version, cached
// per interpreter path so repeated rounds and multi-environment audits do
// not re-exec python for a value that cannot change mid-session.
func (r *PipEnvironmentRepository) InterpreterVersion(ctx context.Context) (string, error) {
	if cached, ok := r.versionCache.Get(r.env.PythonPath); ok {
		return cached, nil
	}

	output, err := run(ctx, r.env.PythonPath, "-c", "import sys; print(sys.version.split()[0])")
	if err != nil {
		return "", fmt.Errorf("failed to query interpreter version: %w", err)
	}
	if output == "" {
		return "", fmt.Errorf("interpreter at %s reported an empty version", r.env.PythonPath)
	}

	r.versionCache.Add(r.env.PythonPath, output)
	return output, nil
}

// Prefix returns the environment's installation prefix (sys.prefix).
func (r *PipEnvironmentRepository) Prefix(ctx context.Context) (string, error) {
	output, err := run(ctx, r.env.PythonPath, "-c", "import sys; print(sys.prefix)")
	if err != nil {
		return "", fmt.Errorf("failed to query prefix: %w", err)
	}
	return output, nil
}

// InstallPackages installs or upgrades packages to their latest resolvable
// versions. The upgrade flag makes the call effective for already-installed
// distributions as well as missing ones.
func (r *PipEnvironmentRepository) InstallPackages(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	args := append([]string{"-m", "pip", "install", "--upgrade"}, names...)
	output, err := runMerged(ctx, r.env.PythonPath, args...)
	if err != nil {
		return fmt.Errorf("pip install failed: %w: %s", err, lastLine(output))
	}
	return nil
}

// InstallPackageAtVersion installs one package pinned to an exact version.
func (r *PipEnvironmentRepository) InstallPackageAtVersion(
	ctx context.Context,
	name, version string,
) error {
	requirement := fmt.Sprintf("%s==%s", name, version)
	output, err := runMerged(ctx, r.env.PythonPath, "-m", "pip", "install", requirement)
	if err != nil {
		return fmt.Errorf("pip install %s failed: %w: %s", requirement, err, lastLine(output))
	}
	return nil
}

// UninstallPackage removes one package without prompting.
func (r *PipEnvironmentRepository) UninstallPackage(ctx context.Context, name string) error {
	output, err := runMerged(ctx, r.env.PythonPath, "-m", "pip", "uninstall", "-y", name)
	if err != nil {
		return fmt.Errorf("pip uninstall %s failed: %w: %s", name, err, lastLine(output))
	}
	return nil
}

// BulkUpdateAll upgrades every outdated package in one pip invocation,
// best-effort. An environment with nothing outdated is a no-op.
func (r *PipEnvironmentRepository) BulkUpdateAll(ctx context.Context) error {
	names, err := r.ListOutdatedPackages(ctx)
	if err != nil {
		return err
	}
	return r.InstallPackages(ctx, names)
}

// pipListEntry is one row of `pip list --format=json` output.
type pipListEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListOutdatedPackages returns the names of packages pip reports as outdated.
func (r *PipEnvironmentRepository) ListOutdatedPackages(ctx context.Context) ([]string, error) {
	entries, err := r.pipList(ctx, true)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names, nil
}

// ListInstalledPackages returns every installed distribution, enriched with
// the best-effort last-access clue from the package folder under
// site-packages. A package whose folder cannot be located keeps zero access
// fields; that is a clue gap, not an error.
func (r *PipEnvironmentRepository) ListInstalledPackages(
	ctx context.Context,
) ([]entities.InstalledPackage, error) {
	entries, err := r.pipList(ctx, false)
	if err != nil {
		return nil, err
	}

	sitePackages, siteErr := r.sitePackagesDir(ctx)
	if siteErr != nil {
		logger.Warnf("[pip] %s: could not locate site-packages: %v", r.env.Name, siteErr)
	}

	now := time.Now()
	packages := make([]entities.InstalledPackage, 0, len(entries))
	for _, entry := range entries {
		pkg := entities.InstalledPackage{
			Name:     entry.Name,
			Version:  entry.Version,
			Location: sitePackages,
		}
		if sitePackages != "" {
			// Distribution folders use underscores where project names
			// use hyphens.
			folder := filepath.Join(sitePackages, strings.ReplaceAll(entry.Name, "-", "_"))
			if info, statErr := os.Stat(folder); statErr == nil {
				pkg.LastAccess = info.ModTime()
				days := now.Sub(info.ModTime()).Hours() / hoursPerDay
				pkg.DaysSinceAccess = math.Round(days*100) / 100
			}
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// pipList runs `pip list --format=json`, optionally restricted to outdated
// packages, and decodes the result.
func (r *PipEnvironmentRepository) pipList(
	ctx context.Context,
	outdated bool,
) ([]pipListEntry, error) {
	args := []string{"-m", "pip", "list", "--format=json"}
	if outdated {
		args = append(args, "--outdated")
	}

	output, err := run(ctx, r.env.PythonPath, args...)
	if err != nil {
		return nil, fmt.Errorf("pip list failed: %w", err)
	}

	var entries []pipListEntry
	if decodeErr := json.Unmarshal([]byte(output), &entries); decodeErr != nil {
		return nil, fmt.Errorf("failed to parse pip list output: %w", decodeErr)
	}
	return entries, nil
}

// sitePackagesDir asks the interpreter for its purelib path.
func (r *PipEnvironmentRepository) sitePackagesDir(ctx context.Context) (string, error) {
	return run(
		ctx, r.env.PythonPath,
		"-c", "import sysconfig; print(sysconfig.get_paths()['purelib'])",
	)
}

// lastLine returns the final line of tool output, which is where pip puts
// its error summary.
func lastLine(output string) string {
	lines := splitLines(output)
	if len(lines) == 0 {
		return "(no output)"
	}
	return lines[len(lines)-1]
}
