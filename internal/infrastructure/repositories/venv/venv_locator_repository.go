// Package venv discovers Python virtual environments on disk.
package venv

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// pythonCandidates are the interpreter locations that identify a directory
// as a virtual environment. Both flavors are probed regardless of the host
// platform, so Windows-created environments on shared storage are found too.
var pythonCandidates = []string{
	filepath.Join("bin", "python"),
	filepath.Join("Scripts", "python.exe"),
}

// VenvLocatorRepository implements repositories.LocatorRepository by walking
// the filesystem.
type VenvLocatorRepository struct{}

var _ repositories.LocatorRepository = (*VenvLocatorRepository)(nil)

// NewVenvLocatorRepository creates a new VenvLocatorRepository.
func NewVenvLocatorRepository() *VenvLocatorRepository {
	return &VenvLocatorRepository{}
}

// Discover walks root and returns every directory containing a python
// executable in an expected location. A discovered environment's subtree is
// pruned from the walk so nested interpreter copies are not reported twice.
func (r *VenvLocatorRepository) Discover(
	ctx context.Context,
	root string,
) ([]entities.Environment, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	var environments []entities.Environment

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Debugf("[scan] skipping %s: %v", path, err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !entry.IsDir() {
			return nil
		}

		python, found := findPython(path)
		if !found {
			return nil
		}

		environments = append(environments, entities.Environment{
			Name:       filepath.Base(path),
			Path:       path,
			PythonPath: python,
		})
		return fs.SkipDir
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, walkErr)
	}

	return environments, nil
}

// findPython probes a directory for an environment-local interpreter.
func findPython(dir string) (string, bool) {
	for _, candidate := range pythonCandidates {
		full := filepath.Join(dir, candidate)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			return full, true
		}
	}
	return "", false
}

// Resolve turns a CLI path argument into an Environment. The path may be the
// environment root or the interpreter executable itself; pythonBinary, when
// set, overrides the interpreter looked up inside an environment root.
func Resolve(path, pythonBinary string) (entities.Environment, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return entities.Environment{}, fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return entities.Environment{}, fmt.Errorf("cannot access %q: %w", path, err)
	}

	if !info.IsDir() {
		// The argument is the interpreter itself.
		envRoot := filepath.Dir(filepath.Dir(abs))
		return entities.Environment{
			Name:       filepath.Base(envRoot),
			Path:       envRoot,
			PythonPath: abs,
		}, nil
	}

	if pythonBinary != "" {
		override := pythonBinary
		if !filepath.IsAbs(override) {
			override = filepath.Join(abs, override)
		}
		if _, statErr := os.Stat(override); statErr != nil {
			return entities.Environment{}, fmt.Errorf(
				"configured python binary not found at %q: %w", override, statErr,
			)
		}
		return entities.Environment{
			Name:       filepath.Base(abs),
			Path:       abs,
			PythonPath: override,
		}, nil
	}

	python, found := findPython(abs)
	if !found {
		return entities.Environment{}, fmt.Errorf(
			"no python executable found under %q (expected %s or %s)",
			path, pythonCandidates[0], pythonCandidates[1],
		)
	}

	return entities.Environment{
		Name:       filepath.Base(abs),
		Path:       abs,
		PythonPath: python,
	}, nil
}
