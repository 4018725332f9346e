package entities

import "time"

// Environment is a discovered Python virtual environment.
type Environment struct {
	Name       string // Folder name of the environment root
	Path       string // Absolute path of the environment root
	PythonPath string // Full path to the python executable inside it
}

// EnvironmentReport is the per-environment audit row.
type EnvironmentReport struct {
	Name               string
	Path               string
	InterpreterVersion string
	Prefix             string
	LastAccess         time.Time
	CheckOutput        string // raw pip check output, merged streams
}

// InstalledPackage is one distribution installed in an environment.
// LastAccess and DaysSinceAccess come from the package folder's access time
// and are best-effort clues, not reliable usage data; both are zero when the
// folder could not be located.
type InstalledPackage struct {
	Name            string
	Version         string
	Location        string
	LastAccess      time.Time
	DaysSinceAccess float64
}
