package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultRoundBuffer       = 3
	defaultMinRounds         = 5
	defaultPackageReport     = "envfixer_packages.csv"
	defaultEnvironmentReport = "envfixer_environments.csv"
)

// Settings is the top-level configuration for envfixer.
type Settings struct {
	// PythonBinary overrides the python executable used when a command is
	// given an environment root instead of an explicit interpreter path.
	PythonBinary string       `yaml:"python_binary"`
	Repair       RepairConfig `yaml:"repair"`
	Audit        AuditConfig  `yaml:"audit"`
}

// RepairConfig holds the repair-loop tuning knobs.
type RepairConfig struct {
	// MinRounds floors the dynamic round budget.
	MinRounds int `yaml:"min_rounds"`
	// RoundBuffer is added to the initial conflict count to form the budget.
	RoundBuffer int `yaml:"round_buffer"`
	// UpgradeOutdated enables the post-convergence outdated-package sweep.
	UpgradeOutdated bool `yaml:"upgrade_outdated"`
}

// AuditConfig holds the audit report output paths.
type AuditConfig struct {
	PackageReportPath     string `yaml:"package_report"`
	EnvironmentReportPath string `yaml:"environment_report"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Repair: RepairConfig{
			MinRounds:   defaultMinRounds,
			RoundBuffer: defaultRoundBuffer,
		},
		Audit: AuditConfig{
			PackageReportPath:     defaultPackageReport,
			EnvironmentReportPath: defaultEnvironmentReport,
		},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables in path values and filling defaults for omitted fields.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.PythonBinary = expandEnvVars(settings.PythonBinary)
	settings.Audit.PackageReportPath = expandEnvVars(settings.Audit.PackageReportPath)
	settings.Audit.EnvironmentReportPath = expandEnvVars(settings.Audit.EnvironmentReportPath)

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".envfixer.yaml",
		".envfixer.yml",
		"envfixer.yaml",
		"envfixer.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnvVars replaces ${VAR} references with their environment values.
func expandEnvVars(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for out-of-range configuration values.
func validate(settings *Settings) error {
	if settings.Repair.MinRounds < 1 {
		return fmt.Errorf(
			"repair.min_rounds must be at least 1, got %d",
			settings.Repair.MinRounds,
		)
	}
	if settings.Repair.RoundBuffer < 0 {
		return fmt.Errorf(
			"repair.round_buffer must not be negative, got %d",
			settings.Repair.RoundBuffer,
		)
	}
	if strings.TrimSpace(settings.Audit.PackageReportPath) == "" {
		return errors.New("audit.package_report must not be empty")
	}
	if strings.TrimSpace(settings.Audit.EnvironmentReportPath) == "" {
		return errors.New("audit.environment_report must not be empty")
	}
	return nil
}
