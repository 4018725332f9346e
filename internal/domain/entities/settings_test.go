//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "envfixer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Run("should fill defaults for omitted fields", func(t *testing.T) {
		// given
		path := writeConfig(t, "repair:\n  min_rounds: 10\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 10, settings.Repair.MinRounds)
		assert.Equal(t, 3, settings.Repair.RoundBuffer)
		assert.Equal(t, "envfixer_packages.csv", settings.Audit.PackageReportPath)
	})

	t.Run("should expand environment variables in paths", func(t *testing.T) {
		// given
		t.Setenv("REPORT_DIR", "/tmp/reports")
		path := writeConfig(t, "audit:\n  package_report: ${REPORT_DIR}/pkgs.csv\n  environment_report: envs.csv\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/reports/pkgs.csv", settings.Audit.PackageReportPath)
	})

	t.Run("should reject a non-positive minimum round budget", func(t *testing.T) {
		// given
		path := writeConfig(t, "repair:\n  min_rounds: 0\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should reject a negative round buffer", func(t *testing.T) {
		// given
		path := writeConfig(t, "repair:\n  min_rounds: 5\n  round_buffer: -1\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		// given / when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "absent.yaml"))

		// then
		require.Error(t, err)
	})
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should provide a usable configuration", func(t *testing.T) {
		// given / when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, 5, settings.Repair.MinRounds)
		assert.Equal(t, 3, settings.Repair.RoundBuffer)
		assert.False(t, settings.Repair.UpgradeOutdated)
		assert.NotEmpty(t, settings.Audit.PackageReportPath)
		assert.NotEmpty(t, settings.Audit.EnvironmentReportPath)
	})
}
