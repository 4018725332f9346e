package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// loadSettings resolves the configuration for a command invocation. A
// missing or broken config file is never fatal; the defaults keep the
// session going and the problem is logged for the operator.
func loadSettings(cmd *cobra.Command) *entities.Settings {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings()
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		logger.Warnf("Failed to load config %q, using defaults: %v", cfgPath, err)
		return entities.DefaultSettings()
	}
	return settings
}
