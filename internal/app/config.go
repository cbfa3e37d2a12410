package app

import (
	"electrodes/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// UI mode
	NoAltScreen bool

	// ConfigPath is an extra file layered on top of the standard locations
	ConfigPath string

	// Loaded configuration, nil until NewApplication runs
	ElectrodesConfig *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug, noAltScreen bool, configPath string) *Config {
	return &Config{
		Debug:       debug,
		NoAltScreen: noAltScreen,
		ConfigPath:  configPath,
	}
}
