package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/electrodes"
	projectConfigDir = ".electrodes"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"

	EnvLogLevel          = "ELECTRODES_LOG_LEVEL"
	EnvDarkMode          = "ELECTRODES_DARK_MODE"
	EnvHighlightDuration = "ELECTRODES_HIGHLIGHT_DURATION"
)

// LoadConfig layers the default, user, project and explicit configuration and
// then applies environment overrides. explicitPath may be empty; when set, the
// file must exist.
func LoadConfig(explicitPath string) (Config, error) {
	cfg := GetDefaultConfig()

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	layers := []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	}
	for _, layer := range layers {
		path, err := layer.path()
		if err != nil {
			// Optional layer; a missing home or working dir is not fatal.
			fmt.Fprintf(os.Stderr, "Warning: Could not determine %s config path: %v\n", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		cfg = mergeConfigs(cfg, overlay)
	}

	if explicitPath != "" {
		overlay, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		cfg = mergeConfigs(cfg, overlay)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return normalize(cfg), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadDotEnv reads ./.env into the process environment. Variables that are
// already set keep their value.
func loadDotEnv() error {
	wd, err := osGetwd()
	if err != nil {
		return nil
	}
	path := filepath.Join(wd, dotEnvFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.UI.DarkMode != nil {
		v := *overlay.UI.DarkMode
		merged.UI.DarkMode = &v
	}
	if overlay.UI.AltScreen != nil {
		v := *overlay.UI.AltScreen
		merged.UI.AltScreen = &v
	}
	if overlay.UI.HighlightDuration != 0 {
		merged.UI.HighlightDuration = overlay.UI.HighlightDuration
	}
	if overlay.UI.HighlightFrames != 0 {
		merged.UI.HighlightFrames = overlay.UI.HighlightFrames
	}

	return merged
}

func applyEnvOverrides(cfg *Config) error {
	if v, ok := osLookupEnv(EnvLogLevel); ok && v != "" {
		cfg.GlobalSettings.LogLevel = v
	}
	if v, ok := osLookupEnv(EnvDarkMode); ok && v != "" {
		dark, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDarkMode, v, err)
		}
		cfg.UI.DarkMode = &dark
	}
	if v, ok := osLookupEnv(EnvHighlightDuration); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvHighlightDuration, v, err)
		}
		cfg.UI.HighlightDuration = d
	}
	return nil
}

// normalize replaces out-of-range animation settings with defaults.
func normalize(cfg Config) Config {
	if cfg.UI.HighlightDuration < 0 {
		cfg.UI.HighlightDuration = DefaultHighlightDuration
	}
	if cfg.UI.HighlightFrames <= 0 {
		cfg.UI.HighlightFrames = DefaultHighlightFrames
	}
	return cfg
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
