package app

import (
	"context"
	"electrodes/internal/config"
	"electrodes/internal/session"
	"electrodes/pkg/logging"
	"fmt"
	"os"
)

const bootstrapSubsystem = "Bootstrap"

// For mocking in tests
var loadConfig = config.LoadConfig

// Application is the main application structure that bootstraps and runs electrodes
type Application struct {
	config   *Config
	session  *session.Session
	logLevel logging.LogLevel
}

// NewApplication loads the configuration and prepares a fresh session.
func NewApplication(cfg *Config) (*Application, error) {
	// CLI logging until the TUI takes over the output
	bootLevel := logging.LevelWarn
	if cfg.Debug {
		bootLevel = logging.LevelDebug
	}
	logging.InitForCLI(bootLevel, os.Stderr)

	electrodesCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.ElectrodesConfig = &electrodesCfg

	level, err := ResolveLogLevel(electrodesCfg, cfg.Debug)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	logging.Debug(bootstrapSubsystem, "Created session %s", sess.ShortID())

	return &Application{
		config:   cfg,
		session:  sess,
		logLevel: level,
	}, nil
}

// ResolveLogLevel picks the activity log level. The debug flag overrides the
// configured level.
func ResolveLogLevel(cfg config.Config, debug bool) (logging.LogLevel, error) {
	if debug {
		return logging.LevelDebug, nil
	}
	level, err := logging.ParseLevel(cfg.GlobalSettings.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log level in configuration: %w", err)
	}
	return level, nil
}

// Session returns the session the application will run.
func (a *Application) Session() *session.Session {
	return a.session
}

// LogLevel returns the resolved activity log level.
func (a *Application) LogLevel() logging.LogLevel {
	return a.logLevel
}

// Run executes the application until the user quits or ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.session, a.logLevel)
}
