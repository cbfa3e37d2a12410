package app

import (
	"context"
	"electrodes/internal/color"
	"electrodes/internal/session"
	"electrodes/internal/tui/controller"
	"electrodes/internal/tui/model"
	"electrodes/pkg/logging"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// For mocking in tests
var (
	runProgram = func(p *tea.Program) error {
		_, err := p.Run()
		return err
	}
	lookupEnv           = os.LookupEnv
	stderr    io.Writer = os.Stderr
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, sess *session.Session, level logging.LogLevel) error {
	ui := cfg.ElectrodesConfig.UI

	color.ApplyProfile(lookupEnv)
	isDark := color.DetectDarkMode(lookupEnv)
	if ui.DarkMode != nil {
		isDark = *ui.DarkMode
	}
	color.Initialize(isDark)
	colorMode := fmt.Sprintf("%s (Dark: %v)", color.ProfileName(), isDark)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()
	logging.SetSessionID(sess.ShortID())
	logging.Info("TUI-Lifecycle", "Session %s started, colour mode %s", sess.ShortID(), colorMode)

	tuiCfg := newTUIConfig(cfg, sess, level)
	tuiCfg.ColorMode = colorMode
	tuiCfg.LogChannel = logChan

	p := controller.NewProgram(tuiCfg, controller.ProgramOptions{
		AltScreen: ui.UseAltScreen() && !cfg.NoAltScreen,
		Context:   ctx,
	})

	// Run the TUI until user exits
	if err := runProgram(p); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if dropped := logging.Dropped(); dropped > 0 {
		fmt.Fprintf(stderr, "Note: %d log entries were dropped while the activity log was full.\n", dropped)
	}
	return nil
}

// newTUIConfig maps the application settings onto the model. Debug entries
// are shown whenever the resolved level is debug, whether that came from the
// flag, the config file or the environment.
func newTUIConfig(cfg *Config, sess *session.Session, level logging.LogLevel) model.TUIConfig {
	ui := cfg.ElectrodesConfig.UI
	return model.TUIConfig{
		DebugMode:         cfg.Debug || level == logging.LevelDebug,
		Session:           sess,
		HighlightDuration: ui.HighlightDuration,
		HighlightFrames:   ui.HighlightFrames,
	}
}
