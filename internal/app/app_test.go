package app

import (
	"bytes"
	"context"
	"electrodes/internal/config"
	"electrodes/internal/tui/controller"
	"electrodes/internal/tui/model"
	"electrodes/pkg/logging"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockLoad(t *testing.T, cfg config.Config, err error) *string {
	t.Helper()
	orig := loadConfig
	t.Cleanup(func() { loadConfig = orig })

	var gotPath string
	loadConfig = func(path string) (config.Config, error) {
		gotPath = path
		return cfg, err
	}
	return &gotPath
}

func mockRun(t *testing.T, run func(*tea.Program) error) *bytes.Buffer {
	t.Helper()
	origRun, origLookup, origStderr := runProgram, lookupEnv, stderr
	t.Cleanup(func() {
		runProgram, lookupEnv, stderr = origRun, origLookup, origStderr
	})

	var buf bytes.Buffer
	runProgram = run
	lookupEnv = func(key string) (string, bool) {
		if key == "NO_COLOR" {
			return "1", true
		}
		return "", false
	}
	stderr = &buf
	return &buf
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, true, "extra.yaml")

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.NoAltScreen)
	assert.Equal(t, "extra.yaml", cfg.ConfigPath)
	assert.Nil(t, cfg.ElectrodesConfig, "ElectrodesConfig should be nil before loading")
}

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		debug     bool
		wantLevel logging.LogLevel
		wantErr   bool
	}{
		{name: "default level", logLevel: "", wantLevel: logging.LevelInfo},
		{name: "configured level", logLevel: "warn", wantLevel: logging.LevelWarn},
		{name: "debug flag wins", logLevel: "error", debug: true, wantLevel: logging.LevelDebug},
		{name: "debug flag hides a bad level", logLevel: "loud", debug: true, wantLevel: logging.LevelDebug},
		{name: "invalid level", logLevel: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.GetDefaultConfig()
			cfg.GlobalSettings.LogLevel = tt.logLevel

			level, err := ResolveLogLevel(cfg, tt.debug)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestNewApplication(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.GlobalSettings.LogLevel = "warn"
	gotPath := mockLoad(t, cfg, nil)

	appCfg := NewConfig(false, false, "extra.yaml")
	application, err := NewApplication(appCfg)
	require.NoError(t, err)

	assert.Equal(t, "extra.yaml", *gotPath)
	require.NotNil(t, appCfg.ElectrodesConfig)
	assert.Equal(t, "warn", appCfg.ElectrodesConfig.GlobalSettings.LogLevel)
	assert.Equal(t, logging.LevelWarn, application.LogLevel())
	require.NotNil(t, application.Session())
	assert.NotEmpty(t, application.Session().ID)
}

func TestNewApplication_ConfigError(t *testing.T) {
	mockLoad(t, config.Config{}, errors.New("bad yaml"))

	_, err := NewApplication(NewConfig(false, false, "broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "bad yaml")
}

func TestNewApplication_InvalidLogLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.GlobalSettings.LogLevel = "loud"
	mockLoad(t, cfg, nil)

	_, err := NewApplication(NewConfig(false, false, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRun(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.UI.HighlightDuration = 100 * time.Millisecond
	mockLoad(t, cfg, nil)

	ran := false
	out := mockRun(t, func(p *tea.Program) error {
		require.NotNil(t, p)
		ran = true
		return nil
	})

	application, err := NewApplication(NewConfig(true, true, ""))
	require.NoError(t, err)
	require.NoError(t, application.Run(context.Background()))

	assert.True(t, ran)
	assert.Empty(t, out.String(), "nothing should be dropped")
}

func TestRun_ProgramError(t *testing.T) {
	mockLoad(t, config.GetDefaultConfig(), nil)
	mockRun(t, func(*tea.Program) error {
		return errors.New("no tty")
	})

	application, err := NewApplication(NewConfig(false, false, ""))
	require.NoError(t, err)

	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error running TUI")
	assert.Contains(t, err.Error(), "no tty")
}

func TestNewTUIConfig_DebugFromResolvedLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		debugFlag     bool
		wantDebugMode bool
		wantDebugLine bool
	}{
		{name: "info level hides debug", logLevel: "info"},
		{name: "config debug level", logLevel: "debug", wantDebugMode: true, wantDebugLine: true},
		{name: "debug flag", logLevel: "warn", debugFlag: true, wantDebugMode: true, wantDebugLine: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.GetDefaultConfig()
			cfg.GlobalSettings.LogLevel = tt.logLevel
			mockLoad(t, cfg, nil)

			application, err := NewApplication(NewConfig(tt.debugFlag, false, ""))
			require.NoError(t, err)

			tuiCfg := newTUIConfig(application.config, application.Session(), application.LogLevel())
			assert.Equal(t, tt.wantDebugMode, tuiCfg.DebugMode)

			logChan := logging.InitForTUI(application.LogLevel())
			defer logging.CloseTUIChannel()
			logging.Debug("Testing", "step details")

			m := model.InitializeModel(tuiCfg)
			select {
			case entry := <-logChan:
				m, _ = controller.Update(model.NewLogEntryMsg{Entry: entry}, m)
			default:
			}

			if tt.wantDebugLine {
				require.Len(t, m.ActivityLog, 1)
				assert.Contains(t, m.ActivityLog[0], "[DEBUG] [Testing] step details")
			} else {
				assert.Empty(t, m.ActivityLog)
			}
		})
	}
}
