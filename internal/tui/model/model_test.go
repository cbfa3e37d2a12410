package model

import (
	"electrodes/internal/config"
	"electrodes/internal/session"
	"electrodes/pkg/logging"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeModel_Defaults(t *testing.T) {
	m := InitializeModel(TUIConfig{})

	assert.Equal(t, ScreenWelcome, m.Screen)
	assert.Equal(t, OverlayNone, m.Overlay)
	require.NotNil(t, m.Session)
	assert.NotEmpty(t, m.Session.ID)
	assert.Equal(t, config.DefaultHighlightDuration, m.HighlightDuration)
	assert.Equal(t, config.DefaultHighlightFrames, m.HighlightFrames)

	assert.True(t, m.Welcome.WorkerID.Focused(), "worker ID input should start focused")
	assert.Equal(t, FocusWorkerID, m.Welcome.Focus)
	assert.False(t, m.Onboarding.FirstName.Focused())
	assert.Equal(t, -1, m.Onboarding.StationRow)
	assert.Empty(t, m.Onboarding.WorkStation)

	require.NotNil(t, m.Onboarding.Picker)
	assert.False(t, m.Onboarding.Picker.Visible())
	assert.Equal(t, 10, m.Onboarding.Picker.Len())
	assert.Equal(t, 0, int(m.Testing.Sequencer.Current()))
}

func TestInitializeModel_UsesConfig(t *testing.T) {
	sess := session.New()
	m := InitializeModel(TUIConfig{
		DebugMode:         true,
		Session:           sess,
		HighlightDuration: 300 * time.Millisecond,
		HighlightFrames:   6,
	})

	assert.True(t, m.DebugMode)
	assert.Same(t, sess, m.Session)
	assert.Equal(t, 300*time.Millisecond, m.HighlightDuration)
	assert.Equal(t, 6, m.HighlightFrames)
}

func TestOnboardingPickerWritesIntoForm(t *testing.T) {
	m := InitializeModel(TUIConfig{})

	m.Onboarding.Picker.Open()
	require.True(t, m.Onboarding.Picker.Select(9))

	assert.Equal(t, "10", m.Onboarding.WorkStation)
	assert.Equal(t, 9, m.Onboarding.StationRow)
	assert.False(t, m.Onboarding.Picker.Visible())
	assert.Equal(t, "10", m.Worker().WorkStation)
}

func TestScreenNext(t *testing.T) {
	tests := []struct {
		from   Screen
		want   Screen
		wantOK bool
	}{
		{ScreenWelcome, ScreenOnboarding, true},
		{ScreenOnboarding, ScreenTesting, true},
		{ScreenTesting, ScreenTesting, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			got, ok := tt.from.Next()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTyping(t *testing.T) {
	m := InitializeModel(TUIConfig{})
	assert.True(t, m.Typing())

	m.Welcome.WorkerID.Blur()
	assert.False(t, m.Typing())

	m.Screen = ScreenOnboarding
	m.Onboarding.LastName.Focus()
	assert.True(t, m.Typing())
	m.Onboarding.BlurInputs()
	assert.False(t, m.Typing())

	m.Screen = ScreenTesting
	assert.False(t, m.Typing())
}

func TestHighlightProgress(t *testing.T) {
	tests := []struct {
		name      string
		h         Highlight
		want      float64
		animating bool
	}{
		{"no frames means settled", Highlight{}, 1, false},
		{"first frame", Highlight{Frame: 0, Frames: 4}, 0, true},
		{"midway", Highlight{Frame: 2, Frames: 4}, 0.5, true},
		{"done", Highlight{Frame: 4, Frames: 4}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.h.Progress(), 1e-9)
			assert.Equal(t, tt.animating, tt.h.Animating())
		})
	}
}

func TestSetStatusMessage(t *testing.T) {
	m := &Model{Width: 100}

	cmd1 := m.SetStatusMessage("First message", StatusBarSuccess, time.Second)
	assert.Equal(t, "First message", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)
	require.NotNil(t, m.StatusBarClearCancel)
	assert.NotNil(t, cmd1)
	first := m.StatusBarClearCancel

	cmd2 := m.SetStatusMessage("Second message", StatusBarError, time.Second)
	assert.Equal(t, "Second message", m.StatusBarMessage)
	assert.Equal(t, StatusBarError, m.StatusBarMessageType)
	assert.NotEqual(t, first, m.StatusBarClearCancel)
	assert.NotNil(t, cmd2)

	select {
	case <-first:
	default:
		t.Error("expected the first cancel channel to be closed")
	}
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}

	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestFormatLogEntry(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 4, 5, 6_000_000, time.UTC)

	line := FormatLogEntry(logging.LogEntry{
		Timestamp: ts,
		Level:     logging.LevelInfo,
		Subsystem: "Testing",
		Message:   "advanced",
	})
	assert.Equal(t, "13:04:05.006 [INFO] [Testing] advanced", line)

	line = FormatLogEntry(logging.LogEntry{
		Timestamp: ts,
		Level:     logging.LevelError,
		Subsystem: "Clipboard",
		Message:   "copy failed",
		Err:       errors.New("no xclip"),
	})
	assert.Equal(t, "13:04:05.006 [ERROR] [Clipboard] copy failed -- Error: no xclip", line)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entryMsg, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entryMsg.Entry.Message)

	close(ch)
	assert.IsType(t, LogChannelClosedMsg{}, ListenForLogEntriesCmd(ch)())
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, FrameInterval(600*time.Millisecond, 12))
	assert.Equal(t, time.Duration(0), FrameInterval(600*time.Millisecond, 0))
	assert.Equal(t, time.Duration(0), FrameInterval(0, 12))
}
