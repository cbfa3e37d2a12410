package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warning ", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTUIMode_DeliversEntries(t *testing.T) {
	ch := Initcommon("tui", LevelDebug, nil, 8)
	defer CloseTUIChannel()
	SetSessionID("abc123")
	defer SetSessionID("")

	Info("Sequencer", "advanced to %d", 2)
	Error("Clipboard", errors.New("no display"), "copy failed")

	first := <-ch
	assert.Equal(t, LevelInfo, first.Level)
	assert.Equal(t, "Sequencer", first.Subsystem)
	assert.Equal(t, "advanced to 2", first.Message)
	require.Len(t, first.Attributes, 1)
	assert.Equal(t, "session", first.Attributes[0].Key)
	assert.Equal(t, "abc123", first.Attributes[0].Value.String())

	second := <-ch
	assert.Equal(t, LevelError, second.Level)
	assert.EqualError(t, second.Err, "no display")
}

func TestTUIMode_FiltersBelowLevel(t *testing.T) {
	ch := Initcommon("tui", LevelInfo, nil, 4)
	defer CloseTUIChannel()

	Debug("Controller", "hidden")
	Warn("Controller", "shown")

	entry := <-ch
	assert.Equal(t, "shown", entry.Message)
	assert.Len(t, ch, 0)
}

func TestTUIMode_DropsWhenFull(t *testing.T) {
	ch := Initcommon("tui", LevelDebug, nil, 1)
	defer CloseTUIChannel()

	Info("Test", "one")
	Info("Test", "two")
	Info("Test", "three")

	assert.Len(t, ch, 1)
	assert.Equal(t, 2, Dropped())
}

func TestCLIMode_WritesText(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("CLI", "not written")
	Info("CLI", "hello %s", "worker")

	out := buf.String()
	assert.Contains(t, out, "hello worker")
	assert.Contains(t, out, "subsystem=CLI")
	assert.NotContains(t, out, "not written")
}
