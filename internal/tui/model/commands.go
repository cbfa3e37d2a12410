package model

import (
	"electrodes/pkg/logging"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next entry on ch. The controller
// re-issues it after every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// HighlightFrameCmd schedules frame of generation after one frame interval.
func HighlightFrameCmd(generation, frame, frames int, duration time.Duration) tea.Cmd {
	interval := FrameInterval(duration, frames)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return HighlightFrameMsg{Generation: generation, Frame: frame}
	})
}

// FrameInterval splits duration evenly across frames.
func FrameInterval(duration time.Duration, frames int) time.Duration {
	if frames <= 0 || duration <= 0 {
		return 0
	}
	return duration / time.Duration(frames)
}
