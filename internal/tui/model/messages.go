package model

import (
	"electrodes/pkg/logging"
)

// NewLogEntryMsg carries one entry drained from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel has been closed.
type LogChannelClosedMsg struct{}

type ClearStatusBarMsg struct{}

// HighlightFrameMsg advances the indicator blend. Frames whose Generation no
// longer matches the model's are stale and dropped.
type HighlightFrameMsg struct {
	Generation int
	Frame      int
}
