package config

import "time"

const (
	DefaultLogLevel          = "info"
	DefaultHighlightDuration = 600 * time.Millisecond
	DefaultHighlightFrames   = 12
)

// GetDefaultConfig returns the configuration used when nothing else is set.
func GetDefaultConfig() Config {
	return Config{
		GlobalSettings: GlobalSettings{
			LogLevel: DefaultLogLevel,
		},
		UI: UIConfig{
			HighlightDuration: DefaultHighlightDuration,
			HighlightFrames:   DefaultHighlightFrames,
		},
	}
}
