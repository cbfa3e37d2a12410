package config

import "time"

// Config is the top-level configuration structure for electrodes.
type Config struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	UI             UIConfig       `yaml:"ui"`
}

// GlobalSettings holds process-wide settings.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"`
}

// UIConfig tunes the terminal interface.
type UIConfig struct {
	// DarkMode forces the dark or light palette. Nil means detect.
	DarkMode *bool `yaml:"darkMode,omitempty"`
	// AltScreen runs the TUI in the terminal's alternate screen buffer.
	AltScreen *bool `yaml:"altScreen,omitempty"`
	// HighlightDuration is the length of the step indicator colour blend.
	HighlightDuration time.Duration `yaml:"highlightDuration,omitempty"`
	// HighlightFrames is how many ticks the blend is split into.
	HighlightFrames int `yaml:"highlightFrames,omitempty"`
}

// UseAltScreen reports whether the alternate screen should be used.
func (u UIConfig) UseAltScreen() bool {
	return u.AltScreen == nil || *u.AltScreen
}
