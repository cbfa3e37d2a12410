// Package color handles terminal colour detection for electrodes.
//
// It decides whether the dark or light half of the adaptive palette in
// internal/tui/design is used and switches colour off entirely when NO_COLOR
// is set.
//
// # Detection
//
// The background is guessed from COLORFGBG ("15;0" style, background last),
// which most xterm-compatible terminals export. When that is missing the
// terminal is assumed to be dark. A configured ui.darkMode always wins.
//
// # Usage Example
//
//	isDark := color.DetectDarkMode(os.LookupEnv)
//	if cfg.UI.DarkMode != nil {
//	    isDark = *cfg.UI.DarkMode
//	}
//	color.Initialize(isDark)
//	color.ApplyProfile(os.LookupEnv)
package color
