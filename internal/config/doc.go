// Package config provides configuration management for electrodes.
//
// Configuration is optional. Without any file or environment variable the app
// starts with the built-in defaults. When present, later sources override
// earlier ones.
//
// # Configuration Layers
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/electrodes/config.yaml)
//  3. Project configuration (./.electrodes/config.yaml)
//  4. An explicit file passed with --config
//  5. Environment variables, optionally read from ./.env
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info          # debug, info, warn, error
//	ui:
//	  darkMode: true          # omit to auto-detect
//	  altScreen: true
//	  highlightDuration: 600ms
//	  highlightFrames: 12
//
// # Environment Variables
//
//   - ELECTRODES_LOG_LEVEL overrides globalSettings.logLevel
//   - ELECTRODES_DARK_MODE overrides ui.darkMode (any strconv.ParseBool value)
//   - ELECTRODES_HIGHLIGHT_DURATION overrides ui.highlightDuration
//
// The step procedure and the work-station list are fixed and cannot be
// configured.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.UI.HighlightDuration)
package config
