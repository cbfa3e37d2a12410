// Package tui provides the terminal user interface for electrodes.
//
// The interface walks a worker through three screens in a fixed order:
// Welcome collects a worker ID, Onboarding collects a name and a work
// station, and Testing steps through the guided procedure. There is no way
// back to an earlier screen.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: Maintains application state
//   - View: Renders screens, overlays and the status bar
//   - Controller: Handles messages and key presses
//
// # Core Components
//
// Model (internal/tui/model/):
//   - Screen, overlay and focus state for each form
//   - The step sequencer and the highlight animation state
//   - The activity log fed from pkg/logging
//
// View (internal/tui/view/):
//   - One renderer per screen, plus help and log overlays
//   - Indicator colours are blended from the highlight progress
//
// Controller (internal/tui/controller/):
//   - Processes keyboard input and focus movement
//   - Drives the highlight animation with tick messages
//   - Creates the Bubble Tea program
//
// Components (internal/tui/components/) and the design system
// (internal/tui/design/) hold the reusable widgets and styles.
//
// # Key Bindings
//
//   - Tab/Shift+Tab: Move between fields
//   - Enter: Confirm a field, open the station picker or continue
//   - Enter/Space/n: Next step on the Testing screen
//   - ?: Toggle help (when no text field has focus)
//   - Ctrl+L: Toggle the activity log, y copies it
//   - q: Quit (when no text field has focus), Ctrl+C: Quit
//
// All state changes happen inside Update. Animation frames and spinner ticks
// arrive as messages, so nothing in this package needs its own locking.
package tui
