package model

import (
	"electrodes/internal/picker"
	"electrodes/internal/sequencer"
	"electrodes/internal/session"
	"electrodes/pkg/logging"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one step of the forward-only flow.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenOnboarding
	ScreenTesting
)

// String provides a human-readable representation of the Screen.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "Welcome"
	case ScreenOnboarding:
		return "Onboarding"
	case ScreenTesting:
		return "Testing"
	default:
		return "Unknown"
	}
}

// Next returns the screen that Continue leads to. Testing has no successor.
func (s Screen) Next() (Screen, bool) {
	switch s {
	case ScreenWelcome:
		return ScreenOnboarding, true
	case ScreenOnboarding:
		return ScreenTesting, true
	default:
		return s, false
	}
}

// Overlay is drawn on top of whichever screen is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayLog
)

func (o Overlay) String() string {
	switch o {
	case OverlayHelp:
		return "Help"
	case OverlayLog:
		return "Log"
	default:
		return "None"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Focus identifies a focusable widget on a form screen.
type Focus int

const (
	FocusWorkerID Focus = iota
	FocusFirstName
	FocusLastName
	FocusWorkStation
	FocusContinue
)

func (f Focus) String() string {
	switch f {
	case FocusWorkerID:
		return "WorkerID"
	case FocusFirstName:
		return "FirstName"
	case FocusLastName:
		return "LastName"
	case FocusWorkStation:
		return "WorkStation"
	case FocusContinue:
		return "Continue"
	default:
		return "Unknown"
	}
}

// Tab order per form screen.
var (
	WelcomeFocusOrder    = []Focus{FocusWorkerID, FocusContinue}
	OnboardingFocusOrder = []Focus{FocusFirstName, FocusLastName, FocusWorkStation, FocusContinue}
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	maxFieldLength      = 64
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Enter     key.Binding
	Esc       key.Binding
	Next      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	ToggleLog key.Binding
	CopyLogs  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. Each inner slice renders as a column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter, k.Esc},
		{k.Up, k.Down, k.Next},
		{k.Help, k.ToggleLog, k.CopyLogs, k.Quit, k.ForceQuit},
	}
}

// WelcomeForm collects the worker identifier.
type WelcomeForm struct {
	WorkerID textinput.Model
	Focus    Focus
}

// OnboardingForm collects the worker's name and station. It is the picker's
// SelectionListener.
type OnboardingForm struct {
	FirstName   textinput.Model
	LastName    textinput.Model
	WorkStation string
	StationRow  int
	Picker      *picker.Picker
	Focus       Focus
}

// OnSelect writes the chosen station into the work-station field.
func (f *OnboardingForm) OnSelect(row int, label string) {
	f.StationRow = row
	f.WorkStation = label
}

// BlurInputs resigns focus from every text input on the form.
func (f *OnboardingForm) BlurInputs() {
	f.FirstName.Blur()
	f.LastName.Blur()
}

// Highlight tracks the colour blend of the current step indicator.
type Highlight struct {
	Indicator  int
	Generation int
	Frame      int
	Frames     int
}

// Progress returns how far the blend has run, from 0 to 1.
func (h Highlight) Progress() float64 {
	if h.Frames <= 0 || h.Frame >= h.Frames {
		return 1
	}
	if h.Frame <= 0 {
		return 0
	}
	return float64(h.Frame) / float64(h.Frames)
}

// Animating reports whether frames are still outstanding.
func (h Highlight) Animating() bool {
	return h.Frames > 0 && h.Frame < h.Frames
}

// TestingScreen drives the guided procedure.
type TestingScreen struct {
	Sequencer sequencer.Sequencer
	Highlight Highlight
	Spinner   spinner.Model
	Entered   bool
}

// TUIConfig carries everything the model needs from the command line.
type TUIConfig struct {
	DebugMode         bool
	ColorMode         string
	Session           *session.Session
	HighlightDuration time.Duration
	HighlightFrames   int
	LogChannel        <-chan logging.LogEntry
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	Screen    Screen
	Overlay   Overlay
	Quitting  bool
	DebugMode bool
	ColorMode string

	Session *session.Session

	Welcome    WelcomeForm
	Onboarding OnboardingForm
	Testing    TestingScreen

	HighlightDuration time.Duration
	HighlightFrames   int

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Typing reports whether a text input currently has keyboard focus, in which
// case printable keys belong to the input rather than to shortcuts.
func (m *Model) Typing() bool {
	switch m.Screen {
	case ScreenWelcome:
		return m.Welcome.WorkerID.Focused()
	case ScreenOnboarding:
		return m.Onboarding.FirstName.Focused() || m.Onboarding.LastName.Focused()
	default:
		return false
	}
}

// Worker returns the details collected so far.
func (m *Model) Worker() session.Worker {
	return session.Worker{
		ID:          m.Welcome.WorkerID.Value(),
		FirstName:   m.Onboarding.FirstName.Value(),
		LastName:    m.Onboarding.LastName.Value(),
		WorkStation: m.Onboarding.WorkStation,
	}
}

// SetStatusMessage shows message in the status bar and returns a command that
// clears it after clearAfter. A newer message cancels the pending clear.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
