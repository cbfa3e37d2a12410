package model

import (
	"electrodes/internal/config"
	"electrodes/internal/picker"
	"electrodes/internal/session"
	"electrodes/internal/tui/design"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm / continue"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "n"),
			key.WithHelp("enter/space/n", "next step"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
	}
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxFieldLength
	ti.Width = design.FormWidth - 6
	ti.Prompt = ""
	return ti
}

// InitializeModel builds the model for a fresh session on the Welcome screen.
func InitializeModel(cfg TUIConfig) *Model {
	sess := cfg.Session
	if sess == nil {
		sess = session.New()
	}

	duration := cfg.HighlightDuration
	if duration <= 0 {
		duration = config.DefaultHighlightDuration
	}
	frames := cfg.HighlightFrames
	if frames <= 0 {
		frames = config.DefaultHighlightFrames
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	m := &Model{
		Screen:            ScreenWelcome,
		Overlay:           OverlayNone,
		DebugMode:         cfg.DebugMode,
		ColorMode:         cfg.ColorMode,
		Session:           sess,
		HighlightDuration: duration,
		HighlightFrames:   frames,
		ActivityLog:       []string{},
		LogViewport:       viewport.New(0, 0),
		Keys:              DefaultKeyMap(),
		Help:              help.New(),
		LogChannel:        cfg.LogChannel,
	}

	m.Welcome = WelcomeForm{
		WorkerID: newTextInput("Worker ID"),
		Focus:    FocusWorkerID,
	}
	m.Welcome.WorkerID.Focus()

	m.Onboarding = OnboardingForm{
		FirstName:  newTextInput("First name"),
		LastName:   newTextInput("Last name"),
		StationRow: -1,
		Focus:      FocusFirstName,
	}
	m.Onboarding.Picker = picker.New("Work station", picker.WorkStations{}, &m.Onboarding)

	m.Testing = TestingScreen{Spinner: s}

	return m
}

// Init implements the first half of tea.Model for the wrapped model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
