package controller

import (
	"electrodes/internal/sequencer"
	"electrodes/internal/tui/model"
	"electrodes/internal/tui/view"
	"electrodes/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the single entry point for every message the program receives.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes msg to its handler and then refreshes the log
// viewport if new lines arrived or its width changed.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LogChannelClosedMsg:
		m.LogChannel = nil

	case model.HighlightFrameMsg:
		cmds = append(cmds, handleHighlightFrame(m, msg))

	case spinner.TickMsg:
		// The spinner only runs while its label is on screen; dropping the
		// tick here stops the loop.
		if m.Screen == model.ScreenTesting && m.Testing.Sequencer.Current() == sequencer.StepAnalysing {
			m.Testing.Spinner, cmd = m.Testing.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		// Cursor blinks and other widget-internal messages.
		cmds = append(cmds, updateFocusedInput(m, msg))
	}

	refreshLogViewport(m)

	return m, tea.Batch(cmds...)
}

func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}

	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(entry))
	}
	return m
}

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// resizes the widgets that depend on them.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.LogViewport.Width, m.LogViewport.Height = view.LogOverlaySize(msg.Width, msg.Height)
	return m, nil
}
