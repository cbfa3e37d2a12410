package controller

import (
	"electrodes/internal/tui/model"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

const statusMessageDuration = 3 * time.Second

// handleKeyMsg applies global bindings first, then hands the key to the open
// overlay, the picker or the active screen.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	LogDebug(m, controllerSubsystem, "Key %q on %s (overlay %s)", keyMsg.String(), m.Screen, m.Overlay)

	if key.Matches(keyMsg, m.Keys.ForceQuit) {
		return quit(m)
	}

	switch m.Overlay {
	case model.OverlayLog:
		return handleLogOverlayKey(m, keyMsg)
	case model.OverlayHelp:
		switch {
		case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Help):
			m.Overlay = model.OverlayNone
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	if key.Matches(keyMsg, m.Keys.ToggleLog) {
		m.Overlay = model.OverlayLog
		m.LogViewport.GotoBottom()
		return m, nil
	}

	if m.Screen == model.ScreenOnboarding && m.Onboarding.Picker.Visible() {
		return handlePickerKey(m, keyMsg)
	}

	if !m.Typing() {
		switch {
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		case key.Matches(keyMsg, m.Keys.Help):
			m.Overlay = model.OverlayHelp
			return m, nil
		}
	}

	switch m.Screen {
	case model.ScreenWelcome:
		return handleWelcomeKey(m, keyMsg)
	case model.ScreenOnboarding:
		return handleOnboardingKey(m, keyMsg)
	case model.ScreenTesting:
		return handleTestingKey(m, keyMsg)
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.ToggleLog):
		m.Overlay = model.OverlayNone
		return m, nil
	case key.Matches(keyMsg, m.Keys.CopyLogs):
		return copyLogs(m)
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	}

	switch keyMsg.String() {
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd
	}
	return m, nil
}

func copyLogs(m *model.Model) (*model.Model, tea.Cmd) {
	if err := writeClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
		LogError(clipboardSubsystem, err, "Failed to copy logs")
		return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageDuration)
	}
	LogInfo(clipboardSubsystem, "Copied %d log lines", len(m.ActivityLog))
	return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageDuration)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.Quitting = true
	LogInfo(controllerSubsystem, "Quitting on %s", m.Screen)
	return m, tea.Quit
}
