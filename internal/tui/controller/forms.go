package controller

import (
	"electrodes/internal/picker"
	"electrodes/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// stepFocus moves delta places through order, wrapping at both ends.
func stepFocus(order []model.Focus, current model.Focus, delta int) model.Focus {
	if len(order) == 0 {
		return current
	}
	idx := 0
	for i, f := range order {
		if f == current {
			idx = i
			break
		}
	}
	n := len(order)
	return order[((idx+delta)%n+n)%n]
}

// focusInput focuses ti when want is true and blurs it otherwise.
func focusInput(ti *textinput.Model, want bool) tea.Cmd {
	if want {
		return ti.Focus()
	}
	ti.Blur()
	return nil
}

func setWelcomeFocus(m *model.Model, f model.Focus) tea.Cmd {
	m.Welcome.Focus = f
	return focusInput(&m.Welcome.WorkerID, f == model.FocusWorkerID)
}

func setOnboardingFocus(m *model.Model, f model.Focus) tea.Cmd {
	form := &m.Onboarding
	form.Focus = f
	return tea.Batch(
		focusInput(&form.FirstName, f == model.FocusFirstName),
		focusInput(&form.LastName, f == model.FocusLastName),
	)
}

func handleWelcomeKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	form := &m.Welcome
	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, setWelcomeFocus(m, stepFocus(model.WelcomeFocusOrder, form.Focus, 1))
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, setWelcomeFocus(m, stepFocus(model.WelcomeFocusOrder, form.Focus, -1))
	case key.Matches(keyMsg, m.Keys.Enter):
		if form.Focus == model.FocusContinue {
			return navigateForward(m)
		}
		return m, setWelcomeFocus(m, stepFocus(model.WelcomeFocusOrder, form.Focus, 1))
	}

	var cmd tea.Cmd
	if form.WorkerID.Focused() {
		form.WorkerID, cmd = form.WorkerID.Update(keyMsg)
	}
	return m, cmd
}

func handleOnboardingKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	form := &m.Onboarding
	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, setOnboardingFocus(m, stepFocus(model.OnboardingFocusOrder, form.Focus, 1))
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, setOnboardingFocus(m, stepFocus(model.OnboardingFocusOrder, form.Focus, -1))
	case key.Matches(keyMsg, m.Keys.Enter):
		switch form.Focus {
		case model.FocusContinue:
			return navigateForward(m)
		case model.FocusWorkStation:
			openStationPicker(m)
			return m, nil
		default:
			return m, setOnboardingFocus(m, stepFocus(model.OnboardingFocusOrder, form.Focus, 1))
		}
	}

	var cmd tea.Cmd
	switch {
	case form.FirstName.Focused():
		form.FirstName, cmd = form.FirstName.Update(keyMsg)
	case form.LastName.Focused():
		form.LastName, cmd = form.LastName.Update(keyMsg)
	}
	return m, cmd
}

// openStationPicker resigns every text input before showing the chooser.
func openStationPicker(m *model.Model) {
	form := &m.Onboarding
	form.BlurInputs()
	form.Focus = model.FocusWorkStation
	form.Picker.Open()
	LogDebug(m, navigationSubsystem, "Work station picker opened")
}

func handlePickerKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	form := &m.Onboarding
	switch form.Picker.HandleKey(keyMsg.String()) {
	case picker.ActionSelected:
		LogInfo(navigationSubsystem, "Work station %s selected", form.WorkStation)
	case picker.ActionCancelled:
		LogDebug(m, navigationSubsystem, "Work station picker closed without a selection")
	}
	return m, nil
}

// updateFocusedInput forwards non-key messages such as cursor blinks to the
// text input that currently has focus.
func updateFocusedInput(m *model.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Screen {
	case model.ScreenWelcome:
		if m.Welcome.WorkerID.Focused() {
			m.Welcome.WorkerID, cmd = m.Welcome.WorkerID.Update(msg)
		}
	case model.ScreenOnboarding:
		switch {
		case m.Onboarding.FirstName.Focused():
			m.Onboarding.FirstName, cmd = m.Onboarding.FirstName.Update(msg)
		case m.Onboarding.LastName.Focused():
			m.Onboarding.LastName, cmd = m.Onboarding.LastName.Update(msg)
		}
	}
	return cmd
}

// navigateForward performs the Continue action. It never validates.
func navigateForward(m *model.Model) (*model.Model, tea.Cmd) {
	next, ok := m.Screen.Next()
	if !ok {
		return m, nil
	}
	from := m.Screen
	m.Screen = next
	if m.Session != nil {
		m.Session.Worker = m.Worker()
	}
	LogInfo(navigationSubsystem, "Continue: %s -> %s", from, next)

	switch next {
	case model.ScreenOnboarding:
		m.Welcome.WorkerID.Blur()
		return m, setOnboardingFocus(m, model.FocusFirstName)
	case model.ScreenTesting:
		m.Onboarding.BlurInputs()
		m.Onboarding.Picker.Hide()
		return m, enterTesting(m)
	}
	return m, nil
}
