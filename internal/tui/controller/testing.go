package controller

import (
	"electrodes/internal/sequencer"
	"electrodes/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// enterTesting paints the first step without animation.
func enterTesting(m *model.Model) tea.Cmd {
	m.Testing.Entered = true
	LogInfo(testingSubsystem, "Testing started for %s", m.Worker().Summary())
	return startHighlight(m, m.Testing.Sequencer.Initial())
}

func handleTestingKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Next) {
		return m, pressPrimary(m)
	}
	return m, nil
}

// pressPrimary handles the Next/Finish button. Finish has no transition.
func pressPrimary(m *model.Model) tea.Cmd {
	tr, ok := m.Testing.Sequencer.Advance()
	if !ok {
		LogDebug(m, testingSubsystem, "Finish pressed on %s; nothing to do", tr.To)
		return nil
	}

	LogInfo(testingSubsystem, "Step %s -> %s", tr.From, tr.To)
	cmds := []tea.Cmd{startHighlight(m, tr)}
	if tr.To == sequencer.StepAnalysing {
		cmds = append(cmds, m.Testing.Spinner.Tick)
	}
	return tea.Batch(cmds...)
}
