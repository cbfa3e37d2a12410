package view

import (
	"electrodes/internal/sequencer"
	"electrodes/internal/tui/components"
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/model"
)

const resultPanelHeight = 7

func renderTesting(m *model.Model, width int) string {
	screen := &m.Testing
	step := screen.Sequencer.View()

	indicators := components.NewIndicators(sequencer.IndicatorCount, step.Highlighted).
		WithProgress(indicatorProgress(screen.Highlight, step.Highlighted)).
		Render()

	parts := []string{indicators, ""}

	if step.StepLabel != "" {
		parts = append(parts, design.TitleStyle.Render(step.StepLabel))
	}
	if step.Description != "" {
		description := step.Description
		if screen.Sequencer.Current() == sequencer.StepAnalysing {
			description = screen.Spinner.View() + " " + description
		}
		parts = append(parts, design.SubtitleStyle.Width(design.FormWidth).Render(description))
	}

	button := components.NewButton(step.ButtonLabel).
		WithWidth(design.FormWidth).
		SetFocused(true).
		Render()
	parts = append(parts, button)

	if step.RevealResults {
		parts = append(parts, "", renderResultPanels(width))
	}

	return components.JoinVertical(parts...)
}

// indicatorProgress reports how far the highlighted pill has blended. A
// highlight that belongs to another indicator is treated as settled.
func indicatorProgress(h model.Highlight, highlighted int) float64 {
	if h.Indicator != highlighted {
		return 1
	}
	return h.Progress()
}

func renderResultPanels(width int) string {
	panelWidth := design.FormWidth/2 - design.SpaceXS
	if half, _ := components.NewLayout(width, 0).SplitVertical(design.SpaceSM); half < panelWidth {
		panelWidth = half
	}

	left := components.NewPanel().
		WithType(components.PanelTypeResult).
		WithDimensions(panelWidth, resultPanelHeight).
		Render()
	right := components.NewPanel().
		WithType(components.PanelTypeResult).
		WithDimensions(panelWidth, resultPanelHeight).
		Render()

	return components.JoinHorizontal(design.SpaceSM, left, right)
}
