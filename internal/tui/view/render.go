package view

import (
	"electrodes/internal/tui/components"
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "electrodes"

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Quitting {
		return design.TextSecondaryStyle.Render("Goodbye.") + "\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}

	switch m.Overlay {
	case model.OverlayHelp:
		return renderHelpOverlay(m)
	case model.OverlayLog:
		return renderLogOverlay(m)
	}

	contentWidth := m.Width - design.AppStyle.GetHorizontalFrameSize()
	if contentWidth < design.MinPanelWidth {
		contentWidth = design.MinPanelWidth
	}

	header := renderHeader(m, contentWidth)
	statusBar := renderStatusBar(m, contentWidth)

	layout := components.NewLayout(contentWidth, m.Height-design.AppStyle.GetVerticalFrameSize())
	bodyHeight := layout.CalculateContentArea(lipgloss.Height(header), lipgloss.Height(statusBar))

	var body string
	switch m.Screen {
	case model.ScreenWelcome:
		body = renderWelcome(m)
	case model.ScreenOnboarding:
		body = renderOnboarding(m)
	case model.ScreenTesting:
		body = renderTesting(m, contentWidth)
	}

	body = components.CenterContent(contentWidth, bodyHeight, body)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return design.AppStyle.Render(components.JoinVertical(header, body, statusBar))
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader(appTitle).
		WithSubtitle(m.Screen.String()).
		WithWidth(width)
	if m.Screen == model.ScreenTesting {
		h = h.WithRightContent(m.Worker().Summary())
	}
	return h.Render()
}

func renderStatusBar(m *model.Model, width int) string {
	bar := components.NewStatusBar(width).
		WithLeftText(components.FormatScreenInfo(m.Screen, m.Session.ShortID())).
		WithRightText(m.Keys.Help.Help().Key + " help")
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}
