package view

import (
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

// renderHelpOverlay lists every key binding in columns.
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	// Width stays 0: a set width makes FullHelpView drop whole columns.
	helpModel := m.Help
	helpModel.Width = 0
	helpView := helpModel.FullHelpView(m.Keys.FullHelp())

	container := design.CenteredOverlayContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, titleView, helpView),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

// LogOverlaySize returns the viewport dimensions that fit the log overlay in
// a terminal of the given size.
func LogOverlaySize(width, height int) (int, int) {
	titleHeight := lipgloss.Height(design.LogPanelTitleStyle.Render(logOverlayTitle))

	overlayWidth := int(float64(width) * 0.8)
	overlayHeight := int(float64(height) * 0.7)

	vpWidth := overlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	vpHeight := overlayHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}
	return vpWidth, vpHeight
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(logOverlayTitle)
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())

	overlay := design.LogOverlayStyle.
		Width(m.LogViewport.Width + design.LogOverlayStyle.GetHorizontalPadding()).
		Render(content)

	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	statusBar := renderStatusBar(m, m.Width)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, statusBar)
}
