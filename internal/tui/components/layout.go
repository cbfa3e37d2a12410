package components

import (
	"electrodes/internal/tui/design"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout divides the terminal into the areas each screen draws into.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitVertical splits the area into two columns separated by gap cells.
func (l *Layout) SplitVertical(gap int) (leftWidth, rightWidth int) {
	if gap < 0 {
		gap = 0
	}
	usable := l.Width - gap
	if usable < design.ResultPanelMin*2 {
		return design.ResultPanelMin, design.ResultPanelMin
	}

	leftWidth = usable / 2
	rightWidth = usable - leftWidth
	return leftWidth, rightWidth
}

// CalculateContentArea returns the available content area after accounting for header and status bar
func (l *Layout) CalculateContentArea(headerHeight, statusBarHeight int) int {
	contentHeight := l.Height - headerHeight - statusBarHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if len(components) == 0 {
		return ""
	}
	if gap > 0 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
