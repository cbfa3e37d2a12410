package components

import (
	"electrodes/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeResult
)

// Panel is an empty bordered container of a fixed outer size.
type Panel struct {
	Width  int
	Height int
	Type   PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel() *Panel {
	return &Panel{
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()

	// Width and Height in lipgloss exclude the border, so subtract it here to
	// keep the outer box at p.Width x p.Height.
	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render("")
}

func (p *Panel) getStyle() lipgloss.Style {
	if p.Type == PanelTypeResult {
		return design.ResultPanelStyle
	}
	return design.PanelStyle
}
