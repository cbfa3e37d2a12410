package components

import (
	"electrodes/internal/tui/design"
)

// Button is a bordered, single-line action.
type Button struct {
	Label   string
	Width   int
	Focused bool
}

// NewButton creates an unfocused button sized to its label.
func NewButton(label string) *Button {
	return &Button{Label: label}
}

// WithWidth fixes the outer width. Zero sizes to the label.
func (b *Button) WithWidth(width int) *Button {
	b.Width = width
	return b
}

// SetFocused updates the focus state
func (b *Button) SetFocused(focused bool) *Button {
	b.Focused = focused
	return b
}

func (b *Button) Render() string {
	style := design.ButtonStyle
	if b.Focused {
		style = design.ButtonFocusedStyle
	}
	if b.Width > 0 {
		style = style.Width(b.Width - style.GetHorizontalBorderSize())
	}
	return style.Render(b.Label)
}
