package components

import (
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Field is a labelled input container. Value is either a live textinput view
// or plain text for read-only fields.
type Field struct {
	Label       string
	Value       string
	Placeholder string
	Width       int
	Focused     bool
	ReadOnly    bool
}

// NewField creates a field with the standard form width.
func NewField(label string) *Field {
	return &Field{
		Label: label,
		Width: design.FormWidth,
	}
}

// WithValue sets the rendered value.
func (f *Field) WithValue(value string) *Field {
	f.Value = value
	return f
}

// WithPlaceholder sets the text shown while a read-only field is empty.
func (f *Field) WithPlaceholder(placeholder string) *Field {
	f.Placeholder = placeholder
	return f
}

// WithWidth sets the outer width.
func (f *Field) WithWidth(width int) *Field {
	f.Width = width
	return f
}

// AsReadOnly marks the field as not directly editable.
func (f *Field) AsReadOnly() *Field {
	f.ReadOnly = true
	return f
}

// SetFocused updates the focus state
func (f *Field) SetFocused(focused bool) *Field {
	f.Focused = focused
	return f
}

// Render draws the label above a rounded input box.
func (f *Field) Render() string {
	style := design.InputStyle
	if f.Focused {
		style = design.InputFocusedStyle
	}

	width := f.Width
	if width < design.MinPanelWidth {
		width = design.MinPanelWidth
	}
	inner := width - style.GetHorizontalFrameSize()

	value := f.Value
	if f.ReadOnly {
		if value == "" {
			value = design.DimStyle.Render(f.Placeholder)
		}
		if lipgloss.Width(value) > inner {
			value = utils.Ellipsize(value, inner)
		}
	}

	box := style.
		Width(width - style.GetHorizontalBorderSize()).
		Render(value)

	label := design.InputLabelStyle.Render(f.Label)
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}
