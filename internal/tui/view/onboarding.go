package view

import (
	"electrodes/internal/picker"
	"electrodes/internal/tui/components"
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/model"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const stationPlaceholder = "Press enter to choose"

func renderOnboarding(m *model.Model) string {
	form := &m.Onboarding

	title := design.TitleStyle.Render("About you")
	subtitle := design.SubtitleStyle.Render("Tell us who is taking the test and where.")

	first := components.NewField("First name").
		WithValue(form.FirstName.View()).
		SetFocused(form.Focus == model.FocusFirstName).
		Render()
	last := components.NewField("Last name").
		WithValue(form.LastName.View()).
		SetFocused(form.Focus == model.FocusLastName).
		Render()
	station := components.NewField("Work station").
		WithValue(form.WorkStation).
		WithPlaceholder(stationPlaceholder).
		AsReadOnly().
		SetFocused(form.Focus == model.FocusWorkStation).
		Render()

	button := components.NewButton("Continue").
		WithWidth(design.FormWidth).
		SetFocused(form.Focus == model.FocusContinue).
		Render()

	formView := components.JoinVertical(title, subtitle, first, last, station, "", button)
	if !form.Picker.Visible() {
		return formView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, formView, "  ", renderPicker(form.Picker))
}

// renderPicker draws the open chooser as a bordered list beside the form.
func renderPicker(p *picker.Picker) string {
	lines := make([]string, 0, p.Len()+1)
	lines = append(lines, design.InputLabelStyle.Render(p.Title()))
	for row := 0; row < p.Len(); row++ {
		label := p.Label(row)
		if row == p.Cursor() {
			lines = append(lines, design.ListItemSelectedStyle.Render("› "+label))
			continue
		}
		lines = append(lines, design.ListItemStyle.Render(label))
	}
	return design.PickerOverlayStyle.Render(strings.Join(lines, "\n"))
}
