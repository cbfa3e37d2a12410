package view

import (
	"electrodes/internal/tui/components"
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/model"
)

func renderWelcome(m *model.Model) string {
	form := m.Welcome

	title := design.TitleStyle.Render("Welcome")
	subtitle := design.SubtitleStyle.Render("Enter your worker ID to begin.")

	id := components.NewField("Worker ID").
		WithValue(form.WorkerID.View()).
		SetFocused(form.Focus == model.FocusWorkerID).
		Render()

	button := components.NewButton("Continue").
		WithWidth(design.FormWidth).
		SetFocused(form.Focus == model.FocusContinue).
		Render()

	return components.JoinVertical(title, subtitle, id, "", button)
}
