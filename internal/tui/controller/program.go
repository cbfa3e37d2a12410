package controller

import (
	"context"
	"electrodes/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramOptions are the terminal-level switches that do not belong in the model.
type ProgramOptions struct {
	AltScreen bool
	// Context stops the program when cancelled. Nil means run until quit.
	Context context.Context
}

// NewProgram creates a Bubble Tea program over a freshly initialised model.
func NewProgram(cfg model.TUIConfig, opts ProgramOptions) *tea.Program {
	m := model.InitializeModel(cfg)
	app := NewAppModel(m)

	var teaOpts []tea.ProgramOption
	if opts.AltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	return tea.NewProgram(app, teaOpts...)
}
