package controller

import (
	"electrodes/internal/sequencer"
	"electrodes/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// startHighlight records a new highlight generation for tr and returns the
// command that drives its frames. Non-animated transitions settle immediately
// and return nil.
func startHighlight(m *model.Model, tr sequencer.Transition) tea.Cmd {
	sv, _ := sequencer.Render(tr.To)
	h := &m.Testing.Highlight
	h.Generation++
	h.Indicator = sv.Highlighted
	h.Frame = 0
	h.Frames = 0

	if !tr.Animate || m.HighlightFrames <= 0 {
		return nil
	}
	h.Frames = m.HighlightFrames
	return model.HighlightFrameCmd(h.Generation, 1, h.Frames, m.HighlightDuration)
}

// handleHighlightFrame applies one frame and schedules the next. Frames from
// a superseded generation are dropped.
func handleHighlightFrame(m *model.Model, msg model.HighlightFrameMsg) tea.Cmd {
	h := &m.Testing.Highlight
	if msg.Generation != h.Generation || !h.Animating() {
		return nil
	}
	h.Frame = msg.Frame
	if !h.Animating() {
		return nil
	}
	return model.HighlightFrameCmd(h.Generation, h.Frame+1, h.Frames, m.HighlightDuration)
}
