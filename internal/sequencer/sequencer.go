package sequencer

// Transition describes the visual effect to request after the sequencer moved.
type Transition struct {
	From    Step
	To      Step
	Animate bool
}

// Sequencer holds the current position in the procedure.
// The zero value is ready to use and starts at the first step.
type Sequencer struct {
	current Step
}

// New returns a sequencer positioned on the first step.
func New() Sequencer {
	return Sequencer{current: FirstStep}
}

// Current returns the current step.
func (s Sequencer) Current() Step {
	return s.current
}

// View returns the display content of the current step.
func (s Sequencer) View() StepView {
	v, _ := Render(s.current)
	return v
}

// Terminal reports whether the sequencer is on the last step.
func (s Sequencer) Terminal() bool {
	return s.current >= LastStep
}

// Initial returns the transition that paints the first step. The first
// indicator is set directly, without an animated blend.
func (s Sequencer) Initial() Transition {
	return Transition{From: s.current, To: s.current, Animate: false}
}

// Advance moves forward by one step. On the last step it does nothing and
// returns false.
func (s *Sequencer) Advance() (Transition, bool) {
	if s.Terminal() {
		return Transition{From: s.current, To: s.current}, false
	}
	from := s.current
	s.current++
	return Transition{From: from, To: s.current, Animate: true}, true
}
