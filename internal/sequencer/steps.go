package sequencer

// Step is an index into the procedure table.
type Step int

const (
	StepPrepare Step = iota
	StepElectrodes
	StepApplyForce
	StepAnalysing
	StepResults
)

// FirstStep and LastStep bound the procedure.
const (
	FirstStep = StepPrepare
	LastStep  = StepResults
)

// IndicatorCount is the number of step indicators on the Testing screen.
const IndicatorCount = int(LastStep) + 1

// Button labels used by the primary action.
const (
	ButtonNext   = "Next"
	ButtonFinish = "Finish"
)

// StepView is the display content for a single step.
type StepView struct {
	Highlighted   int    `yaml:"highlighted"`
	StepLabel     string `yaml:"stepLabel"`
	Description   string `yaml:"description"`
	ButtonLabel   string `yaml:"buttonLabel"`
	RevealResults bool   `yaml:"revealResults"`
}

var stepTable = [IndicatorCount]StepView{
	StepPrepare: {
		Highlighted: 0,
		ButtonLabel: ButtonNext,
	},
	StepElectrodes: {
		Highlighted: 1,
		StepLabel:   "Step 2",
		Description: "Put all the electrodes and place them on your hand, as shown below.",
		ButtonLabel: ButtonNext,
	},
	StepApplyForce: {
		Highlighted: 2,
		StepLabel:   "Step 3",
		Description: "Press the button to apply force. Keep pushing the button until the bar is filled.",
		ButtonLabel: ButtonNext,
	},
	StepAnalysing: {
		Highlighted: 3,
		StepLabel:   "Step 4",
		Description: "Analysing...",
		ButtonLabel: ButtonNext,
	},
	StepResults: {
		Highlighted:   4,
		StepLabel:     "Step 5",
		Description:   "Your result for CTS are as follows:",
		ButtonLabel:   ButtonFinish,
		RevealResults: true,
	},
}

// Valid reports whether s has a row in the procedure table.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// String returns a short name for log output.
func (s Step) String() string {
	switch s {
	case StepPrepare:
		return "Prepare"
	case StepElectrodes:
		return "Electrodes"
	case StepApplyForce:
		return "ApplyForce"
	case StepAnalysing:
		return "Analysing"
	case StepResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Render returns the display content for s. The boolean is false when s has
// no row in the table; the returned view is then the zero value.
func Render(s Step) (StepView, bool) {
	if !s.Valid() {
		return StepView{}, false
	}
	return stepTable[s], true
}

// Steps returns a copy of the full procedure table in order.
func Steps() []StepView {
	out := make([]StepView, len(stepTable))
	copy(out, stepTable[:])
	return out
}
