package components

import (
	"electrodes/internal/tui/design"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Indicators is the row of step pills on the Testing screen. Only the
// highlighted pill is blended toward the emphasis colour; every other pill is
// drawn in the neutral colour.
type Indicators struct {
	Count       int
	Highlighted int
	Progress    float64
	Neutral     lipgloss.AdaptiveColor
	Emphasis    lipgloss.AdaptiveColor
	Gap         int
}

// NewIndicators creates count pills with the design palette and the current
// one fully emphasised.
func NewIndicators(count, highlighted int) *Indicators {
	return &Indicators{
		Count:       count,
		Highlighted: highlighted,
		Progress:    1,
		Neutral:     design.ColorIndicatorNeutral,
		Emphasis:    design.ColorIndicatorEmphasis,
		Gap:         design.SpaceXS,
	}
}

// WithProgress sets how far the highlighted pill has blended, from 0 to 1.
func (in *Indicators) WithProgress(progress float64) *Indicators {
	in.Progress = progress
	return in
}

// Fill returns the background colour of pill i as #rrggbb.
func (in *Indicators) Fill(i int) string {
	neutral := design.Resolve(in.Neutral)
	if i != in.Highlighted {
		return neutral
	}
	return Blend(neutral, design.Resolve(in.Emphasis), in.Progress)
}

func (in *Indicators) Render() string {
	pills := make([]string, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		style := design.IndicatorStyle.Background(lipgloss.Color(in.Fill(i)))
		if i == in.Highlighted {
			style = style.Bold(true)
		}
		pills = append(pills, style.Render(strconv.Itoa(i+1)))
	}
	return JoinHorizontal(in.Gap, pills...)
}

// Blend mixes two #rrggbb colours in Lab space. t is clamped to [0,1]. If
// either colour fails to parse, to is returned unchanged.
func Blend(from, to string, t float64) string {
	c1, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	c2, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	switch {
	case t <= 0:
		return c1.Hex()
	case t >= 1:
		return c2.Hex()
	}
	return c1.BlendLab(c2, t).Clamped().Hex()
}
