package render

import (
	"github.com/fatih/color"
)

// Score thresholds for color assignment.
const (
	ScoreThresholdGood = 0.8
	ScoreThresholdFair = 0.5
)

// Colorizer paints rate values. The zero value paints nothing.
type Colorizer struct {
	enabled bool
	good    *color.Color
	fair    *color.Color
	poor    *color.Color
	muted   *color.Color
}

// NewColorizer returns a Colorizer. When enabled is false every method
// returns its input unchanged, regardless of terminal detection.
func NewColorizer(enabled bool) Colorizer {
	c := Colorizer{
		enabled: enabled,
		good:    color.New(color.FgGreen),
		fair:    color.New(color.FgYellow),
		poor:    color.New(color.FgRed),
		muted:   color.New(color.FgHiBlack),
	}

	if enabled {
		for _, col := range []*color.Color{c.good, c.fair, c.poor, c.muted} {
			col.EnableColor()
		}
	}

	return c
}

// Score colors text by how close score is to 1. higherIsBetter flips the
// scale for error rates.
func (c Colorizer) Score(text string, score float64, higherIsBetter bool) string {
	if !c.enabled {
		return text
	}

	if !higherIsBetter {
		score = 1 - score
	}

	switch {
	case score >= ScoreThresholdGood:
		return c.good.Sprint(text)
	case score >= ScoreThresholdFair:
		return c.fair.Sprint(text)
	default:
		return c.poor.Sprint(text)
	}
}

// Muted renders text in a dim color, used for undefined values.
func (c Colorizer) Muted(text string) string {
	if !c.enabled {
		return text
	}

	return c.muted.Sprint(text)
}
