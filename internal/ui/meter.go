package ui

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/henrilemoine/fitpro/internal/signup"
)

// StrengthColor returns the meter color for score.
func StrengthColor(score int) string {
	if score < 0 {
		score = 0
	}
	if score >= len(StrengthColors) {
		score = len(StrengthColors) - 1
	}
	return string(StrengthColors[score])
}

// StrengthMeter renders a bar filled to score/3 of width in the score's color.
func StrengthMeter(score, width int, showLabel bool) string {
	if width < 4 {
		width = 4
	}

	bar := progress.New(
		progress.WithSolidFill(StrengthColor(score)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ColorTrack)

	out := bar.ViewAs(signup.StrengthRatio(score))
	if showLabel {
		out += " " + HelpStyle.Render(signup.StrengthLabel(score))
	}
	return out
}
