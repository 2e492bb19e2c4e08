package signup

import (
	"strings"
	"unicode/utf8"
)

// MaxStrength is the highest password strength score.
const MaxStrength = 3

// strengthSymbols are the symbols that count toward the digit+symbol point.
const strengthSymbols = "!@#$%^&*"

// minStrongLength is the length a password must exceed to earn the length point.
const minStrongLength = 6

// Strength scores a password from 0 to MaxStrength.
//
// One point each for: more than six characters, an uppercase ASCII letter,
// and having both an ASCII digit and one of !@#$%^&*. A digit alone or a
// symbol alone earns nothing. The score is advisory and never blocks
// submission.
func Strength(password string) int {
	score := 0
	if utf8.RuneCountInString(password) > minStrongLength {
		score++
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(strengthSymbols, r):
			hasSymbol = true
		}
	}

	if hasUpper {
		score++
	}
	if hasDigit && hasSymbol {
		score++
	}
	return score
}

// StrengthLabel returns the display label for a strength score.
func StrengthLabel(score int) string {
	switch {
	case score <= 0:
		return "Weak"
	case score == 1:
		return "Fair"
	case score == 2:
		return "Good"
	default:
		return "Strong"
	}
}

// StrengthRatio returns score/MaxStrength clamped to [0, 1], for meter widths.
func StrengthRatio(score int) float64 {
	if score <= 0 {
		return 0
	}
	if score >= MaxStrength {
		return 1
	}
	return float64(score) / MaxStrength
}
