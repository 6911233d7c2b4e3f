package script

import "unicode"

// DefaultMinPercentage is the minimum share of target-script code points,
// among characters that could belong to any script, for a text to pass the gate.
const DefaultMinPercentage = 70.0

// Result is the outcome of the script-validity gate.
type Result struct {
	// IsValid is true when the script share reached the gate's threshold.
	IsValid bool

	// Percentage is the measured share of target-script code points, 0-100.
	Percentage float64
}

// Gate checks whether a text is predominantly written in a target script.
// Spaces, digits and punctuation are script-neutral and excluded from the
// denominator. The gate is a precondition check run by callers before
// summarization; the summarization core never re-validates.
type Gate struct {
	script        Script
	minPercentage float64
}

// NewGate creates a gate for the given script with the given threshold (0-100).
// A non-positive threshold falls back to DefaultMinPercentage.
func NewGate(s Script, minPercentage float64) *Gate {
	if minPercentage <= 0 {
		minPercentage = DefaultMinPercentage
	}
	return &Gate{script: s, minPercentage: minPercentage}
}

// Validate measures the proportion of target-script code points in text.
// A text with no script-bearing characters at all (only spaces, digits and
// punctuation) is invalid with percentage 0.
func (g *Gate) Validate(text string) Result {
	var total, matched int
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsDigit(r) || unicode.IsPunct(r) {
			continue
		}
		total++
		if g.script.Contains(r) {
			matched++
		}
	}

	if total == 0 {
		return Result{IsValid: false, Percentage: 0}
	}

	pct := float64(matched) / float64(total) * 100
	return Result{
		IsValid:    pct >= g.minPercentage,
		Percentage: pct,
	}
}
