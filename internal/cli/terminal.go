package cli

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal && os.Getenv("NO_COLOR") == "",
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// Score renders a compatibility score coloured by tier
func (t *Terminal) Score(score int) string {
	return t.Color(ScoreColor(score), strconv.Itoa(score))
}

// ScoreColor returns the color for a compatibility score
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return ColorGreen
	case score >= 60:
		return ColorCyan
	case score >= 40:
		return ColorYellow
	default:
		return ColorRed
	}
}
