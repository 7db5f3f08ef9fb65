package display

import (
	"fmt"

	"github.com/fatih/color"
)

// Theme holds all color functions for consistent styling
type Theme struct {
	// Status indicators
	Success func(a ...interface{}) string
	Error   func(a ...interface{}) string
	Warning func(a ...interface{}) string
	Info    func(a ...interface{}) string

	// LLM responses and command output
	Response func(a ...interface{}) string

	// Structural elements
	Bold func(a ...interface{}) string
	Dim  func(a ...interface{}) string
}

// DefaultTheme creates the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Success: color.New(color.FgGreen).SprintFunc(),
		Error:   color.New(color.FgRed).SprintFunc(),
		Warning: color.New(color.FgYellow).SprintFunc(),
		Info:    color.New(color.FgCyan).SprintFunc(),

		Response: color.New(color.FgGreen).SprintFunc(),

		Bold: color.New(color.Bold).SprintFunc(),
		Dim:  color.New(color.FgHiBlack).SprintFunc(),
	}
}

// NoColorTheme creates a theme without colors (for NO_COLOR or non-TTY output)
func NoColorTheme() *Theme {
	identity := func(a ...interface{}) string {
		return fmt.Sprint(a...)
	}
	return &Theme{
		Success:  identity,
		Error:    identity,
		Warning:  identity,
		Info:     identity,
		Response: identity,
		Bold:     identity,
		Dim:      identity,
	}
}
