// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Palette for the enumchain console output.

var (
	// SignalBlue - informational lines, step descriptions
	SignalBlue = pterm.NewRGB(77, 144, 254)

	// TraceCyan - command echoes and file paths
	TraceCyan = pterm.NewRGB(0, 206, 209)

	// LiveGreen - successful stages, saved files
	LiveGreen = pterm.NewRGB(80, 200, 120)

	// AmberWarn - empty-stage warnings, dry-run notes
	AmberWarn = pterm.NewRGB(255, 182, 39)

	// AlertRed - tool failures, fatal setup errors
	AlertRed = pterm.NewRGB(215, 38, 56)

	// SlateGray - secondary text
	SlateGray = pterm.NewRGB(128, 128, 128)
)

var (
	StyleInfo      = SignalBlue.ToRGBStyle()
	StyleTrace     = TraceCyan.ToRGBStyle()
	StyleSuccess   = LiveGreen.ToRGBStyle()
	StyleWarning   = AmberWarn.ToRGBStyle()
	StyleError     = AlertRed.ToRGBStyle()
	StyleSecondary = SlateGray.ToRGBStyle()
)
