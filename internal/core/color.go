package core

// Color is a foreground color for a screen cell, resolved to ANSI codes by
// the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightGreen
	ColorOrange
	ColorGray
)
