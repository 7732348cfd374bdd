package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Sea palette, from the deepest trough to the foam on the crests,
// followed by the colors of things floating on it and the HUD.
const (
	ColorDefault Color = iota
	ColorAbyss
	ColorBlue
	ColorSwell
	ColorCyan
	ColorCrest
	ColorFoam
	ColorSpray

	ColorHull
	ColorDebris
	ColorWarning
	ColorDim
)
