package core

// Color is the role a screen cell plays when drawn.
// The platform maps each role to a concrete terminal style from the theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorTitle
	ColorBorder
	ColorSnake
	ColorHead
	ColorFood
	ColorScore
	ColorOverlay
)
