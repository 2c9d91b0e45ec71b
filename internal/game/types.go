package game

import "image/color"

// Colours used by Draw
var (
	ClearColor    = color.RGBA{0, 0, 0, 255}
	BodyColor     = color.RGBA{255, 0, 255, 255} // Physics body outline
	VelocityColor = color.RGBA{0, 255, 0, 255}   // Velocity debug line
	ReachColor    = color.RGBA{0, 160, 255, 255} // Reticle box and radius
	HintColor     = color.RGBA{255, 255, 255, 255}
)

// Layout of the HUD text
const (
	hudMargin     = 8
	hudLineHeight = 16
)
