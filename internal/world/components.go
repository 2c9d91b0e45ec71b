package world

import "chosenoffset.com/topdown/internal/core/geom"

// DefaultMaxVelocity is the per-axis velocity cap for bodies that don't set one.
const DefaultMaxVelocity = 10000

// Transform is an entity's position (its centre) and rotation in radians.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Pos returns the position as a vector.
func (t *Transform) Pos() geom.Vec {
	return geom.Vec{X: t.X, Y: t.Y}
}

// Motion holds the dynamic state integrated by Step.
type Motion struct {
	Velocity     geom.Vec
	Acceleration geom.Vec
}

// Body describes how an entity takes part in arcade physics.
type Body struct {
	Width, Height      float64  // Collision box, centred on the transform
	Drag               geom.Vec // Per-axis deceleration while not accelerating
	MaxVelocity        float64  // Per-axis cap
	CollideWorldBounds bool
}

// Appearance describes how an entity is drawn.
type Appearance struct {
	Texture       string
	Frame         int
	Width, Height float64 // Display size in world units
	Depth         int     // Lower depths are drawn first
}
