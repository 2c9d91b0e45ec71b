package scene

import (
	"chosenoffset.com/topdown/internal/core/geom"
	"chosenoffset.com/topdown/internal/world"
)

// ConstrainVelocity caps the speed of m at maxVelocity, keeping its
// direction. A nil motion is ignored.
func ConstrainVelocity(m *world.Motion, maxVelocity float64) {
	if m == nil {
		return
	}

	v := m.Velocity
	if v.LenSq() > maxVelocity*maxVelocity {
		m.Velocity = geom.FromAngle(v.Angle(), maxVelocity)
	}
}

// ClampToBox keeps reticle within box.X horizontally and box.Y vertically
// of player.
func ClampToBox(reticle, player *world.Transform, box geom.Vec) {
	distX := reticle.X - player.X
	distY := reticle.Y - player.Y

	if distX > box.X {
		reticle.X = player.X + box.X
	} else if distX < -box.X {
		reticle.X = player.X - box.X
	}

	if distY > box.Y {
		reticle.Y = player.Y + box.Y
	} else if distY < -box.Y {
		reticle.Y = player.Y - box.Y
	}
}

// ConstrainReticle applies the box clamp and then pulls the reticle onto
// the circle of the given radius if it is farther away. The box is not
// re-checked after the radial pull.
func ConstrainReticle(reticle, player *world.Transform, radius float64, box geom.Vec) {
	ClampToBox(reticle, player, box)

	dist := geom.Distance(player.Pos(), reticle.Pos())
	if dist > radius {
		scale := dist / radius
		reticle.X = player.X + (reticle.X-player.X)/scale
		reticle.Y = player.Y + (reticle.Y-player.Y)/scale
	}
}
