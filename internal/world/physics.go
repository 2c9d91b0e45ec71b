package world

import "chosenoffset.com/topdown/internal/core/geom"

// Step advances every body by dt seconds.
//
// Per axis: acceleration is integrated when non-zero, otherwise drag pulls
// the velocity toward zero without crossing it. The velocity is then capped
// at ±MaxVelocity and integrated into the position. Bodies that collide with
// the world bounds are pushed back inside and lose their velocity on the
// blocked axis.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	query := w.bodyFilter.Query()
	for query.Next() {
		t, m, b := query.Get()

		m.Velocity.X = computeVelocity(m.Velocity.X, m.Acceleration.X, b.Drag.X, b.MaxVelocity, dt)
		m.Velocity.Y = computeVelocity(m.Velocity.Y, m.Acceleration.Y, b.Drag.Y, b.MaxVelocity, dt)

		t.X += m.Velocity.X * dt
		t.Y += m.Velocity.Y * dt

		if b.CollideWorldBounds {
			collideBounds(t, m, b, w.bounds)
		}
	}
}

func computeVelocity(v, accel, drag, max, dt float64) float64 {
	switch {
	case accel != 0:
		v += accel * dt
	case drag != 0:
		d := drag * dt
		if v-d > 0 {
			v -= d
		} else if v+d < 0 {
			v += d
		} else {
			v = 0
		}
	}

	if max > 0 {
		v = geom.Clamp(v, -max, max)
	}
	return v
}

func collideBounds(t *Transform, m *Motion, b *Body, bounds geom.Rect) {
	halfW := b.Width / 2
	halfH := b.Height / 2

	if t.X-halfW < bounds.X {
		t.X = bounds.X + halfW
		m.Velocity.X = 0
	} else if t.X+halfW > bounds.Right() {
		t.X = bounds.Right() - halfW
		m.Velocity.X = 0
	}

	if t.Y-halfH < bounds.Y {
		t.Y = bounds.Y + halfH
		m.Velocity.Y = 0
	} else if t.Y+halfH > bounds.Bottom() {
		t.Y = bounds.Bottom() - halfH
		m.Velocity.Y = 0
	}
}
