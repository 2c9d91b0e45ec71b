// Package geom provides the small amount of 2D vector math the scene needs.
package geom

import "math"

// Vec represents a 2D point or direction in world space.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared magnitude of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the direction of v in radians, measured from +X towards +Y.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vec {
	return Vec{math.Cos(angle) * length, math.Sin(angle) * length}
}

// AngleBetween returns the angle of the line from a to b.
func AngleBetween(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec) Vec {
	return Vec{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether r and o overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.Right() && o.X <= r.Right() && r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// Center returns the centre point of r.
func (r Rect) Center() Vec {
	return Vec{r.X + r.Width/2, r.Y + r.Height/2}
}
