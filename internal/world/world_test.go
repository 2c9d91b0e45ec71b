package world

import (
	"math"
	"testing"

	"chosenoffset.com/topdown/internal/core/geom"
)

const epsilon = 1e-9

func newTestWorld() *World {
	return New(geom.Rect{X: 0, Y: 0, Width: 1600, Height: 1200})
}

func TestAddSpriteAndLookup(t *testing.T) {
	w := newTestWorld()
	e := w.AddSprite(geom.Vec{X: 800, Y: 600}, Body{Width: 132, Height: 120}, Appearance{Texture: "player"})

	h, ok := w.Lookup(e)
	if !ok {
		t.Fatal("Expected sprite to be found")
	}
	if h.Transform.X != 800 || h.Transform.Y != 600 {
		t.Errorf("Expected position (800, 600), got (%f, %f)", h.Transform.X, h.Transform.Y)
	}
	if h.Body.MaxVelocity != DefaultMaxVelocity {
		t.Errorf("Expected default max velocity %d, got %f", DefaultMaxVelocity, h.Body.MaxVelocity)
	}
}

func TestLookupRemovedAndImageEntities(t *testing.T) {
	w := newTestWorld()
	bg := w.AddImage(geom.Vec{X: 800, Y: 600}, Appearance{Texture: "background"})
	e := w.AddSprite(geom.Vec{}, Body{}, Appearance{})

	if _, ok := w.Lookup(bg); ok {
		t.Error("Expected image entity to have no physics handle")
	}

	w.Remove(e)
	if _, ok := w.Lookup(e); ok {
		t.Error("Expected removed sprite lookup to fail")
	}

	// Removing twice must not panic
	w.Remove(e)
}

func TestStepIntegratesAcceleration(t *testing.T) {
	w := newTestWorld()
	e := w.AddSprite(geom.Vec{X: 800, Y: 600}, Body{Drag: geom.Vec{X: 500, Y: 500}}, Appearance{})

	h, _ := w.Lookup(e)
	h.Motion.Acceleration = geom.Vec{X: 800, Y: 0}

	w.Step(0.5)

	h, _ = w.Lookup(e)
	if math.Abs(h.Motion.Velocity.X-400) > epsilon {
		t.Errorf("Expected vx 400, got %f", h.Motion.Velocity.X)
	}
	if math.Abs(h.Transform.X-1000) > epsilon {
		t.Errorf("Expected x 1000, got %f", h.Transform.X)
	}
	if h.Motion.Velocity.Y != 0 {
		t.Errorf("Expected vy 0, got %f", h.Motion.Velocity.Y)
	}
}

func TestDragDoesNotOvershootZero(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"positive slows", 300, 50},
		{"negative slows", -300, -50},
		{"small positive stops", 100, 0},
		{"small negative stops", -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeVelocity(tt.v, 0, 500, DefaultMaxVelocity, 0.5)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestDragIgnoredWhileAccelerating(t *testing.T) {
	got := computeVelocity(100, 800, 500, DefaultMaxVelocity, 0.25)
	if math.Abs(got-300) > epsilon {
		t.Errorf("Expected 300, got %f", got)
	}
}

func TestMaxVelocityPerAxis(t *testing.T) {
	got := computeVelocity(90, 800, 0, 100, 1)
	if got != 100 {
		t.Errorf("Expected velocity capped at 100, got %f", got)
	}
	got = computeVelocity(-90, -800, 0, 100, 1)
	if got != -100 {
		t.Errorf("Expected velocity capped at -100, got %f", got)
	}
}

func TestCollideWorldBounds(t *testing.T) {
	w := newTestWorld()
	e := w.AddSprite(geom.Vec{X: 1580, Y: 20}, Body{Width: 132, Height: 120, CollideWorldBounds: true}, Appearance{})

	h, _ := w.Lookup(e)
	h.Motion.Velocity = geom.Vec{X: 200, Y: -200}

	w.Step(1.0 / 60)

	h, _ = w.Lookup(e)
	if h.Transform.X != 1600-66 {
		t.Errorf("Expected x %d, got %f", 1600-66, h.Transform.X)
	}
	if h.Transform.Y != 60 {
		t.Errorf("Expected y 60, got %f", h.Transform.Y)
	}
	if h.Motion.Velocity != (geom.Vec{}) {
		t.Errorf("Expected velocity zeroed on both axes, got (%f, %f)", h.Motion.Velocity.X, h.Motion.Velocity.Y)
	}
}

func TestNonCollidingBodyLeavesBounds(t *testing.T) {
	w := newTestWorld()
	e := w.AddSprite(geom.Vec{X: 0, Y: 0}, Body{Width: 10, Height: 10}, Appearance{})

	h, _ := w.Lookup(e)
	h.Motion.Velocity = geom.Vec{X: -60, Y: 0}
	w.Step(1)

	h, _ = w.Lookup(e)
	if h.Transform.X != -60 {
		t.Errorf("Expected x -60, got %f", h.Transform.X)
	}
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	w := newTestWorld()
	e := w.AddSprite(geom.Vec{X: 5, Y: 5}, Body{}, Appearance{})
	h, _ := w.Lookup(e)
	h.Motion.Velocity = geom.Vec{X: 100, Y: 100}

	w.Step(0)
	w.Step(-1)

	h, _ = w.Lookup(e)
	if h.Transform.X != 5 || h.Transform.Y != 5 {
		t.Errorf("Expected position unchanged, got (%f, %f)", h.Transform.X, h.Transform.Y)
	}
}

func TestDrawablesSortedByDepth(t *testing.T) {
	w := newTestWorld()
	reticle := w.AddSprite(geom.Vec{}, Body{Width: 25, Height: 25}, Appearance{Texture: "target", Depth: 2})
	player := w.AddSprite(geom.Vec{}, Body{}, Appearance{Texture: "player", Depth: 1})
	bg := w.AddImage(geom.Vec{}, Appearance{Texture: "background", Depth: 0})

	got := w.Drawables()
	if len(got) != 3 {
		t.Fatalf("Expected 3 drawables, got %d", len(got))
	}
	want := []string{"background", "player", "target"}
	for i, d := range got {
		if d.Appearance.Texture != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, d.Appearance.Texture)
		}
	}

	if got[0].Entity != bg || got[0].Body != nil {
		t.Error("Expected background first with no body")
	}
	if got[1].Entity != player || got[2].Entity != reticle {
		t.Error("Expected player then reticle")
	}
	if got[2].Body == nil || got[2].Body.Width != 25 {
		t.Error("Expected reticle body snapshot")
	}
	if w.Len() != 3 {
		t.Errorf("Expected Len 3, got %d", w.Len())
	}
}
