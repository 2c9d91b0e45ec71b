package camera

import (
	"math"
	"testing"

	"chosenoffset.com/topdown/internal/core/geom"
)

const epsilon = 1e-9

func near(a, b geom.Vec) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestCenterOnMidpoint(t *testing.T) {
	c := New(800, 600, 0.5)
	player := geom.Vec{X: 800, Y: 600}
	reticle := geom.Vec{X: 800, Y: 700}

	c.CenterOn(geom.Midpoint(player, reticle))

	if c.ScrollX != 400 || c.ScrollY != 350 {
		t.Errorf("Expected scroll (400, 350), got (%f, %f)", c.ScrollX, c.ScrollY)
	}
	if got := c.Midpoint(); got != (geom.Vec{X: 800, Y: 650}) {
		t.Errorf("Expected midpoint (800, 650), got (%f, %f)", got.X, got.Y)
	}
}

func TestZoomAboutCentre(t *testing.T) {
	c := New(800, 600, 0.5)
	c.CenterOn(geom.Vec{X: 800, Y: 600})

	// The centre stays put regardless of zoom
	if got := c.WorldToScreen(geom.Vec{X: 800, Y: 600}); !near(got, geom.Vec{X: 400, Y: 300}) {
		t.Errorf("Expected centre at (400, 300), got (%f, %f)", got.X, got.Y)
	}

	// At half zoom the whole 1600x1200 world fits the 800x600 view
	if got := c.WorldToScreen(geom.Vec{X: 0, Y: 0}); !near(got, geom.Vec{X: 0, Y: 0}) {
		t.Errorf("Expected world origin at screen origin, got (%f, %f)", got.X, got.Y)
	}
	if got := c.WorldToScreen(geom.Vec{X: 1600, Y: 1200}); !near(got, geom.Vec{X: 800, Y: 600}) {
		t.Errorf("Expected world corner at (800, 600), got (%f, %f)", got.X, got.Y)
	}

	view := c.WorldView()
	if view.Width != 1600 || view.Height != 1200 {
		t.Errorf("Expected view 1600x1200, got %fx%f", view.Width, view.Height)
	}
}

func TestWorldViewCornersMapToScreenCorners(t *testing.T) {
	c := New(800, 600, 2)
	c.ScrollX, c.ScrollY = 123, -45

	view := c.WorldView()
	if got := c.WorldToScreen(geom.Vec{X: view.X, Y: view.Y}); !near(got, geom.Vec{}) {
		t.Errorf("Expected view origin at (0, 0), got (%f, %f)", got.X, got.Y)
	}
	corner := geom.Vec{X: view.Right(), Y: view.Bottom()}
	if got := c.WorldToScreen(corner); !near(got, geom.Vec{X: 800, Y: 600}) {
		t.Errorf("Expected view corner at (800, 600), got (%f, %f)", got.X, got.Y)
	}
}

func TestNonPositiveZoomTreatedAsOne(t *testing.T) {
	c := New(800, 600, 0)
	c.ScrollX, c.ScrollY = 100, 100

	got := c.WorldToScreen(geom.Vec{X: 100, Y: 100})
	if !near(got, geom.Vec{X: 0, Y: 0}) {
		t.Errorf("Expected scroll origin at screen origin, got (%f, %f)", got.X, got.Y)
	}
}

type recordingGeoM struct {
	ops []string
	x   geom.Vec
}

func (g *recordingGeoM) Translate(tx, ty float64) {
	g.ops = append(g.ops, "translate")
	g.x = geom.Vec{X: g.x.X + tx, Y: g.x.Y + ty}
}

func (g *recordingGeoM) Scale(sx, sy float64) {
	g.ops = append(g.ops, "scale")
	g.x = geom.Vec{X: g.x.X * sx, Y: g.x.Y * sy}
}

func (g *recordingGeoM) Rotate(angle float64) { g.ops = append(g.ops, "rotate") }

func TestApplyMatchesWorldToScreen(t *testing.T) {
	c := New(800, 600, 0.5)
	c.ScrollX, c.ScrollY = 400, 350

	p := geom.Vec{X: 1000, Y: 200}
	g := &recordingGeoM{x: p}
	c.Apply(g)

	want := c.WorldToScreen(p)
	if !near(g.x, want) {
		t.Errorf("Expected (%f, %f), got (%f, %f)", want.X, want.Y, g.x.X, g.x.Y)
	}
	if len(g.ops) != 3 {
		t.Errorf("Expected 3 operations, got %v", g.ops)
	}
}
