package game

import (
	"fmt"
	"math"

	"chosenoffset.com/topdown/internal/core/geom"
	"chosenoffset.com/topdown/internal/render"
	"chosenoffset.com/topdown/internal/world"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(ClearColor)

	view := g.Camera.WorldView()
	drawables := g.World.Drawables()
	for i := range drawables {
		if visible(view, &drawables[i]) {
			g.drawEntity(screen, &drawables[i])
		}
	}

	if g.Debug {
		for i := range drawables {
			g.drawBody(screen, &drawables[i])
		}
		g.drawReach(screen)
	}

	g.drawHUD(screen)
}

// visible reports whether a drawable's display area, at any rotation,
// overlaps the world view. Entities without a display size are always drawn.
func visible(view geom.Rect, d *world.Drawable) bool {
	w, h := d.Appearance.Width, d.Appearance.Height
	if w <= 0 || h <= 0 {
		return true
	}
	r := math.Hypot(w, h) / 2
	return view.Intersects(geom.Rect{X: d.Transform.X - r, Y: d.Transform.Y - r, Width: 2 * r, Height: 2 * r})
}

func (g *Game) drawEntity(screen render.Image, d *world.Drawable) {
	if g.Assets == nil {
		return
	}
	img, ok := g.Assets.Frame(d.Appearance.Texture, d.Appearance.Frame)
	if !ok {
		return
	}

	w, h := img.Size()
	if w == 0 || h == 0 {
		return
	}

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()

	// Origin at the centre, scaled to display size, then placed in the world
	opts.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if d.Appearance.Width > 0 && d.Appearance.Height > 0 {
		opts.GeoM.Scale(d.Appearance.Width/float64(w), d.Appearance.Height/float64(h))
	}
	opts.GeoM.Rotate(d.Transform.Rotation)
	opts.GeoM.Translate(d.Transform.X, d.Transform.Y)
	g.Camera.Apply(opts.GeoM)

	screen.DrawImage(img, opts)
}

// drawBody outlines a physics body and draws half its velocity as a line.
func (g *Game) drawBody(screen render.Image, d *world.Drawable) {
	if d.Body == nil {
		return
	}

	z := g.Camera.Zoom
	if z <= 0 {
		z = 1
	}

	topLeft := g.Camera.WorldToScreen(geom.Vec{
		X: d.Transform.X - d.Body.Width/2,
		Y: d.Transform.Y - d.Body.Height/2,
	})
	g.Renderer.StrokeRect(screen,
		float32(topLeft.X),
		float32(topLeft.Y),
		float32(d.Body.Width*z),
		float32(d.Body.Height*z),
		1,
		BodyColor)

	if d.Motion == nil {
		return
	}
	center := d.Transform.Pos()
	from := g.Camera.WorldToScreen(center)
	to := g.Camera.WorldToScreen(center.Add(d.Motion.Velocity.Scale(0.5)))
	g.Renderer.StrokeLine(screen,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		1,
		VelocityColor)
}

// drawReach outlines the box and circle the reticle is held inside.
func (g *Game) drawReach(screen render.Image) {
	p, ok := g.World.Lookup(g.Scene.Player)
	if !ok {
		return
	}

	z := g.Camera.Zoom
	if z <= 0 {
		z = 1
	}

	rc := g.Config.Reticle
	center := p.Transform.Pos()
	c := g.Camera.WorldToScreen(center)
	g.Renderer.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(rc.Radius*z), 1, ReachColor)

	topLeft := g.Camera.WorldToScreen(center.Sub(geom.Vec{X: rc.BoundsX, Y: rc.BoundsY}))
	g.Renderer.StrokeRect(screen,
		float32(topLeft.X),
		float32(topLeft.Y),
		float32(2*rc.BoundsX*z),
		float32(2*rc.BoundsY*z),
		1,
		ReachColor)
}

// HUDLines returns the text shown in the top-left corner.
func (g *Game) HUDLines() []string {
	var lines []string
	if g.InputMgr.IsCursorCaptured() {
		lines = append(lines, "WASD to move - Q to release pointer")
	} else {
		lines = append(lines, "Click to lock pointer - WASD to move")
	}

	if !g.Debug {
		return lines
	}

	if p, ok := g.World.Lookup(g.Scene.Player); ok {
		lines = append(lines,
			fmt.Sprintf("player  %.0f,%.0f  v %.0f,%.0f  |v| %.0f",
				p.Transform.X, p.Transform.Y,
				p.Motion.Velocity.X, p.Motion.Velocity.Y,
				p.Motion.Velocity.Len()))
	}
	if r, ok := g.World.Lookup(g.Scene.Reticle); ok {
		lines = append(lines, fmt.Sprintf("reticle %.0f,%.0f", r.Transform.X, r.Transform.Y))
	}
	lines = append(lines, fmt.Sprintf("camera  %.0f,%.0f  zoom %.2f", g.Camera.ScrollX, g.Camera.ScrollY, g.Camera.Zoom))
	lines = append(lines, fmt.Sprintf("time    %.1fs  frame %d", g.Scene.Time()/1000, g.FrameCount))

	return lines
}

func (g *Game) drawHUD(screen render.Image) {
	for i, line := range g.HUDLines() {
		g.Renderer.DrawText(screen, line, hudMargin, hudMargin+i*hudLineHeight, HintColor, 1.0)
	}
}
