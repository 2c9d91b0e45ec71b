package game

import (
	"log"

	"chosenoffset.com/topdown/internal/assets"
	"chosenoffset.com/topdown/internal/camera"
	"chosenoffset.com/topdown/internal/config"
	"chosenoffset.com/topdown/internal/input"
	"chosenoffset.com/topdown/internal/render"
	"chosenoffset.com/topdown/internal/scene"
	"chosenoffset.com/topdown/internal/world"
)

// Game holds all game state and logic.
type Game struct {
	Config   *config.Scene
	World    *world.World
	Camera   *camera.Camera
	Scene    *scene.Scene
	Assets   *assets.Library
	Renderer render.Renderer
	InputMgr render.InputManager
	Poller   *input.Poller

	// Debug overlay
	Debug    bool
	debugKey render.Key

	// Frame timing
	FrameCount int
	tickMs     float64
}

// New builds the world, camera and scene from cfg and runs scene setup.
func New(cfg *config.Scene, r render.Renderer, in render.InputManager, lib *assets.Library) (*Game, error) {
	w := world.New(cfg.World.Bounds.Rect())
	cam := camera.New(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Camera.Zoom)

	sc, err := scene.New(cfg, w, cam, in)
	if err != nil {
		return nil, err
	}
	sc.Create()
	debugKey := sc.Bindings().Debug

	g := &Game{
		Config:   cfg,
		World:    w,
		Camera:   cam,
		Scene:    sc,
		Assets:   lib,
		Renderer: r,
		InputMgr: in,
		Poller:   input.NewPoller(in, append(sc.Keys(), debugKey)...),
		Debug:    cfg.Debug,
		debugKey: debugKey,
		tickMs:   1000 / float64(cfg.TPS),
	}

	log.Printf("Scene ready: world %gx%g, %d entities", cfg.World.Bounds.Width, cfg.World.Bounds.Height, w.Len())
	return g, nil
}

// Update handles game logic updates.
//
// Input events are applied first, then the physics step, then the scene's
// per-frame update, so the scene always sees this tick's positions.
func (g *Game) Update() error {
	for _, ev := range g.Poller.Poll() {
		if ev.Kind == input.KeyDown && ev.Key == g.debugKey {
			g.Debug = !g.Debug
			log.Printf("Debug overlay: %v", g.Debug)
			continue
		}
		g.Scene.Handle(ev)
	}

	g.World.Step(g.tickMs / 1000)

	g.FrameCount++
	g.Scene.Update(float64(g.FrameCount)*g.tickMs, g.tickMs)

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Viewport.Width, g.Config.Viewport.Height
}

// Close tears down the scene and releases textures.
func (g *Game) Close() {
	g.Scene.Destroy()
	if g.Assets != nil {
		g.Assets.Dispose()
	}
}
