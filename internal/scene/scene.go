// Package scene is the shooter scene: player movement, the reticle that
// aims for it, and the camera that frames them both.
package scene

import (
	"fmt"
	"log"

	"github.com/mlange-42/ark/ecs"

	"chosenoffset.com/topdown/internal/camera"
	"chosenoffset.com/topdown/internal/config"
	"chosenoffset.com/topdown/internal/core/geom"
	"chosenoffset.com/topdown/internal/input"
	"chosenoffset.com/topdown/internal/render"
	"chosenoffset.com/topdown/internal/world"
)

// Draw order
const (
	DepthBackground = iota
	DepthPlayer
	DepthReticle
)

// PointerLock captures and releases the mouse pointer.
// render.InputManager satisfies it.
type PointerLock interface {
	SetCursorCaptured(captured bool)
	IsCursorCaptured() bool
}

// Scene holds the per-scene state: the entities it created, the keys
// currently held, and the collaborators it writes to each frame.
type Scene struct {
	cfg     *config.Scene
	keys    config.Bindings
	world   *world.World
	camera  *camera.Camera
	pointer PointerLock

	Player     ecs.Entity
	Reticle    ecs.Entity
	Background ecs.Entity

	held map[render.Key]bool
	time float64 // ms, as passed to the last Update
}

// New creates a scene. Call Create before the first Update.
func New(cfg *config.Scene, w *world.World, cam *camera.Camera, pointer PointerLock) (*Scene, error) {
	keys, err := cfg.Keys.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve key bindings: %w", err)
	}

	return &Scene{
		cfg:     cfg,
		keys:    keys,
		world:   w,
		camera:  cam,
		pointer: pointer,
		held:    make(map[render.Key]bool),
	}, nil
}

// Bindings returns the key bindings resolved from the config.
func (s *Scene) Bindings() config.Bindings {
	return s.keys
}

// Keys returns every key the scene reacts to, for the input poller.
func (s *Scene) Keys() []render.Key {
	return append(s.keys.Movement(), s.keys.Release...)
}

// Create sets the world bounds and spawns the background, player and reticle.
func (s *Scene) Create() {
	s.world.SetBounds(s.cfg.World.Bounds.Rect())

	bounds := s.cfg.World.Bounds.Rect()
	s.Background = s.world.AddImage(bounds.Center(), world.Appearance{
		Texture: s.cfg.World.Background,
		Width:   bounds.Width,
		Height:  bounds.Height,
		Depth:   DepthBackground,
	})

	p := s.cfg.Player
	s.Player = s.world.AddSprite(p.Spawn.Vec(), world.Body{
		Width:              p.Size.Width,
		Height:             p.Size.Height,
		Drag:               geom.Vec{X: p.Drag, Y: p.Drag},
		CollideWorldBounds: true,
	}, world.Appearance{
		Texture: p.Texture,
		Frame:   p.Frame,
		Width:   p.Size.Width,
		Height:  p.Size.Height,
		Depth:   DepthPlayer,
	})

	r := s.cfg.Reticle
	s.Reticle = s.world.AddSprite(r.Spawn.Vec(), world.Body{
		Width:              r.Size.Width,
		Height:             r.Size.Height,
		CollideWorldBounds: true,
	}, world.Appearance{
		Texture: r.Texture,
		Width:   r.Size.Width,
		Height:  r.Size.Height,
		Depth:   DepthReticle,
	})

	s.camera.Zoom = s.cfg.Camera.Zoom
}

// Destroy removes the scene's entities and releases the pointer.
func (s *Scene) Destroy() {
	s.world.Remove(s.Reticle)
	s.world.Remove(s.Player)
	s.world.Remove(s.Background)
	s.Player, s.Reticle, s.Background = ecs.Entity{}, ecs.Entity{}, ecs.Entity{}

	if s.pointer.IsCursorCaptured() {
		s.pointer.SetCursorCaptured(false)
	}
	clear(s.held)
}

// Time returns the time passed to the last Update, in milliseconds.
func (s *Scene) Time() float64 {
	return s.time
}

// Handle applies one input event.
func (s *Scene) Handle(ev input.Event) {
	switch ev.Kind {
	case input.KeyDown:
		s.keyDown(ev.Key)
	case input.KeyUp:
		s.keyUp(ev.Key)
	case input.MouseDown:
		if !s.pointer.IsCursorCaptured() {
			s.pointer.SetCursorCaptured(true)
			log.Println("Pointer locked")
		}
	case input.PointerMove:
		s.pointerMove(ev.DX, ev.DY)
	}
}

func (s *Scene) keyDown(k render.Key) {
	s.held[k] = true

	if s.isReleaseKey(k) {
		if s.pointer.IsCursorCaptured() {
			s.pointer.SetCursorCaptured(false)
			log.Println("Pointer released")
		}
	}

	player, ok := s.world.Lookup(s.Player)
	if !ok {
		return
	}
	accel := s.cfg.Player.Acceleration

	switch k {
	case s.keys.Up:
		player.Motion.Acceleration.Y = -accel
	case s.keys.Down:
		player.Motion.Acceleration.Y = accel
	case s.keys.Left:
		player.Motion.Acceleration.X = -accel
	case s.keys.Right:
		player.Motion.Acceleration.X = accel
	}
}

// keyUp stops acceleration on an axis unless the opposing key is still
// held, so releasing one of two opposed keys doesn't stall the player.
func (s *Scene) keyUp(k render.Key) {
	s.held[k] = false

	player, ok := s.world.Lookup(s.Player)
	if !ok {
		return
	}

	switch k {
	case s.keys.Up:
		if !s.held[s.keys.Down] {
			player.Motion.Acceleration.Y = 0
		}
	case s.keys.Down:
		if !s.held[s.keys.Up] {
			player.Motion.Acceleration.Y = 0
		}
	case s.keys.Left:
		if !s.held[s.keys.Right] {
			player.Motion.Acceleration.X = 0
		}
	case s.keys.Right:
		if !s.held[s.keys.Left] {
			player.Motion.Acceleration.X = 0
		}
	}
}

func (s *Scene) isReleaseKey(k render.Key) bool {
	for _, r := range s.keys.Release {
		if r == k {
			return true
		}
	}
	return false
}

func (s *Scene) pointerMove(dx, dy float64) {
	if !s.pointer.IsCursorCaptured() {
		return
	}

	player, ok := s.world.Lookup(s.Player)
	if !ok {
		return
	}
	reticle, ok := s.world.Lookup(s.Reticle)
	if !ok {
		return
	}

	reticle.Transform.X += dx
	reticle.Transform.Y += dy

	ClampToBox(reticle.Transform, player.Transform, s.box())
}

func (s *Scene) box() geom.Vec {
	return geom.Vec{X: s.cfg.Reticle.BoundsX, Y: s.cfg.Reticle.BoundsY}
}

// Update runs once per frame after the physics step. time and delta are
// in milliseconds.
func (s *Scene) Update(time, delta float64) {
	s.time = time

	player, ok := s.world.Lookup(s.Player)
	if !ok {
		return
	}
	reticle, ok := s.world.Lookup(s.Reticle)
	if !ok {
		return
	}

	pp := player.Transform.Pos()
	rp := reticle.Transform.Pos()

	// Face the reticle
	player.Transform.Rotation = geom.AngleBetween(pp, rp)

	// Frame both player and reticle
	s.camera.CenterOn(geom.Midpoint(pp, rp))

	// The reticle rides along with the player
	reticle.Motion.Velocity = player.Motion.Velocity

	ConstrainVelocity(player.Motion, s.cfg.Player.MaxSpeed)
	ConstrainReticle(reticle.Transform, player.Transform, s.cfg.Reticle.Radius, s.box())
}
