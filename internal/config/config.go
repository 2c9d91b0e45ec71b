// Package config provides the tuning and wiring for the shooter scene.
// Values are loaded from a YAML (or JSON) file layered over the defaults,
// so a scene file only needs to name what it changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/topdown/internal/core/geom"
	"chosenoffset.com/topdown/internal/render"
)

// Scene holds all settings for the shooter scene
type Scene struct {
	Viewport Viewport      `yaml:"viewport"`
	World    WorldConfig   `yaml:"world"`
	Player   PlayerConfig  `yaml:"player"`
	Reticle  ReticleConfig `yaml:"reticle"`
	Camera   CameraConfig  `yaml:"camera"`
	Keys     KeyConfig     `yaml:"keys"`
	Assets   AssetConfig   `yaml:"assets"`

	Debug bool `yaml:"debug"` // Draw physics bodies and velocity lines
	TPS   int  `yaml:"tps"`   // Ticks per second
}

// Viewport is the logical screen size in pixels
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig defines the physics bounds and the background that fills them
type WorldConfig struct {
	Bounds     RectConfig `yaml:"bounds"`
	Background string     `yaml:"background"` // Texture key
}

// RectConfig is a rectangle in world coordinates
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts the config to a geom.Rect.
func (r RectConfig) Rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Point is a position in world coordinates
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to a geom.Vec.
func (p Point) Vec() geom.Vec {
	return geom.Vec{X: p.X, Y: p.Y}
}

// Size is a display size in world units
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and its movement
type PlayerConfig struct {
	Spawn        Point   `yaml:"spawn"`
	Size         Size    `yaml:"size"`
	Texture      string  `yaml:"texture"`
	Frame        int     `yaml:"frame"`
	Acceleration float64 `yaml:"acceleration"` // Applied per axis while a direction key is held
	Drag         float64 `yaml:"drag"`         // Per axis, applied when not accelerating
	MaxSpeed     float64 `yaml:"max_speed"`    // Magnitude cap applied every frame
}

// ReticleConfig defines the aiming reticle and its constraints
type ReticleConfig struct {
	Spawn   Point   `yaml:"spawn"`
	Size    Size    `yaml:"size"`
	Texture string  `yaml:"texture"`
	Radius  float64 `yaml:"radius"`   // Max distance from the player
	BoundsX float64 `yaml:"bounds_x"` // Max horizontal offset from the player
	BoundsY float64 `yaml:"bounds_y"` // Max vertical offset from the player
}

// CameraConfig defines the main camera
type CameraConfig struct {
	Zoom float64 `yaml:"zoom"`
}

// KeyConfig names the key bindings. Names are parsed with render.ParseKey.
type KeyConfig struct {
	Up      string   `yaml:"up"`
	Down    string   `yaml:"down"`
	Left    string   `yaml:"left"`
	Right   string   `yaml:"right"`
	Release []string `yaml:"release"` // Keys that release pointer lock
	Debug   string   `yaml:"debug"`   // Toggles the debug overlay
}

// Bindings is the resolved form of KeyConfig
type Bindings struct {
	Up, Down, Left, Right render.Key
	Release               []render.Key
	Debug                 render.Key
}

// Movement returns the four direction keys in up, down, left, right order.
func (b Bindings) Movement() []render.Key {
	return []render.Key{b.Up, b.Down, b.Left, b.Right}
}

// AssetConfig lists the texture files, relative to Dir
type AssetConfig struct {
	Dir      string         `yaml:"dir"`
	Textures []TextureEntry `yaml:"textures"`
}

// TextureEntry describes one texture. A zero frame size means a plain image.
type TextureEntry struct {
	Key         string `yaml:"key"`
	Path        string `yaml:"path"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
}

// Default returns the stock scene: an 800x600 view at half zoom over a 1600x1200 world
func Default() *Scene {
	return &Scene{
		Viewport: Viewport{Width: 800, Height: 600},
		World: WorldConfig{
			Bounds:     RectConfig{X: 0, Y: 0, Width: 1600, Height: 1200},
			Background: "background",
		},
		Player: PlayerConfig{
			Spawn:        Point{X: 800, Y: 600},
			Size:         Size{Width: 132, Height: 120},
			Texture:      "player_handgun",
			Frame:        0,
			Acceleration: 800,
			Drag:         500,
			MaxSpeed:     500,
		},
		Reticle: ReticleConfig{
			Spawn:   Point{X: 800, Y: 700},
			Size:    Size{Width: 25, Height: 25},
			Texture: "target",
			Radius:  550,
			BoundsX: 800,
			BoundsY: 600,
		},
		Camera: CameraConfig{Zoom: 0.5},
		Keys: KeyConfig{
			Up:      "W",
			Down:    "S",
			Left:    "A",
			Right:   "D",
			Release: []string{"Q", "Escape"},
			Debug:   "F1",
		},
		Assets: AssetConfig{
			Dir: "assets",
			Textures: []TextureEntry{
				{Key: "player_handgun", Path: "sprites/player_handgun.png", FrameWidth: 66, FrameHeight: 60},
				{Key: "target", Path: "demoscene/ball.png"},
				{Key: "background", Path: "skies/underwater1.png"},
			},
		},
		Debug: false,
		TPS:   60,
	}
}

// Load loads scene config from a YAML or JSON file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	return Parse(data)
}

// Parse overlays data onto the defaults and validates the result.
func Parse(data []byte) (*Scene, error) {
	cfg := Default() // Start with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return cfg, nil
}

// Validate checks the values the scene divides by or clamps against.
func (c *Scene) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.World.Bounds.Width <= 0 || c.World.Bounds.Height <= 0 {
		errs = append(errs, fmt.Errorf("world bounds must be positive, got %gx%g", c.World.Bounds.Width, c.World.Bounds.Height))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera zoom must be positive, got %g", c.Camera.Zoom))
	}
	if c.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player max_speed must be positive, got %g", c.Player.MaxSpeed))
	}
	if c.Reticle.Radius <= 0 {
		errs = append(errs, fmt.Errorf("reticle radius must be positive, got %g", c.Reticle.Radius))
	}
	if c.Reticle.BoundsX < 0 || c.Reticle.BoundsY < 0 {
		errs = append(errs, fmt.Errorf("reticle bounds must not be negative, got %g,%g", c.Reticle.BoundsX, c.Reticle.BoundsY))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := c.Keys.Resolve(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Resolve parses every key name in the config.
func (k KeyConfig) Resolve() (Bindings, error) {
	var b Bindings
	var err error

	parse := func(field, name string) render.Key {
		if err != nil {
			return render.KeyUnknown
		}
		key, perr := render.ParseKey(name)
		if perr != nil {
			err = fmt.Errorf("keys.%s: %w", field, perr)
		}
		return key
	}

	b.Up = parse("up", k.Up)
	b.Down = parse("down", k.Down)
	b.Left = parse("left", k.Left)
	b.Right = parse("right", k.Right)
	b.Debug = parse("debug", k.Debug)
	for _, name := range k.Release {
		b.Release = append(b.Release, parse("release", name))
	}

	if err != nil {
		return Bindings{}, err
	}
	return b, nil
}
