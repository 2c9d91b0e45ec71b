// Package assets loads the scene's textures and slices spritesheets into frames.
package assets

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"chosenoffset.com/topdown/internal/config"
	"chosenoffset.com/topdown/internal/placeholders"
	"chosenoffset.com/topdown/internal/render"
)

// Texture is a loaded image, optionally divided into equal frames.
type Texture struct {
	Key         string
	Image       render.Image
	FrameWidth  int
	FrameHeight int
	Placeholder bool // Generated because the file could not be loaded

	frames []render.Image
}

// FrameCount returns the number of frames in the texture.
func (t *Texture) FrameCount() int {
	if len(t.frames) == 0 {
		return 1
	}
	return len(t.frames)
}

// Frame returns frame i (row-major). Out-of-range frames and plain images
// return the whole image.
func (t *Texture) Frame(i int) render.Image {
	if i < 0 || i >= len(t.frames) {
		return t.Image
	}
	return t.frames[i]
}

func (t *Texture) slice() {
	t.frames = nil
	if t.FrameWidth <= 0 || t.FrameHeight <= 0 {
		return
	}

	b := t.Image.Bounds()
	cols := b.Dx() / t.FrameWidth
	rows := b.Dy() / t.FrameHeight
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*t.FrameWidth
			y := b.Min.Y + row*t.FrameHeight
			t.frames = append(t.frames, t.Image.SubImage(image.Rect(x, y, x+t.FrameWidth, y+t.FrameHeight)))
		}
	}
}

// Library holds textures by key
type Library struct {
	textures map[string]*Texture
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{textures: make(map[string]*Texture)}
}

// Load loads every texture in cfg. Files that fail to load are replaced by
// generated placeholders and logged.
func Load(cfg config.AssetConfig, loader render.ResourceLoader) (*Library, error) {
	lib := NewLibrary()

	for _, entry := range cfg.Textures {
		if entry.Key == "" {
			return nil, fmt.Errorf("texture %q has no key", entry.Path)
		}

		path := filepath.Join(cfg.Dir, entry.Path)
		img, err := loader.LoadImage(path)
		placeholder := false
		if err != nil {
			log.Printf("Warning: Failed to load texture %s from %s, using placeholder: %v", entry.Key, path, err)
			img = loader.NewImageFromImage(placeholders.ForTexture(entry.Key, entry.FrameWidth, entry.FrameHeight))
			placeholder = true
		}

		tex := &Texture{
			Key:         entry.Key,
			Image:       img,
			FrameWidth:  entry.FrameWidth,
			FrameHeight: entry.FrameHeight,
			Placeholder: placeholder,
		}
		lib.Add(tex)
		log.Printf("Loaded texture %s (%d frames)", entry.Key, tex.FrameCount())
	}

	return lib, nil
}

// Add registers a texture, replacing any with the same key.
func (l *Library) Add(t *Texture) {
	t.slice()
	l.textures[t.Key] = t
}

// Get returns a texture by key
func (l *Library) Get(key string) (*Texture, bool) {
	t, ok := l.textures[key]
	return t, ok
}

// Frame returns frame i of the texture with the given key.
func (l *Library) Frame(key string, i int) (render.Image, bool) {
	t, ok := l.textures[key]
	if !ok {
		return nil, false
	}
	return t.Frame(i), true
}

// Dispose releases every texture.
func (l *Library) Dispose() {
	for key, t := range l.textures {
		t.Image.Dispose()
		delete(l.textures, key)
	}
}
