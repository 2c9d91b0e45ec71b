package assets

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/topdown/internal/config"
	"chosenoffset.com/topdown/internal/render"
)

type fakeImage struct {
	bounds   image.Rectangle
	disposed bool
}

func (f *fakeImage) Bounds() image.Rectangle { return f.bounds }
func (f *fakeImage) Size() (int, int)        { return f.bounds.Dx(), f.bounds.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{bounds: r.Intersect(f.bounds)}
}
func (f *fakeImage) Fill(color.Color)                                 {}
func (f *fakeImage) Clear()                                           {}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (f *fakeImage) Dispose()                                         { f.disposed = true }

type fakeLoader struct {
	files     map[string]image.Rectangle
	generated int
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	r, ok := l.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return &fakeImage{bounds: r}, nil
}

func (l *fakeLoader) NewImageFromImage(img image.Image) render.Image {
	l.generated++
	return &fakeImage{bounds: img.Bounds()}
}

func TestLoadSlicesSpritesheet(t *testing.T) {
	cfg := config.Default().Assets
	loader := &fakeLoader{files: map[string]image.Rectangle{
		"assets/sprites/player_handgun.png": image.Rect(0, 0, 66*3, 60*2),
		"assets/demoscene/ball.png":         image.Rect(0, 0, 32, 32),
		"assets/skies/underwater1.png":      image.Rect(0, 0, 800, 600),
	}}

	lib, err := Load(cfg, loader)
	if err != nil {
		t.Fatalf("Failed to load assets: %v", err)
	}
	if loader.generated != 0 {
		t.Errorf("Expected no placeholders, got %d", loader.generated)
	}

	sheet, ok := lib.Get("player_handgun")
	if !ok {
		t.Fatal("Expected player spritesheet to be loaded")
	}
	if sheet.FrameCount() != 6 {
		t.Fatalf("Expected 6 frames, got %d", sheet.FrameCount())
	}

	// Frames are row-major
	frame := sheet.Frame(4)
	if got := frame.Bounds(); got != image.Rect(66, 60, 132, 120) {
		t.Errorf("Expected frame 4 at (66,60)-(132,120), got %v", got)
	}

	// Out of range falls back to the whole image
	if got := sheet.Frame(99).Bounds(); got != image.Rect(0, 0, 198, 120) {
		t.Errorf("Expected whole sheet for out-of-range frame, got %v", got)
	}

	target, _ := lib.Get("target")
	if target.FrameCount() != 1 {
		t.Errorf("Expected plain image to have 1 frame, got %d", target.FrameCount())
	}
}

func TestLoadFallsBackToPlaceholders(t *testing.T) {
	cfg := config.Default().Assets
	loader := &fakeLoader{files: map[string]image.Rectangle{}}

	lib, err := Load(cfg, loader)
	if err != nil {
		t.Fatalf("Failed to load assets: %v", err)
	}
	if loader.generated != len(cfg.Textures) {
		t.Errorf("Expected %d placeholders, got %d", len(cfg.Textures), loader.generated)
	}

	for _, entry := range cfg.Textures {
		tex, ok := lib.Get(entry.Key)
		if !ok {
			t.Fatalf("Expected %s to be present", entry.Key)
		}
		if !tex.Placeholder {
			t.Errorf("Expected %s to be marked as placeholder", entry.Key)
		}
	}

	img, ok := lib.Frame("player_handgun", 0)
	if !ok {
		t.Fatal("Expected player frame")
	}
	if w, h := img.Size(); w != 66 || h != 60 {
		t.Errorf("Expected 66x60 frame, got %dx%d", w, h)
	}
}

func TestLoadRejectsMissingKey(t *testing.T) {
	cfg := config.AssetConfig{Textures: []config.TextureEntry{{Path: "x.png"}}}
	if _, err := Load(cfg, &fakeLoader{}); err == nil {
		t.Error("Expected error for texture without key")
	}
}

func TestFrameUnknownKey(t *testing.T) {
	lib := NewLibrary()
	if _, ok := lib.Frame("nope", 0); ok {
		t.Error("Expected unknown key to be reported")
	}
}

func TestDispose(t *testing.T) {
	lib := NewLibrary()
	img := &fakeImage{bounds: image.Rect(0, 0, 4, 4)}
	lib.Add(&Texture{Key: "a", Image: img})

	lib.Dispose()

	if !img.disposed {
		t.Error("Expected image to be disposed")
	}
	if _, ok := lib.Get("a"); ok {
		t.Error("Expected library to be empty")
	}
}
