package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/topdown/internal/render"
)

func TestKeyMappingCoversBindings(t *testing.T) {
	keys := []struct {
		key  render.Key
		want ebiten.Key
	}{
		{render.KeyW, ebiten.KeyW},
		{render.KeyA, ebiten.KeyA},
		{render.KeyS, ebiten.KeyS},
		{render.KeyD, ebiten.KeyD},
		{render.KeyQ, ebiten.KeyQ},
		{render.KeyEscape, ebiten.KeyEscape},
		{render.KeyF1, ebiten.KeyF1},
		{render.KeyUp, ebiten.KeyArrowUp},
	}

	for _, tt := range keys {
		got, ok := keyToEbitenKey(tt.key)
		if !ok {
			t.Errorf("Expected %v to map to an ebiten key", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("Expected %v for %v, got %v", tt.want, tt.key, got)
		}
	}
}

func TestUnknownKeyIsUnmapped(t *testing.T) {
	if _, ok := keyToEbitenKey(render.KeyUnknown); ok {
		t.Error("Expected KeyUnknown to have no ebiten mapping")
	}
}

func TestMouseButtonMapping(t *testing.T) {
	if got := mouseButtonToEbiten(render.MouseButtonRight); got != ebiten.MouseButtonRight {
		t.Errorf("Expected right mouse button, got %v", got)
	}
}

func TestRendererFace(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	er := r.(*EbitenRenderer)
	if got := er.face(2).Size; got != 2*baseFontSize {
		t.Errorf("Expected size %d, got %f", 2*baseFontSize, got)
	}
	if got := er.face(0).Size; got != baseFontSize {
		t.Errorf("Expected non-positive scale to fall back to %d, got %f", baseFontSize, got)
	}
}
