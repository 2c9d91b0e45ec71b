// Package placeholders draws stand-in art for the shooter so the scene runs
// without the real asset files.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"chosenoffset.com/topdown/internal/config"
)

// Size of the generated plain images
const (
	ReticleSize      = 32
	BackgroundWidth  = 400
	BackgroundHeight = 300
	GridSpacing      = 25
)

// SheetFrames is the number of frames in a generated spritesheet
const SheetFrames = 4

// ColorPalette defines colors for the placeholder art (underwater theme)
var ColorPalette = struct {
	// Player
	Body    color.RGBA
	Outline color.RGBA
	Gun     color.RGBA

	// Reticle
	Reticle     color.RGBA
	ReticleRing color.RGBA

	// Background
	WaterTop    color.RGBA
	WaterBottom color.RGBA
	Grid        color.RGBA

	// Anything unknown
	Missing color.RGBA
}{
	Body:    color.RGBA{60, 150, 220, 255}, // Diver blue
	Outline: color.RGBA{20, 40, 70, 255},
	Gun:     color.RGBA{50, 50, 55, 255}, // Gunmetal

	Reticle:     color.RGBA{255, 80, 60, 255}, // Bright red
	ReticleRing: color.RGBA{255, 255, 255, 255},

	WaterTop:    color.RGBA{20, 90, 140, 255},
	WaterBottom: color.RGBA{5, 25, 60, 255},
	Grid:        color.RGBA{40, 120, 170, 255},

	Missing: color.RGBA{255, 0, 255, 255}, // Magenta
}

// ForTexture returns placeholder art for a texture key. A non-zero frame
// size produces a spritesheet of SheetFrames frames in one row.
func ForTexture(key string, frameWidth, frameHeight int) *image.RGBA {
	if frameWidth > 0 && frameHeight > 0 {
		return CreateSheet(SheetFrames, frameWidth, frameHeight)
	}

	switch key {
	case "target":
		return CreateCircle(ReticleSize, ColorPalette.Reticle, ColorPalette.ReticleRing)
	case "background":
		return CreateBackground(BackgroundWidth, BackgroundHeight)
	default:
		return CreateMissing(ReticleSize)
	}
}

// CreateCircle creates a circular sprite with a one-pixel outline
func CreateCircle(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size-1) / 2
	radius := float64(size)/2 - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center)
			if d <= radius-1 {
				img.Set(x, y, fillColor)
			} else if d <= radius {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreatePlayerFrame draws a top-down figure facing +X (rotation zero).
// step shifts the shoulders slightly so frames differ.
func CreatePlayerFrame(width, height, step int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	cx := float64(width) / 2
	cy := float64(height) / 2
	r := math.Min(cx, cy) * 0.6
	shift := float64(step%2) * 2

	// Gun barrel pointing right
	barrelTop := int(cy) + int(r/3)
	barrel := image.Rect(int(cx), barrelTop, width-2, barrelTop+4)
	draw.Draw(img, barrel, &image.Uniform{ColorPalette.Gun}, image.Point{}, draw.Src)

	// Shoulders then head
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx + shift) / (r * 0.7)
			dy := (float64(y) - cy) / r
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, ColorPalette.Body)
			}
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r*0.45 {
				img.Set(x, y, ColorPalette.Outline)
			}
		}
	}

	return img
}

// CreateSheet lays out frames of the player in a single row
func CreateSheet(frames, frameWidth, frameHeight int) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, frames*frameWidth, frameHeight))

	for i := 0; i < frames; i++ {
		frame := CreatePlayerFrame(frameWidth, frameHeight, i)
		dst := image.Rect(i*frameWidth, 0, (i+1)*frameWidth, frameHeight)
		draw.Draw(sheet, dst, frame, image.Point{}, draw.Src)
	}

	return sheet
}

// CreateBackground creates a vertical water gradient with a grid, so
// camera movement is visible
func CreateBackground(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(height-1, 1))
		row := lerp(ColorPalette.WaterTop, ColorPalette.WaterBottom, t)
		for x := 0; x < width; x++ {
			if x%GridSpacing == 0 || y%GridSpacing == 0 {
				img.Set(x, y, ColorPalette.Grid)
			} else {
				img.Set(x, y, row)
			}
		}
	}

	return img
}

// CreateMissing creates a checkerboard for unknown textures
func CreateMissing(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x < half) != (y < half) {
				img.Set(x, y, ColorPalette.Missing)
			} else {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes placeholder art for every texture under dir,
// creating subdirectories as needed
func GenerateAndSave(dir string, textures []config.TextureEntry) error {
	for _, tex := range textures {
		path := filepath.Join(dir, tex.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", tex.Key, err)
		}

		img := ForTexture(tex.Key, tex.FrameWidth, tex.FrameHeight)
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}

		b := img.Bounds()
		fmt.Printf("✓ Generated %s (%dx%d pixels)\n", path, b.Dx(), b.Dy())
	}

	return nil
}
