package assets

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	imageMu    sync.Mutex
	imageCache = map[string]*ebiten.Image{}
)

func cached(key string, build func() *ebiten.Image) *ebiten.Image {
	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := imageCache[key]; ok {
		return img
	}
	img := build()
	imageCache[key] = img
	return img
}

// Circle returns a filled white circle of the given pixel radius. Sprites
// tint it at draw time.
func Circle(radius float64) *ebiten.Image {
	r := math.Max(1, math.Ceil(radius))
	return cached(fmt.Sprintf("circle:%v", r), func() *ebiten.Image {
		size := int(r * 2)
		img := ebiten.NewImage(size, size)
		vector.DrawFilledCircle(img, float32(r), float32(r), float32(r), color.White, true)
		return img
	})
}

// Rect returns a filled white rectangle.
func Rect(width, height float64) *ebiten.Image {
	w := int(math.Max(1, math.Round(width)))
	h := int(math.Max(1, math.Round(height)))
	return cached(fmt.Sprintf("rect:%dx%d", w, h), func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		img.Fill(color.White)
		return img
	})
}

// Orb returns a soft glowing disc: a bright core with fading rings.
func Orb(radius float64) *ebiten.Image {
	r := math.Max(2, math.Ceil(radius))
	return cached(fmt.Sprintf("orb:%v", r), func() *ebiten.Image {
		size := int(r * 2)
		img := ebiten.NewImage(size, size)
		const rings = 6
		for i := rings; i >= 1; i-- {
			f := float64(i) / rings
			a := uint8(255 * (1 - f) * 0.8)
			if i == 1 {
				a = 255
			}
			vector.DrawFilledCircle(img, float32(r), float32(r), float32(r*f), color.NRGBA{R: 255, G: 255, B: 255, A: a}, true)
		}
		// Facet so the spin is visible.
		vector.StrokeLine(img, float32(r), float32(r*0.35), float32(r), float32(r*1.65), float32(math.Max(1, r*0.12)), colornames.Black, true)
		return img
	})
}

// LoadImage resolves the named images prefabs refer to.
func LoadImage(name string) (*ebiten.Image, error) {
	switch name {
	case "particle":
		return Circle(4), nil
	case "spark":
		return Rect(3, 3), nil
	case "center_line":
		return cached("center_line", func() *ebiten.Image {
			img := ebiten.NewImage(4, 720)
			for y := 0; y < 720; y += 30 {
				vector.DrawFilledRect(img, 0, float32(y), 4, 16, colornames.Dimgray, false)
			}
			return img
		}), nil
	}
	return nil, fmt.Errorf("assets: unknown image %q", name)
}
