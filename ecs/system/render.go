package system

import (
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pongchaos/assets"
	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/powerup"
	"golang.org/x/image/colornames"
)

const ghostAlpha = 0.4

var (
	frozenTint  = color.NRGBA{R: 0x9f, G: 0xe8, B: 0xff, A: 0xff}
	shieldColor = colornames.Deepskyblue
	mirrorColor = colornames.Violet
	debugColor  = colornames.Lime
)

type RenderSystem struct {
	// Toggles reports the live effect flags for the goal-line overlays.
	Toggles func() powerup.Toggles
	Debug   bool

	missing map[string]bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{missing: make(map[string]bool)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	r.drawCourt(screen)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden {
			continue
		}
		img := r.image(s)
		if img == nil {
			continue
		}

		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		sx, sy := 1.0, 1.0
		if s.Width > 0 {
			sx = s.Width / iw
		}
		if s.Height > 0 {
			sy = s.Height / ih
		}
		if t.ScaleX != 0 {
			sx *= t.ScaleX
		}
		if t.ScaleY != 0 {
			sy *= t.ScaleY
		}
		if s.Pulse > 0 {
			sx *= s.Pulse
			sy *= s.Pulse
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-iw/2, -ih/2)
		op.GeoM.Scale(sx, sy)
		// Field rotation is counter-clockwise with +Y up.
		op.GeoM.Rotate(-t.Rotation)
		px, py := common.WorldToScreen(t.X, t.Y)
		op.GeoM.Translate(px, py)

		tint := s.Tint
		alpha := s.Alpha
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Ghost {
			alpha *= ghostAlpha
		}
		if p, ok := ecs.Get(w, e, component.PaddleComponent.Kind()); ok && !p.Enabled {
			tint = frozenTint
		}
		if tint != nil {
			op.ColorScale.ScaleWithColor(tint)
		}
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(img, op)
	}

	r.drawGoalLines(screen)
	if r.Debug {
		r.drawColliders(w, screen)
	}
}

// image builds the sprite's image on first use.
func (r *RenderSystem) image(s *component.Sprite) *ebiten.Image {
	if s.Image != nil {
		return s.Image
	}
	switch s.Shape {
	case component.ShapeCircle:
		s.Image = assets.Circle(s.Width / 2)
	case component.ShapeOrb:
		s.Image = assets.Orb(s.Width / 2)
	case component.ShapeRect:
		s.Image = assets.Rect(s.Width, s.Height)
	case component.ShapeImage:
		img, err := assets.LoadImage(s.ImageName)
		if err != nil {
			if !r.missing[s.ImageName] {
				log.Printf("render: %v", err)
				r.missing[s.ImageName] = true
			}
			return nil
		}
		s.Image = img
	}
	return s.Image
}

func (r *RenderSystem) drawCourt(screen *ebiten.Image) {
	const dash = 0.6
	x, _ := common.WorldToScreen(0, 0)
	for y := -common.FieldHalfHeight; y < common.FieldHalfHeight; y += dash * 2 {
		_, y0 := common.WorldToScreen(0, y)
		_, y1 := common.WorldToScreen(0, y+dash)
		vector.StrokeLine(screen, float32(x), float32(y0), float32(x), float32(y1), 2, colornames.Dimgray, false)
	}
}

func (r *RenderSystem) drawGoalLines(screen *ebiten.Image) {
	if r.Toggles == nil {
		return
	}
	tg := r.Toggles()
	if tg.Mirror {
		r.goalLine(screen, -common.FieldHalfWidth, mirrorColor)
		r.goalLine(screen, common.FieldHalfWidth, mirrorColor)
		return
	}
	if tg.Shield {
		r.goalLine(screen, -common.FieldHalfWidth, shieldColor)
	}
}

func (r *RenderSystem) goalLine(screen *ebiten.Image, x float64, c color.Color) {
	x0, y0 := common.WorldToScreen(x, common.FieldHalfHeight)
	x1, y1 := common.WorldToScreen(x, -common.FieldHalfHeight)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 6, c, true)
}

func (r *RenderSystem) drawColliders(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		cx, cy := common.WorldToScreen(t.X, t.Y)
		if b.Radius > 0 {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(b.Radius*common.PixelsPerUnit), 1, debugColor, true)
			return
		}
		pw, ph := b.Width*common.PixelsPerUnit, b.Height*common.PixelsPerUnit
		vector.StrokeRect(screen, float32(cx-pw/2), float32(cy-ph/2), float32(pw), float32(ph), 1, debugColor, false)
	})
}
