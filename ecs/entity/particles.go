package entity

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

const particleLayer = 30

// SpawnBurst scatters count particles from (x, y).
func SpawnBurst(w *ecs.World, rng *rand.Rand, x, y float64, tint color.Color, count int, speed float64, lifetime int) {
	if w == nil || count <= 0 || lifetime <= 0 {
		return
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + rng.Float64()*0.4
		v := speed * (0.5 + rng.Float64())
		size := 6 + rng.Float64()*6

		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
		_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.ShapeCircle,
			Width:  size,
			Height: size,
			Tint:   tint,
			Alpha:  1,
		})
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: particleLayer})
		_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
			VX:        math.Cos(angle) * v,
			VY:        math.Sin(angle) * v,
			Drag:      0.94,
			Lifetime:  lifetime,
			StartSize: size,
		})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: lifetime})
	}
}
