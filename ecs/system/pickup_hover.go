package system

import (
	"math"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// PickupHoverSystem bobs and spins orbs.
type PickupHoverSystem struct {
	clock *Clock
}

func NewPickupHoverSystem(clock *Clock) *PickupHoverSystem {
	return &PickupHoverSystem{clock: clock}
}

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := s.clock.ScaledDt()

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		if !p.Initialized {
			p.BaseY = t.Y
			if p.Ref != nil {
				// Stagger orbs so they do not bob in step.
				p.BobPhase = float64(p.Ref.ID) * 1.7
			}
			p.Initialized = true
		}
		if dt <= 0 {
			return
		}

		p.BobPhase += p.BobSpeed * dt
		t.Y = p.BaseY + math.Sin(p.BobPhase)*p.BobAmplitude
		t.Rotation = math.Mod(t.Rotation+p.SpinSpeed*math.Pi/180*dt, 2*math.Pi)

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Pulse = 1 + 0.08*math.Sin(p.BobPhase*3)
		}
	})
}
