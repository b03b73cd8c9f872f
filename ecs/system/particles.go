package system

import (
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// ParticleSystem moves particles and fades them out over their TTL.
type ParticleSystem struct {
	clock *Clock
}

func NewParticleSystem(clock *Clock) *ParticleSystem {
	return &ParticleSystem{clock: clock}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := s.clock.ScaledDt()
	if dt <= 0 {
		return
	}

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		t.X += p.VX * dt
		t.Y += p.VY * dt
		p.VX *= p.Drag
		p.VY *= p.Drag

		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || p.Lifetime <= 0 {
			return
		}
		ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind())
		if !ok {
			return
		}
		life := float64(ttl.Frames) / float64(p.Lifetime)
		sprite.Alpha = life
		sprite.Pulse = 0.4 + 0.6*life
	})
}
