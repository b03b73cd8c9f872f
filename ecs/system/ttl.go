package system

import (
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// TTLSystem decrements frame-based TTL components and destroys entities when
// the TTL reaches zero. It stands still while the clock is paused.
type TTLSystem struct {
	clock *Clock
}

func NewTTLSystem(clock *Clock) *TTLSystem {
	return &TTLSystem{clock: clock}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil || s.clock.ScaledDt() <= 0 {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl == nil {
			return
		}

		if ttl.Frames > 1 {
			ttl.Frames--
			return
		}

		// TTL expired: destroy the entity
		ecs.DestroyEntity(w, e)
	})
}
