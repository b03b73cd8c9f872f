package system

import (
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/powerup"
)

// PickupTriggerSystem feeds ball/orb contacts to the pickup trigger.
type PickupTriggerSystem struct {
	trigger *powerup.Trigger
}

func NewPickupTriggerSystem(trigger *powerup.Trigger) *PickupTriggerSystem {
	return &PickupTriggerSystem{trigger: trigger}
}

func (s *PickupTriggerSystem) Update(w *ecs.World) {
	if s == nil || s.trigger == nil || w == nil {
		return
	}
	for _, c := range w.Events().Contacts(ecs.ContactBallOrb) {
		p, ok := ecs.Get(w, c.Other, component.PickupComponent.Kind())
		if !ok || p.Ref == nil {
			continue
		}
		s.trigger.Contact(p.Ref, c.Tag)
	}
}
