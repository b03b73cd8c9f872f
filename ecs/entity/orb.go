package entity

import (
	"fmt"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/powerup"
	"github.com/milk9111/pongchaos/prefabs"
)

// NewOrb materializes a pickup as an orb entity glowing in its definition's
// colour.
func NewOrb(w *ecs.World, p *powerup.Pickup) (ecs.Entity, error) {
	if p == nil || p.Definition == nil {
		return 0, fmt.Errorf("orb: pickup without definition")
	}
	e, err := BuildEntity(w, "orb.yaml")
	if err != nil {
		return 0, fmt.Errorf("orb: %w", err)
	}
	if err := SetEntityTransform(w, e, p.Position.X(), p.Position.Y(), 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("orb: %w", err)
	}
	if pk, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok {
		pk.Ref = p
	}
	if p.Definition.GlowColor != "" {
		c, err := prefabs.ParseColor(p.Definition.GlowColor)
		if err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("orb %s: %w", p.Definition.Name, err)
		}
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			s.Tint = c
		}
	}
	return e, nil
}
