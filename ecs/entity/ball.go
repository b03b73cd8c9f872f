package entity

import (
	"fmt"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// NewCloneBall duplicates the ball prefab at (x, y) moving at (vx, vy). The
// clone is drawn translucent and never scores.
func NewCloneBall(w *ecs.World, x, y, vx, vy, alpha float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "ball.yaml")
	if err != nil {
		return 0, fmt.Errorf("clone ball: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("clone ball: %w", err)
	}
	_ = ecs.Add(w, e, component.CloneTagComponent.Kind(), &component.CloneTag{})

	if b, ok := ecs.Get(w, e, component.BallComponent.Kind()); ok {
		b.Active = true
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.VX, body.VY = vx, vy
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Alpha = alpha
	}
	return e, nil
}
