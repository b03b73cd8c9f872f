package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/ecs/entity"
	"github.com/milk9111/pongchaos/powerup"
)

// The adapters below are the world-side collaborators of the effect
// controller. They resolve entities on every call so they survive the ball
// or a paddle being rebuilt.

type ballAdapter struct {
	w *ecs.World
}

func (b *ballAdapter) Velocity() mgl64.Vec3 {
	e, ok := primaryBall(b.w)
	if !ok {
		return mgl64.Vec3{}
	}
	vx, vy := Velocity(b.w, e)
	return mgl64.Vec3{vx, vy, 0}
}

func (b *ballAdapter) SetVelocity(v mgl64.Vec3) {
	if e, ok := primaryBall(b.w); ok {
		SetVelocity(b.w, e, v.X(), v.Y())
	}
}

func (b *ballAdapter) SetGhost(ghost bool) {
	e, ok := primaryBall(b.w)
	if !ok {
		return
	}
	if body, ok := ecs.Get(b.w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Ghost = ghost
	}
}

func (b *ballAdapter) SetBoost(factor float64) {
	e, ok := primaryBall(b.w)
	if !ok {
		return
	}
	if ball, ok := ecs.Get(b.w, e, component.BallComponent.Kind()); ok {
		ball.Boost = factor
	}
}

type paddleAdapter struct {
	w *ecs.World
}

func (p *paddleAdapter) SetEnabled(enabled bool) {
	ecs.ForEach2(p.w, component.AIPaddleComponent.Kind(), component.PaddleComponent.Kind(), func(_ ecs.Entity, _ *component.AIPaddle, paddle *component.Paddle) {
		paddle.Enabled = enabled
	})
}

type controlsAdapter struct {
	w *ecs.World
}

func (c *controlsAdapter) SetInverted(inverted bool) {
	ecs.ForEach(c.w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Inverted = inverted
	})
}

type cloneAdapter struct {
	w *ecs.World
}

func (c *cloneAdapter) SpawnClone(velocity mgl64.Vec3, alpha float64) (func(), error) {
	src, ok := primaryBall(c.w)
	if !ok {
		return nil, fmt.Errorf("no ball to clone")
	}
	t, ok := ecs.Get(c.w, src, component.TransformComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("ball has no transform")
	}
	e, err := entity.NewCloneBall(c.w, t.X, t.Y, velocity.X(), velocity.Y(), alpha)
	if err != nil {
		return nil, err
	}
	w := c.w
	return func() {
		if w.IsAlive(e) {
			ecs.DestroyEntity(w, e)
		}
	}, nil
}

// orbSink turns spawned pickups into orb entities.
type orbSink struct {
	w    *ecs.World
	orbs map[powerup.PickupID]ecs.Entity
}

func newOrbSink(w *ecs.World) *orbSink {
	return &orbSink{w: w, orbs: make(map[powerup.PickupID]ecs.Entity)}
}

func (s *orbSink) SpawnPickup(p *powerup.Pickup) error {
	e, err := entity.NewOrb(s.w, p)
	if err != nil {
		return err
	}
	s.orbs[p.ID] = e
	return nil
}

func (s *orbSink) DespawnPickup(p *powerup.Pickup) {
	e, ok := s.orbs[p.ID]
	if !ok {
		return
	}
	delete(s.orbs, p.ID)
	if s.w.IsAlive(e) {
		ecs.DestroyEntity(s.w, e)
	}
}

func (s *orbSink) entity(id powerup.PickupID) (ecs.Entity, bool) {
	e, ok := s.orbs[id]
	return e, ok && s.w.IsAlive(e)
}
