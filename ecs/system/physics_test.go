package system

import (
	"testing"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// runPhysics steps until done reports true or frames run out, handing each
// frame's contacts to done.
func runPhysics(tf *testField, ps *PhysicsSystem, frames int, done func([]ecs.ContactEvent) bool) bool {
	for i := 0; i < frames; i++ {
		ps.Update(tf.w)
		var contacts []ecs.ContactEvent
		for _, evt := range tf.w.Events().Drain() {
			if c, ok := evt.Data.(ecs.ContactEvent); ok {
				contacts = append(contacts, c)
			}
		}
		if done(contacts) {
			return true
		}
	}
	return false
}

func TestPhysics_BallBouncesOffPaddle(t *testing.T) {
	tf := newTestField(t)
	ps := NewPhysicsSystem(tf.clock)
	SetVelocity(tf.w, tf.f.Ball, 20, 0)

	hit := runPhysics(tf, ps, 120, func(cs []ecs.ContactEvent) bool {
		for _, c := range cs {
			if c.Kind == ecs.ContactBallPaddle && c.Other == tf.f.AI && c.Ball == tf.f.Ball {
				return true
			}
		}
		return false
	})
	if !hit {
		t.Fatalf("ball never reached the ai paddle")
	}

	ps.Update(tf.w)
	if vx, _ := Velocity(tf.w, tf.f.Ball); vx >= 0 {
		t.Fatalf("vx after paddle = %v, want negative", vx)
	}
}

func TestPhysics_GhostPassesPaddles(t *testing.T) {
	tf := newTestField(t)
	ps := NewPhysicsSystem(tf.clock)
	SetVelocity(tf.w, tf.f.Ball, 20, 0)
	body, _ := ecs.Get(tf.w, tf.f.Ball, component.PhysicsBodyComponent.Kind())
	body.Ghost = true

	var paddleHits int
	scored := runPhysics(tf, ps, 120, func(cs []ecs.ContactEvent) bool {
		for _, c := range cs {
			switch c.Kind {
			case ecs.ContactBallPaddle:
				paddleHits++
			case ecs.ContactBallGoal:
				return true
			}
		}
		return false
	})
	if !scored {
		t.Fatalf("ghost ball never reached the goal")
	}
	if paddleHits != 0 {
		t.Fatalf("ghost ball hit a paddle %d times", paddleHits)
	}
}

func TestPhysics_WallsStillBounceGhost(t *testing.T) {
	tf := newTestField(t)
	ps := NewPhysicsSystem(tf.clock)
	SetVelocity(tf.w, tf.f.Ball, 2, 20)
	body, _ := ecs.Get(tf.w, tf.f.Ball, component.PhysicsBodyComponent.Kind())
	body.Ghost = true

	hit := runPhysics(tf, ps, 120, func(cs []ecs.ContactEvent) bool {
		for _, c := range cs {
			if c.Kind == ecs.ContactBallWall {
				return true
			}
		}
		return false
	})
	if !hit {
		t.Fatalf("ball never hit the wall")
	}
	ps.Update(tf.w)
	if _, vy := Velocity(tf.w, tf.f.Ball); vy >= 0 {
		t.Fatalf("vy after wall = %v, want negative", vy)
	}
}

func TestPhysics_PausedClockHoldsStill(t *testing.T) {
	tf := newTestField(t)
	ps := NewPhysicsSystem(tf.clock)
	SetVelocity(tf.w, tf.f.Ball, 20, 0)
	tf.clock.SetPaused(true)

	for i := 0; i < 10; i++ {
		ps.Update(tf.w)
	}
	tr, _ := ecs.Get(tf.w, tf.f.Ball, component.TransformComponent.Kind())
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("ball moved while paused: (%v, %v)", tr.X, tr.Y)
	}
}

func TestPhysics_DestroyedEntityLeavesSpace(t *testing.T) {
	tf := newTestField(t)
	ps := NewPhysicsSystem(tf.clock)
	ps.Update(tf.w)
	before := len(ps.entities)

	ecs.DestroyEntity(tf.w, tf.f.Ball)
	ps.Update(tf.w)

	if got := len(ps.entities); got != before-1 {
		t.Fatalf("tracked bodies = %d, want %d", got, before-1)
	}
}
