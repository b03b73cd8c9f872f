package system

import (
	"math"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// primaryBall returns the ball that scores, i.e. the one that is not a clone.
func primaryBall(w *ecs.World) (ecs.Entity, bool) {
	for _, e := range w.Query(component.BallTagComponent.Kind()) {
		if !ecs.Has(w, e, component.CloneTagComponent.Kind()) {
			return e, true
		}
	}
	return 0, false
}

func isClone(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.CloneTagComponent.Kind())
}

// SetVelocity updates the component mirror and the live body, if any.
func SetVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	body.VX, body.VY = vx, vy
	if body.Body != nil {
		body.Body.SetVelocity(vx, vy)
	}
}

func Velocity(w *ecs.World, e ecs.Entity) (float64, float64) {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return 0, 0
	}
	return body.VX, body.VY
}

// SetPosition moves the transform and teleports the live body.
func SetPosition(w *ecs.World, e ecs.Entity, x, y float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		body.Body.SetPosition(cpv(x, y))
	}
}

// PlaySound flags the named clip on the first audio entity that has it.
func PlaySound(w *ecs.World, name string) {
	if name == "" {
		return
	}
	for _, e := range w.Query(component.AudioComponent.Kind()) {
		if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok && a.Request(name) {
			return
		}
	}
}

// StopSound flags the named clip to stop.
func StopSound(w *ecs.World, name string) {
	if name == "" {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		for i, n := range a.Names {
			if n == name && i < len(a.Stop) {
				a.Stop[i] = true
			}
		}
	})
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func speedOf(vx, vy float64) float64 {
	return math.Hypot(vx, vy)
}
