package system

import (
	"testing"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

func TestTTL(t *testing.T) {
	w := ecs.NewWorld()
	clock := NewClock()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2})
	sys := NewTTLSystem(clock)

	clock.SetPaused(true)
	sys.Update(w)
	if ttl, _ := ecs.Get(w, e, component.TTLComponent.Kind()); ttl.Frames != 2 {
		t.Fatalf("ttl ticked while paused")
	}

	clock.SetPaused(false)
	sys.Update(w)
	if !w.IsAlive(e) {
		t.Fatalf("destroyed one frame early")
	}
	sys.Update(w)
	if w.IsAlive(e) {
		t.Fatalf("not destroyed after its ttl")
	}
}

func TestParticlesFade(t *testing.T) {
	w := ecs.NewWorld()
	clock := NewClock()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Alpha: 1})
	_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{VX: 6, Drag: 0.9, Lifetime: 10})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 10})

	particles := NewParticleSystem(clock)
	ttl := NewTTLSystem(clock)
	for i := 0; i < 5; i++ {
		particles.Update(w)
		ttl.Update(w)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	p, _ := ecs.Get(w, e, component.ParticleComponent.Kind())
	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if tr.X <= 0 || p.VX >= 6 {
		t.Fatalf("particle x=%v vx=%v, want moving and slowing", tr.X, p.VX)
	}
	if s.Alpha >= 1 || s.Alpha <= 0 {
		t.Fatalf("alpha = %v, want fading", s.Alpha)
	}
}
