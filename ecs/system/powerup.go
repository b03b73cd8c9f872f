package system

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/ecs/entity"
	"github.com/milk9111/pongchaos/powerup"
	"github.com/milk9111/pongchaos/prefabs"
)

// PowerUpSystem drives the orb spawner and the effect controller and plays
// their cosmetic side effects. The spawner runs on simulation time; the
// controller runs on unscaled time so slow motion does not stretch effects.
type PowerUpSystem struct {
	world      *ecs.World
	clock      *Clock
	controller *powerup.Controller
	spawner    *powerup.Spawner
	sink       *orbSink
	rng        *rand.Rand
	burst      prefabs.ParticleSpec

	activated []*powerup.Definition
	expired   []*powerup.Definition
	loop      string
}

// NewPowerUpSystem binds the controller's collaborators and the spawner's
// sink to w and hooks the trigger's cosmetics.
func NewPowerUpSystem(w *ecs.World, clock *Clock, controller *powerup.Controller, spawner *powerup.Spawner, trigger *powerup.Trigger, rng *rand.Rand, burst prefabs.ParticleSpec) *PowerUpSystem {
	s := &PowerUpSystem{
		world:      w,
		clock:      clock,
		controller: controller,
		spawner:    spawner,
		sink:       newOrbSink(w),
		rng:        rng,
		burst:      burst,
	}

	env := controller.Env()
	env.Ball = &ballAdapter{w: w}
	env.AI = &paddleAdapter{w: w}
	env.Controls = &controlsAdapter{w: w}
	env.Clock = clock
	env.Clones = &cloneAdapter{w: w}

	controller.OnActivate = func(def *powerup.Definition) {
		s.activated = append(s.activated, def)
	}
	controller.OnExpire = func(def *powerup.Definition) {
		s.expired = append(s.expired, def)
	}
	spawner.SetSink(s.sink)
	if trigger != nil {
		trigger.OnCollected = s.collected
	}
	return s
}

func (s *PowerUpSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	if matchState(w) == component.MatchPlaying {
		s.spawner.Tick(s.clock.ScaledDt())
	}
	s.controller.Tick(s.clock.Dt())

	for _, def := range s.activated {
		PlaySound(w, def.ActivationSound)
	}
	for range s.expired {
		PlaySound(w, "expire")
	}
	s.activated = s.activated[:0]
	s.expired = s.expired[:0]

	s.syncLoop(w)
	s.syncUrgency(w)
}

// syncLoop keeps the looping sound in step with whatever effect is live,
// including after preemption or a cancel.
func (s *PowerUpSystem) syncLoop(w *ecs.World) {
	want := ""
	if active, ok := s.controller.Active(); ok {
		want = active.Definition.LoopSound
	}
	if want == s.loop {
		return
	}
	StopSound(w, s.loop)
	PlaySound(w, want)
	s.loop = want
}

// syncUrgency ticks once per second during the last seconds of an effect.
func (s *PowerUpSystem) syncUrgency(w *ecs.World) {
	st := s.controller.Status()
	if !st.Urgent() {
		return
	}
	dt := s.clock.Dt()
	if dt <= 0 {
		return
	}
	prev := st.Remaining + dt
	if int(prev) != int(st.Remaining) {
		PlaySound(w, "tick_urgent")
	}
}

func (s *PowerUpSystem) collected(p *powerup.Pickup) {
	x, y := p.Position.X(), p.Position.Y()
	if e, ok := s.sink.entity(p.ID); ok {
		if t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
			x, y = t.X, t.Y
		}
	}

	var tint color.Color = color.White
	if p.Definition != nil && p.Definition.GlowColor != "" {
		c, err := prefabs.ParseColor(p.Definition.GlowColor)
		if err != nil {
			log.Printf("powerup: %s glow: %v", p.Definition.Name, err)
		} else {
			tint = c
		}
	}
	entity.SpawnBurst(s.world, s.rng, x, y, tint, s.burst.Count, s.burst.Speed, s.burst.Lifetime)
	PlaySound(s.world, "pickup")
}

// Reset cancels the active effect and clears every orb.
func (s *PowerUpSystem) Reset() {
	if s == nil {
		return
	}
	s.controller.Cancel()
	s.spawner.Stop()
	StopSound(s.world, s.loop)
	s.loop = ""
}

func matchState(w *ecs.World) component.MatchState {
	e, ok := ecs.First(w, component.MatchComponent.Kind())
	if !ok {
		return component.MatchPlaying
	}
	m, ok := ecs.Get(w, e, component.MatchComponent.Kind())
	if !ok {
		return component.MatchPlaying
	}
	return m.State
}

// StartMatch clears leftovers and starts the orb cycle from the initial
// delay. It runs on the first serve of every match.
func (s *PowerUpSystem) StartMatch() {
	if s == nil {
		return
	}
	s.Reset()
	s.spawner.Start()
}

// EndRound runs on a goal that does not end the match: the effect is
// cancelled and the orbs go, but the spawn timer carries into the next rally.
func (s *PowerUpSystem) EndRound() {
	if s == nil {
		return
	}
	s.controller.Cancel()
	s.spawner.Clear()
	StopSound(s.world, s.loop)
	s.loop = ""
}

// EndMatch stops the cycle until the next StartMatch.
func (s *PowerUpSystem) EndMatch() {
	s.Reset()
}
