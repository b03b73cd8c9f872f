package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pongchaos/powerup"
)

const baseSpeed = 10.0

type simBall struct {
	vel   mgl64.Vec3
	ghost bool
	boost float64
}

func (b *simBall) Velocity() mgl64.Vec3     { return b.vel }
func (b *simBall) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *simBall) SetGhost(g bool)          { b.ghost = g }
func (b *simBall) SetBoost(f float64)       { b.boost = f }

type simPaddle struct{ enabled bool }

func (p *simPaddle) SetEnabled(e bool) { p.enabled = e }

type simControls struct{ inverted bool }

func (c *simControls) SetInverted(i bool) { c.inverted = i }

type simClock struct{ scale float64 }

func (c *simClock) TimeScale() float64     { return c.scale }
func (c *simClock) SetTimeScale(s float64) { c.scale = s }

type simClones struct{ live int }

func (c *simClones) SpawnClone(mgl64.Vec3, float64) (func(), error) {
	c.live++
	done := false
	return func() {
		if !done {
			done = true
			c.live--
		}
	}, nil
}

type simSink struct{}

func (simSink) SpawnPickup(*powerup.Pickup) error { return nil }
func (simSink) DespawnPickup(*powerup.Pickup)     {}

// soak runs the power-up machinery against stand-in collaborators, collects
// orbs at random and checks the effect invariants after every step.
type soak struct {
	rng     *rand.Rand
	ctrl    *powerup.Controller
	spawner *powerup.Spawner
	trigger *powerup.Trigger

	ball     *simBall
	ai       *simPaddle
	controls *simControls
	clock    *simClock
	clones   *simClones

	// collectRate is the chance per second that a live orb gets touched.
	collectRate float64

	elapsed     float64
	collected   int
	activations map[powerup.Kind]int
	violations  []string
	lastActive  *powerup.Definition
	lastRemain  float64
}

func newSoak(catalog *powerup.Catalog, cfg powerup.SpawnerConfig, seed int64, collectRate float64) *soak {
	rng := rand.New(rand.NewSource(seed))
	s := &soak{
		rng:         rng,
		ball:        &simBall{vel: mgl64.Vec3{baseSpeed, 0, 0}, boost: 1},
		ai:          &simPaddle{enabled: true},
		controls:    &simControls{},
		clock:       &simClock{scale: powerup.NominalTimeScale},
		clones:      &simClones{},
		collectRate: collectRate,
		activations: make(map[powerup.Kind]int),
	}
	env := &powerup.Env{Ball: s.ball, AI: s.ai, Controls: s.controls, Clock: s.clock, Clones: s.clones}
	s.ctrl = powerup.NewController(powerup.NewRegistry(), env)
	s.ctrl.OnActivate = func(def *powerup.Definition) {
		s.activations[def.Kind]++
		// A fresh activation restarts the countdown.
		s.lastActive = nil
	}
	s.spawner = powerup.NewSpawner(cfg, catalog, simSink{}, rng)
	s.trigger = powerup.NewTrigger(s.ctrl, s.spawner)
	s.trigger.OnCollected = func(*powerup.Pickup) { s.collected++ }
	s.spawner.Start()
	return s
}

// step advances dt seconds of real time.
func (s *soak) step(dt float64) {
	s.elapsed += dt
	s.spawner.Tick(dt * s.clock.TimeScale())
	s.ctrl.Tick(dt)

	// Bounces flip the direction but keep the speed.
	if s.rng.Float64() < 2*dt {
		v := s.ball.vel
		s.ball.vel = mgl64.Vec3{-v.X(), v.Y() + s.rng.Float64() - 0.5, 0}.Normalize().Mul(v.Len())
	}

	for _, p := range s.spawner.Live() {
		if s.rng.Float64() < s.collectRate*dt {
			s.trigger.Contact(p, powerup.BallTag)
			// A second contact in the same step must be ignored.
			s.trigger.Contact(p, powerup.BallTag)
		}
	}
	s.check()
}

func (s *soak) violate(format string, args ...any) {
	msg := fmt.Sprintf("%7.2fs ", s.elapsed) + fmt.Sprintf(format, args...)
	s.violations = append(s.violations, msg)
}

func (s *soak) check() {
	tg := s.ctrl.Toggles()
	if n := countToggles(tg); n > 1 {
		s.violate("%d toggles live at once: %+v", n, tg)
	}
	if s.clones.live > 1 {
		s.violate("%d clones alive", s.clones.live)
	}
	if s.spawner.LiveCount() > s.spawner.Config().MaxActiveOrbs {
		s.violate("%d orbs live, cap %d", s.spawner.LiveCount(), s.spawner.Config().MaxActiveOrbs)
	}

	active, ok := s.ctrl.Active()
	if !ok {
		if s.clock.scale != powerup.NominalTimeScale || !s.ai.enabled || s.controls.inverted || s.ball.ghost || s.clones.live != 0 {
			s.violate("idle but not restored: scale=%v ai=%v inverted=%v ghost=%v clones=%d",
				s.clock.scale, s.ai.enabled, s.controls.inverted, s.ball.ghost, s.clones.live)
		}
		if speed := s.ball.vel.Len(); math.Abs(speed-baseSpeed) > 1e-6 {
			s.violate("idle ball speed %.4f, want %.1f", speed, baseSpeed)
		}
		s.lastActive = nil
		return
	}

	if active.Definition == s.lastActive && active.Remaining > s.lastRemain {
		s.violate("%s remaining grew %.3f -> %.3f", active.Definition.Name, s.lastRemain, active.Remaining)
	}
	s.lastActive = active.Definition
	s.lastRemain = active.Remaining
}

func countToggles(tg powerup.Toggles) int {
	n := 0
	for _, on := range []bool{tg.Shield, tg.Mirror, tg.Clone, tg.Inverted, tg.Frozen, tg.Boosted, tg.Slowed, tg.Ghost} {
		if on {
			n++
		}
	}
	return n
}
