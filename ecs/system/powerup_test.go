package system

import (
	"testing"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/powerup"
	"github.com/milk9111/pongchaos/prefabs"
)

type powerUpRig struct {
	*testField
	ctrl    *powerup.Controller
	spawner *powerup.Spawner
	trigger *powerup.Trigger
	sys     *PowerUpSystem
	pickups *PickupTriggerSystem
}

func newPowerUpRig(t *testing.T, defs ...*powerup.Definition) *powerUpRig {
	t.Helper()
	tf := newTestField(t)
	cat, err := powerup.NewCatalog(defs...)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	ctrl := powerup.NewController(powerup.NewRegistry(), &powerup.Env{})
	cfg := powerup.DefaultSpawnerConfig()
	spawner := powerup.NewSpawner(cfg, cat, nil, testRand())
	trigger := powerup.NewTrigger(ctrl, spawner)
	sys := NewPowerUpSystem(tf.w, tf.clock, ctrl, spawner, trigger, testRand(), prefabs.ParticleSpec{Count: 4, Speed: 3, Lifetime: 10})

	// Launch the ball so effects have a velocity to work with.
	b := tf.ball(t)
	b.Active = true
	SetVelocity(tf.w, tf.f.Ball, 10, 0)

	return &powerUpRig{
		testField: tf,
		ctrl:      ctrl,
		spawner:   spawner,
		trigger:   trigger,
		sys:       sys,
		pickups:   NewPickupTriggerSystem(trigger),
	}
}

func (r *powerUpRig) orbFor(t *testing.T, p *powerup.Pickup) ecs.Entity {
	t.Helper()
	for _, e := range r.w.Query(component.PickupComponent.Kind()) {
		pk, _ := ecs.Get(r.w, e, component.PickupComponent.Kind())
		if pk.Ref == p {
			return e
		}
	}
	t.Fatalf("no orb for pickup %d", p.ID)
	return 0
}

func mkDef(k powerup.Kind, duration, intensity float64) *powerup.Definition {
	return &powerup.Definition{Kind: k, Name: k.String(), Duration: duration, Intensity: intensity, GlowColor: "#ffcc00"}
}

func TestPowerUp_SpawnMaterializesOrb(t *testing.T) {
	r := newPowerUpRig(t, mkDef(powerup.ShieldPulse, 3, 1))
	p, ok := r.spawner.SpawnNow()
	if !ok {
		t.Fatalf("spawn failed")
	}

	orb := r.orbFor(t, p)
	tr, _ := ecs.Get(r.w, orb, component.TransformComponent.Kind())
	if tr.X != p.Position.X() || tr.Y != p.Position.Y() {
		t.Fatalf("orb at (%v, %v), pickup at %v", tr.X, tr.Y, p.Position)
	}

	r.spawner.Stop()
	if r.w.IsAlive(orb) {
		t.Fatalf("orb survived Stop")
	}
}

func TestPowerUp_ContactActivatesOnce(t *testing.T) {
	r := newPowerUpRig(t, mkDef(powerup.SpeedBoost, 3, 2))
	p, _ := r.spawner.SpawnNow()
	orb := r.orbFor(t, p)

	// The ball and a clone touch the orb in the same step.
	r.pushContact(ecs.ContactBallOrb, r.f.Ball, orb)
	r.pushContact(ecs.ContactBallOrb, r.f.Ball, orb)
	r.pickups.Update(r.w)

	if st := r.ctrl.Status(); !st.Active || st.Kind != powerup.SpeedBoost {
		t.Fatalf("status = %+v, want speed boost", st)
	}
	if vx, _ := Velocity(r.w, r.f.Ball); !near(vx, 20) {
		t.Fatalf("vx = %v, want a single boost to 20", vx)
	}
	if r.w.IsAlive(orb) || r.spawner.LiveCount() != 0 {
		t.Fatalf("orb not removed")
	}
	if n := len(r.w.Query(component.ParticleComponent.Kind())); n != 4 {
		t.Fatalf("particles = %d, want 4", n)
	}
	if b := r.ball(t); b.Boost != 2 {
		t.Fatalf("boost = %v, want 2", b.Boost)
	}
}

func TestPowerUp_EffectsReachTheWorld(t *testing.T) {
	tests := []struct {
		name  string
		def   *powerup.Definition
		check func(t *testing.T, r *powerUpRig, on bool)
	}{
		{
			name: "freeze",
			def:  mkDef(powerup.Freeze, 3, 1),
			check: func(t *testing.T, r *powerUpRig, on bool) {
				p, _ := ecs.Get(r.w, r.f.AI, component.PaddleComponent.Kind())
				if p.Enabled == on {
					t.Fatalf("ai enabled = %v while frozen=%v", p.Enabled, on)
				}
			},
		},
		{
			name: "inverter",
			def:  mkDef(powerup.Inverter, 3, 1),
			check: func(t *testing.T, r *powerUpRig, on bool) {
				in, _ := ecs.Get(r.w, r.f.Player, component.InputComponent.Kind())
				if in.Inverted != on {
					t.Fatalf("inverted = %v, want %v", in.Inverted, on)
				}
			},
		},
		{
			name: "ghost",
			def:  mkDef(powerup.GhostBall, 3, 1),
			check: func(t *testing.T, r *powerUpRig, on bool) {
				body, _ := ecs.Get(r.w, r.f.Ball, component.PhysicsBodyComponent.Kind())
				if body.Ghost != on {
					t.Fatalf("ghost = %v, want %v", body.Ghost, on)
				}
			},
		},
		{
			name: "slow motion",
			def:  mkDef(powerup.SlowMotion, 3, 0.5),
			check: func(t *testing.T, r *powerUpRig, on bool) {
				want := 1.0
				if on {
					want = 0.5
				}
				if got := r.clock.TimeScale(); got != want {
					t.Fatalf("time scale = %v, want %v", got, want)
				}
			},
		},
		{
			name: "clone",
			def:  mkDef(powerup.CloneBall, 3, 1),
			check: func(t *testing.T, r *powerUpRig, on bool) {
				clones := r.w.Query(component.CloneTagComponent.Kind())
				want := 0
				if on {
					want = 1
				}
				if len(clones) != want {
					t.Fatalf("clones = %d, want %d", len(clones), want)
				}
				if on {
					body, _ := ecs.Get(r.w, clones[0], component.PhysicsBodyComponent.Kind())
					if body.VX != 10 || body.VY != 0 {
						t.Fatalf("clone velocity = (%v, %v)", body.VX, body.VY)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPowerUpRig(t, tt.def)
			r.ctrl.Activate(tt.def)
			tt.check(t, r, true)

			// Expiry runs on unscaled time even in slow motion.
			for i := 0; i < 200 && r.ctrl.Status().Active; i++ {
				r.sys.Update(r.w)
			}
			if r.ctrl.Status().Active {
				t.Fatalf("effect did not expire")
			}
			tt.check(t, r, false)
		})
	}
}

func TestPowerUp_SlowMotionKeepsDuration(t *testing.T) {
	slow := mkDef(powerup.SlowMotion, 1, 0.25)
	r := newPowerUpRig(t, slow)
	r.ctrl.Activate(slow)

	// 60 frames of 1/60s is one second of real time.
	for i := 0; i < 59; i++ {
		r.sys.Update(r.w)
	}
	if !r.ctrl.Status().Active {
		t.Fatalf("expired early")
	}
	r.sys.Update(r.w)
	r.sys.Update(r.w)
	if r.ctrl.Status().Active {
		t.Fatalf("still active after one real second")
	}
}

func TestPowerUp_SpawnerRunsOnlyWhilePlaying(t *testing.T) {
	r := newPowerUpRig(t, mkDef(powerup.ShieldPulse, 3, 1))
	r.spawner.Start()
	m := r.match(t)

	m.State = component.MatchServe
	for i := 0; i < 60*30; i++ {
		r.sys.Update(r.w)
	}
	if r.spawner.LiveCount() != 0 {
		t.Fatalf("orbs spawned outside play")
	}

	m.State = component.MatchPlaying
	for i := 0; i < 60*21; i++ {
		r.sys.Update(r.w)
	}
	if r.spawner.LiveCount() != 1 {
		t.Fatalf("live = %d, want 1 after the first interval", r.spawner.LiveCount())
	}
}

func TestPowerUp_EndRoundClearsButKeepsCycle(t *testing.T) {
	r := newPowerUpRig(t, mkDef(powerup.CloneBall, 5, 1))
	r.sys.StartMatch()
	r.spawner.SpawnNow()
	r.ctrl.Activate(mkDef(powerup.CloneBall, 5, 1))
	next := r.spawner.NextTickIn()

	r.sys.EndRound()

	if r.ctrl.Status().Active || r.spawner.LiveCount() != 0 {
		t.Fatalf("round not cleared: status=%+v live=%d", r.ctrl.Status(), r.spawner.LiveCount())
	}
	if !r.spawner.Running() || r.spawner.NextTickIn() != next {
		t.Fatalf("cycle disturbed: running=%v next=%v, want running with %v left", r.spawner.Running(), r.spawner.NextTickIn(), next)
	}
	if n := len(r.w.Query(component.CloneTagComponent.Kind())); n != 0 {
		t.Fatalf("clones = %d after end of round", n)
	}
	if n := len(r.w.Query(component.PickupComponent.Kind())); n != 0 {
		t.Fatalf("orbs = %d after end of round", n)
	}

	r.sys.EndMatch()
	if r.spawner.Running() {
		t.Fatalf("spawner still running after the match ended")
	}
}

func TestPowerUp_OrbsAppearAcrossShortRallies(t *testing.T) {
	r := newPowerUpRig(t, mkDef(powerup.ShieldPulse, 3, 1))
	m := r.match(t)
	r.sys.StartMatch()

	withOrb := 0
	for rally := 0; rally < 10; rally++ {
		m.State = component.MatchPlaying
		for i := 0; i < 60*15; i++ {
			r.sys.Update(r.w)
		}
		if r.spawner.LiveCount() > 0 {
			withOrb++
		}
		m.State = component.MatchServe
		r.sys.EndRound()
		// Time spent waiting for the serve does not advance the cycle.
		for i := 0; i < 60*3; i++ {
			r.sys.Update(r.w)
		}
	}

	if withOrb < 8 {
		t.Fatalf("rallies with an orb = %d of 10, want at least 8", withOrb)
	}
}
