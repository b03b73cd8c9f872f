package powerup

import (
	"errors"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeBall struct {
	vel   mgl64.Vec3
	ghost bool
	boost float64
}

func (b *fakeBall) Velocity() mgl64.Vec3     { return b.vel }
func (b *fakeBall) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *fakeBall) SetGhost(g bool)          { b.ghost = g }
func (b *fakeBall) SetBoost(f float64)       { b.boost = f }

type fakePaddle struct{ enabled bool }

func (p *fakePaddle) SetEnabled(e bool) { p.enabled = e }

type fakeControls struct{ inverted bool }

func (c *fakeControls) SetInverted(i bool) { c.inverted = i }

type fakeClock struct{ scale float64 }

func (c *fakeClock) TimeScale() float64     { return c.scale }
func (c *fakeClock) SetTimeScale(s float64) { c.scale = s }

type fakeClones struct {
	live     int
	spawned  int
	lastVel  mgl64.Vec3
	lastA    float64
	failNext bool
}

func (c *fakeClones) SpawnClone(v mgl64.Vec3, alpha float64) (func(), error) {
	if c.failNext {
		c.failNext = false
		return nil, errors.New("no clone template")
	}
	c.live++
	c.spawned++
	c.lastVel = v
	c.lastA = alpha
	released := false
	return func() {
		if released {
			return
		}
		released = true
		c.live--
	}, nil
}

type fixture struct {
	ball     *fakeBall
	ai       *fakePaddle
	controls *fakeControls
	clock    *fakeClock
	clones   *fakeClones
	env      *Env
	ctrl     *Controller
}

func newFixture() *fixture {
	f := &fixture{
		ball:     &fakeBall{vel: mgl64.Vec3{10, 0, 0}},
		ai:       &fakePaddle{enabled: true},
		controls: &fakeControls{},
		clock:    &fakeClock{scale: NominalTimeScale},
		clones:   &fakeClones{},
	}
	f.env = &Env{Ball: f.ball, AI: f.ai, Controls: f.controls, Clock: f.clock, Clones: f.clones}
	f.ctrl = NewController(NewRegistry(), f.env)
	return f
}

func mkDef(k Kind, duration, intensity float64) *Definition {
	d := &Definition{Kind: k, Duration: duration, Intensity: intensity}
	d.applyDefaults()
	return d
}

type fakeSink struct {
	spawned   []*Pickup
	despawned []*Pickup
	fail      error
}

func (s *fakeSink) SpawnPickup(p *Pickup) error {
	if s.fail != nil {
		return s.fail
	}
	s.spawned = append(s.spawned, p)
	return nil
}

func (s *fakeSink) DespawnPickup(p *Pickup) {
	s.despawned = append(s.despawned, p)
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
