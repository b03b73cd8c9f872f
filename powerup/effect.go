package powerup

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

const cloneAlpha = 0.6

// Effect applies (on=true) or reverts (on=false) one kind of modifier.
// Implementations must make the revert the exact inverse of the apply.
type Effect interface {
	Apply(env *Env, def *Definition, on bool) error
}

// EffectFunc adapts a stateless function to Effect.
type EffectFunc func(env *Env, def *Definition, on bool) error

func (f EffectFunc) Apply(env *Env, def *Definition, on bool) error {
	return f(env, def, on)
}

// Registry maps kinds to their behaviour.
type Registry struct {
	effects map[Kind]Effect
}

// NewRegistry returns a registry with every built-in effect registered.
func NewRegistry() *Registry {
	r := &Registry{effects: make(map[Kind]Effect, kindCount)}
	r.Register(ShieldPulse, EffectFunc(applyShield))
	r.Register(MirrorField, EffectFunc(applyMirror))
	r.Register(CloneBall, &cloneEffect{})
	r.Register(Inverter, EffectFunc(applyInverter))
	r.Register(Freeze, EffectFunc(applyFreeze))
	r.Register(SpeedBoost, &speedBoostEffect{})
	r.Register(SlowMotion, &slowMotionEffect{})
	r.Register(GhostBall, EffectFunc(applyGhost))
	return r
}

// Register replaces the behaviour for k.
func (r *Registry) Register(k Kind, e Effect) {
	if r.effects == nil {
		r.effects = make(map[Kind]Effect)
	}
	if e == nil {
		delete(r.effects, k)
		return
	}
	r.effects[k] = e
}

func (r *Registry) Lookup(k Kind) (Effect, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.effects[k]
	return e, ok
}

func missing(what string) error {
	return fmt.Errorf("%w: %s", ErrMissingCollaborator, what)
}

func applyShield(env *Env, _ *Definition, on bool) error {
	env.toggles.Shield = on
	log.Printf("powerup: shield pulse active=%v", on)
	return nil
}

func applyMirror(env *Env, _ *Definition, on bool) error {
	env.toggles.Mirror = on
	log.Printf("powerup: mirror field active=%v", on)
	return nil
}

func applyInverter(env *Env, _ *Definition, on bool) error {
	env.toggles.Inverted = on
	if env.Controls == nil {
		return missing("player controls")
	}
	env.Controls.SetInverted(on)
	return nil
}

func applyFreeze(env *Env, _ *Definition, on bool) error {
	env.toggles.Frozen = on
	if env.AI == nil {
		return missing("ai paddle")
	}
	env.AI.SetEnabled(!on)
	return nil
}

func applyGhost(env *Env, _ *Definition, on bool) error {
	env.toggles.Ghost = on
	if env.Ball == nil {
		return missing("ball")
	}
	env.Ball.SetGhost(on)
	return nil
}

// cloneEffect keeps the release handle of the one clone it owns.
type cloneEffect struct {
	release func()
}

func (e *cloneEffect) Apply(env *Env, _ *Definition, on bool) error {
	if e.release != nil {
		e.release()
		e.release = nil
	}
	env.toggles.Clone = false
	if !on {
		return nil
	}
	if env.Ball == nil {
		return missing("ball")
	}
	if env.Clones == nil {
		return missing("clone spawner")
	}

	v := env.Ball.Velocity()
	mirrored := mgl64.Vec3{v.X(), -v.Y(), v.Z()}
	release, err := env.Clones.SpawnClone(mirrored, cloneAlpha)
	if err != nil {
		return fmt.Errorf("spawn clone: %w", err)
	}
	e.release = release
	env.toggles.Clone = true
	return nil
}

// speedBoostEffect remembers the pre-boost speed so the revert is exact even
// when the ball bounced (and changed direction) while boosted.
type speedBoostEffect struct {
	baseSpeed float64
	applied   bool
}

func (e *speedBoostEffect) Apply(env *Env, def *Definition, on bool) error {
	if !on {
		if !e.applied {
			return nil
		}
		e.applied = false
		env.toggles.Boosted = false
		if env.Ball == nil {
			return missing("ball")
		}
		v := env.Ball.Velocity()
		if v.Len() > 1e-9 {
			env.Ball.SetVelocity(v.Normalize().Mul(e.baseSpeed))
		}
		if b, ok := env.Ball.(Booster); ok {
			b.SetBoost(1)
		}
		return nil
	}

	if env.Ball == nil {
		return missing("ball")
	}
	v := env.Ball.Velocity()
	e.baseSpeed = v.Len()
	e.applied = true
	env.toggles.Boosted = true
	if b, ok := env.Ball.(Booster); ok {
		b.SetBoost(def.Intensity)
	}
	env.Ball.SetVelocity(v.Mul(def.Intensity))
	return nil
}

type slowMotionEffect struct {
	applied bool
}

func (e *slowMotionEffect) Apply(env *Env, def *Definition, on bool) error {
	if !on && !e.applied {
		return nil
	}
	e.applied = on
	env.toggles.Slowed = on
	if env.Clock == nil {
		return missing("clock")
	}
	if on {
		env.Clock.SetTimeScale(def.Intensity)
	} else {
		env.Clock.SetTimeScale(NominalTimeScale)
	}
	return nil
}
