package powerup

import "github.com/go-gl/mathgl/mgl64"

// NominalTimeScale is the clock scale outside of slow motion.
const NominalTimeScale = 1.0

// Ball is the primary ball as seen by effects.
type Ball interface {
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	// SetGhost switches the ball between colliding with paddles and passing
	// through them. Boundary walls always collide.
	SetGhost(ghost bool)
}

// Booster is optionally implemented by a Ball that needs to know about the
// boost factor, e.g. to widen its speed clamp.
type Booster interface {
	SetBoost(factor float64)
}

// Paddle is the AI paddle.
type Paddle interface {
	SetEnabled(enabled bool)
}

// Controls is the player input collaborator.
type Controls interface {
	SetInverted(inverted bool)
}

// Clock is the global simulation clock.
type Clock interface {
	TimeScale() float64
	SetTimeScale(scale float64)
}

// CloneSpawner creates a duplicate ball. The returned release func destroys
// it and must tolerate being called after the clone already left play.
type CloneSpawner interface {
	SpawnClone(velocity mgl64.Vec3, alpha float64) (release func(), err error)
}

// Toggles are the gameplay flags owned by the active effect.
type Toggles struct {
	Shield   bool
	Mirror   bool
	Clone    bool
	Inverted bool
	Frozen   bool
	Boosted  bool
	Slowed   bool
	Ghost    bool
}

// Env bundles the collaborators effects act on. Any of them may be nil; the
// effects that need a missing one report ErrMissingCollaborator.
type Env struct {
	Ball     Ball
	AI       Paddle
	Controls Controls
	Clock    Clock
	Clones   CloneSpawner

	toggles Toggles
}

func (e *Env) Toggles() Toggles {
	if e == nil {
		return Toggles{}
	}
	return e.toggles
}
