package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// GoalGuard is consulted before a goal counts.
type GoalGuard interface {
	IsShieldActive() bool
	IsMirrorFieldActive() bool
}

// RoundHooks drive the orb cycle and effects. The cycle runs for the whole
// match; a goal only clears what the rally left behind.
type RoundHooks interface {
	StartMatch()
	EndRound()
	EndMatch()
}

// goalReturnNudge moves a returned ball off the goal sensor.
const goalReturnNudge = 0.6

// MatchSystem runs the scoreboard: serve, goals, shield and mirror returns,
// the win condition and restarts.
type MatchSystem struct {
	guard GoalGuard
	round RoundHooks
	rng   *rand.Rand

	// Protected is the side a shield guards.
	Protected component.Side
}

func NewMatchSystem(guard GoalGuard, round RoundHooks, rng *rand.Rand) *MatchSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &MatchSystem{guard: guard, round: round, rng: rng, Protected: component.SideLeft}
}

func (s *MatchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	me, ok := ecs.First(w, component.MatchComponent.Kind())
	if !ok {
		return
	}
	m, ok := ecs.Get(w, me, component.MatchComponent.Kind())
	if !ok {
		return
	}
	serve, restart := s.buttons(w)

	switch m.State {
	case component.MatchTitle:
		if m.StartRequested || serve {
			m.StartRequested = false
			s.Restart(w, m)
		}
	case component.MatchServe:
		if serve {
			s.launch(w, m)
		}
	case component.MatchPlaying:
		s.handleGoals(w, m)
	case component.MatchOver:
		if restart || m.StartRequested {
			m.StartRequested = false
			s.Restart(w, m)
		}
	}
}

func (s *MatchSystem) buttons(w *ecs.World) (serve, restart bool) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		serve = serve || in.ServePressed
		restart = restart || in.RestartPressed
	})
	return serve, restart
}

// Restart zeroes the score and launches straight away.
func (s *MatchSystem) Restart(w *ecs.World, m *component.Match) {
	m.ScoreLeft, m.ScoreRight = 0, 0
	m.ServeDir = 0
	s.clearClones(w)
	if s.round != nil {
		s.round.StartMatch()
	}
	s.reposition(w, 0)
	log.Printf("match: start, first to %d", m.PointsToWin)
	s.launch(w, m)
}

func (s *MatchSystem) launch(w *ecs.World, m *component.Match) {
	e, ok := primaryBall(w)
	if !ok {
		log.Printf("match: no ball to serve")
		return
	}
	b, ok := ecs.Get(w, e, component.BallComponent.Kind())
	if !ok {
		return
	}

	dir := m.ServeDir
	if dir == 0 {
		dir = 1
		if s.rng.Intn(2) == 0 {
			dir = -1
		}
	}
	vx, vy := LaunchVelocity(dir, s.rng.Float64()-0.5, b.CurrentSpeed)
	b.Active = true
	SetVelocity(w, e, vx, vy)

	m.State = component.MatchPlaying
	PlaySound(w, "serve")
}

func (s *MatchSystem) handleGoals(w *ecs.World, m *component.Match) {
	for _, c := range w.Events().Contacts(ecs.ContactBallGoal) {
		if !w.IsAlive(c.Ball) {
			continue
		}
		goal, ok := ecs.Get(w, c.Other, component.GoalComponent.Kind())
		if !ok {
			continue
		}

		if isClone(w, c.Ball) {
			ecs.DestroyEntity(w, c.Ball)
			continue
		}

		if s.guard != nil && s.guard.IsMirrorFieldActive() {
			s.returnBall(w, c.Ball, goal.Side)
			PlaySound(w, "wall_hit")
			continue
		}
		if s.guard != nil && s.guard.IsShieldActive() && goal.Side == s.Protected {
			s.returnBall(w, c.Ball, goal.Side)
			PlaySound(w, "shield_up")
			continue
		}

		s.score(w, m, goal.Side)
		return
	}
}

// returnBall sends the ball back into the field from the goal on side.
func (s *MatchSystem) returnBall(w *ecs.World, e ecs.Entity, side component.Side) {
	vx, vy := Velocity(w, e)
	inward := 1.0
	if side == component.SideRight {
		inward = -1
	}
	SetVelocity(w, e, inward*math.Abs(vx), vy)
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		SetPosition(w, e, t.X+inward*goalReturnNudge, t.Y)
	}
	log.Printf("match: ball returned from %s goal", side)
}

func (s *MatchSystem) score(w *ecs.World, m *component.Match, goalSide component.Side) {
	scorer := goalSide.Opponent()
	if scorer == component.SideLeft {
		m.ScoreLeft++
	} else {
		m.ScoreRight++
	}
	log.Printf("match: %s scores, %d-%d", scorer, m.ScoreLeft, m.ScoreRight)

	s.clearClones(w)

	if m.ScoreLeft >= m.PointsToWin || m.ScoreRight >= m.PointsToWin {
		if s.round != nil {
			s.round.EndMatch()
		}
		m.State = component.MatchOver
		m.Winner = scorer
		s.reposition(w, m.TotalScore())
		PlaySound(w, "win")
		log.Printf("match: %s wins", scorer)
		return
	}

	if s.round != nil {
		s.round.EndRound()
	}

	// The side that was scored on receives the serve.
	m.ServeDir = 1
	if goalSide == component.SideLeft {
		m.ServeDir = -1
	}
	m.State = component.MatchServe
	s.reposition(w, m.TotalScore())
	PlaySound(w, "goal")
}

func (s *MatchSystem) clearClones(w *ecs.World) {
	for _, e := range w.Query(component.CloneTagComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
}

// reposition parks the ball and both paddles at their start and sets the
// serve speed for total goals so far.
func (s *MatchSystem) reposition(w *ecs.World, total int) {
	ecs.ForEach(w, component.PaddleComponent.Kind(), func(e ecs.Entity, p *component.Paddle) {
		SetPosition(w, e, p.StartX, p.StartY)
	})
	if e, ok := primaryBall(w); ok {
		if b, ok := ecs.Get(w, e, component.BallComponent.Kind()); ok {
			b.Active = false
			b.Boost = 1
			b.CurrentSpeed = ServeSpeed(b, total)
			SetPosition(w, e, b.StartX, b.StartY)
		}
		SetVelocity(w, e, 0, 0)
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			body.Ghost = false
		}
	}
}
