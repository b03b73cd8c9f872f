package system

import (
	"testing"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/ecs/entity"
)

type fakeGuard struct {
	shield, mirror bool
}

func (g *fakeGuard) IsShieldActive() bool      { return g.shield }
func (g *fakeGuard) IsMirrorFieldActive() bool { return g.mirror }

type fakeRound struct {
	started, ended, finished int
}

func (r *fakeRound) StartMatch() { r.started++ }
func (r *fakeRound) EndRound()   { r.ended++ }
func (r *fakeRound) EndMatch()   { r.finished++ }

func startedMatch(t *testing.T) (*testField, *MatchSystem, *fakeGuard, *fakeRound) {
	t.Helper()
	tf := newTestField(t)
	guard := &fakeGuard{}
	round := &fakeRound{}
	ms := NewMatchSystem(guard, round, testRand())

	tf.match(t).StartRequested = true
	ms.Update(tf.w)
	if got := tf.match(t).State; got != component.MatchPlaying {
		t.Fatalf("state after start = %v, want playing", got)
	}
	return tf, ms, guard, round
}

func TestMatch_StartLaunches(t *testing.T) {
	tf, _, _, round := startedMatch(t)

	if !tf.ball(t).Active {
		t.Fatalf("ball not active after start")
	}
	vx, vy := Velocity(tf.w, tf.f.Ball)
	if !near(speedOf(vx, vy), 18) {
		t.Fatalf("launch speed = %v, want 18", speedOf(vx, vy))
	}
	if round.started != 1 || round.ended != 0 {
		t.Fatalf("hooks: started=%d ended=%d, want 1 and 0", round.started, round.ended)
	}
}

func TestMatch_GoalScoresForOpponent(t *testing.T) {
	tests := []struct {
		name      string
		goal      component.Side
		wantLeft  int
		wantRight int
		wantDir   float64
	}{
		{name: "left goal", goal: component.SideLeft, wantRight: 1, wantDir: -1},
		{name: "right goal", goal: component.SideRight, wantLeft: 1, wantDir: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, ms, _, round := startedMatch(t)

			tf.pushContact(ecs.ContactBallGoal, tf.f.Ball, goalEntity(t, tf.w, tt.goal))
			ms.Update(tf.w)

			m := tf.match(t)
			if m.ScoreLeft != tt.wantLeft || m.ScoreRight != tt.wantRight {
				t.Fatalf("score = %d-%d, want %d-%d", m.ScoreLeft, m.ScoreRight, tt.wantLeft, tt.wantRight)
			}
			if m.State != component.MatchServe || m.ServeDir != tt.wantDir {
				t.Fatalf("state=%v dir=%v, want serve toward %v", m.State, m.ServeDir, tt.wantDir)
			}
			b := tf.ball(t)
			if b.Active || !near(b.CurrentSpeed, 20) {
				t.Fatalf("ball active=%v speed=%v, want parked at 20", b.Active, b.CurrentSpeed)
			}
			if round.ended != 1 || round.started != 1 || round.finished != 0 {
				t.Fatalf("hooks: started=%d ended=%d finished=%d, want 1, 1, 0", round.started, round.ended, round.finished)
			}
		})
	}
}

func TestMatch_ServeWaitsForInput(t *testing.T) {
	tf, ms, _, _ := startedMatch(t)
	tf.pushContact(ecs.ContactBallGoal, tf.f.Ball, goalEntity(t, tf.w, component.SideLeft))
	ms.Update(tf.w)
	tf.w.Events().Drain()

	ms.Update(tf.w)
	if tf.ball(t).Active {
		t.Fatalf("ball launched without serve")
	}

	in, _ := ecs.Get(tf.w, tf.f.Player, component.InputComponent.Kind())
	in.ServePressed = true
	ms.Update(tf.w)

	if !tf.ball(t).Active || tf.match(t).State != component.MatchPlaying {
		t.Fatalf("serve did not launch the ball")
	}
	if vx, _ := Velocity(tf.w, tf.f.Ball); vx >= 0 {
		t.Fatalf("serve vx = %v, want toward the left", vx)
	}
}

func TestMatch_ShieldReturnsPlayerGoal(t *testing.T) {
	tf, ms, guard, _ := startedMatch(t)
	guard.shield = true
	SetVelocity(tf.w, tf.f.Ball, -20, 3)

	tf.pushContact(ecs.ContactBallGoal, tf.f.Ball, goalEntity(t, tf.w, component.SideLeft))
	ms.Update(tf.w)

	m := tf.match(t)
	if m.ScoreRight != 0 || m.State != component.MatchPlaying {
		t.Fatalf("shielded goal counted: %d-%d state=%v", m.ScoreLeft, m.ScoreRight, m.State)
	}
	if vx, vy := Velocity(tf.w, tf.f.Ball); vx != 20 || vy != 3 {
		t.Fatalf("returned velocity = (%v, %v), want (20, 3)", vx, vy)
	}
}

func TestMatch_ShieldDoesNotGuardOpponent(t *testing.T) {
	tf, ms, guard, _ := startedMatch(t)
	guard.shield = true

	tf.pushContact(ecs.ContactBallGoal, tf.f.Ball, goalEntity(t, tf.w, component.SideRight))
	ms.Update(tf.w)

	if got := tf.match(t).ScoreLeft; got != 1 {
		t.Fatalf("left score = %d, want 1", got)
	}
}

func TestMatch_MirrorReflectsEitherGoal(t *testing.T) {
	tf, ms, guard, _ := startedMatch(t)
	guard.mirror = true
	SetVelocity(tf.w, tf.f.Ball, 25, -1)

	tf.pushContact(ecs.ContactBallGoal, tf.f.Ball, goalEntity(t, tf.w, component.SideRight))
	ms.Update(tf.w)

	if m := tf.match(t); m.TotalScore() != 0 {
		t.Fatalf("mirrored goal counted")
	}
	if vx, _ := Velocity(tf.w, tf.f.Ball); vx != -25 {
		t.Fatalf("vx = %v, want -25", vx)
	}
}

func TestMatch_CloneNeverScores(t *testing.T) {
	tf, ms, _, _ := startedMatch(t)
	clone, err := entity.NewCloneBall(tf.w, 0, 0, 10, 0, 0.6)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}

	tf.pushContact(ecs.ContactBallGoal, clone, goalEntity(t, tf.w, component.SideRight))
	ms.Update(tf.w)

	if tf.w.IsAlive(clone) {
		t.Fatalf("clone survived its goal")
	}
	if tf.match(t).TotalScore() != 0 {
		t.Fatalf("clone scored")
	}
}

func TestMatch_WinAndRestart(t *testing.T) {
	tf, ms, _, round := startedMatch(t)
	right := goalEntity(t, tf.w, component.SideRight)
	in, _ := ecs.Get(tf.w, tf.f.Player, component.InputComponent.Kind())

	for i := 0; i < 3; i++ {
		in.ServePressed = true
		ms.Update(tf.w)
		in.ServePressed = false
		tf.pushContact(ecs.ContactBallGoal, tf.f.Ball, right)
		ms.Update(tf.w)
		tf.w.Events().Drain()
	}

	m := tf.match(t)
	if m.State != component.MatchOver || m.Winner != component.SideLeft || m.ScoreLeft != 3 {
		t.Fatalf("state=%v winner=%v score=%d-%d", m.State, m.Winner, m.ScoreLeft, m.ScoreRight)
	}
	if round.ended != 2 || round.finished != 1 {
		t.Fatalf("hooks: ended=%d finished=%d, want 2 goals then the match end", round.ended, round.finished)
	}

	in.RestartPressed = true
	ms.Update(tf.w)
	if m.State != component.MatchPlaying || m.TotalScore() != 0 {
		t.Fatalf("restart: state=%v score=%d", m.State, m.TotalScore())
	}
	if !near(tf.ball(t).CurrentSpeed, 18) {
		t.Fatalf("speed after restart = %v, want 18", tf.ball(t).CurrentSpeed)
	}
	if round.started != 2 {
		t.Fatalf("match started %d times, want 2", round.started)
	}
}
