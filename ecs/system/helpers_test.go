package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/ecs/entity"
)

type testField struct {
	w     *ecs.World
	f     *entity.Field
	clock *Clock
}

func newTestField(t *testing.T) *testField {
	t.Helper()
	w := ecs.NewWorld()
	f, err := entity.NewField(w, 3)
	if err != nil {
		t.Fatalf("build field: %v", err)
	}
	return &testField{w: w, f: f, clock: NewClock()}
}

func (tf *testField) match(t *testing.T) *component.Match {
	t.Helper()
	m, ok := ecs.Get(tf.w, tf.f.Match, component.MatchComponent.Kind())
	if !ok {
		t.Fatalf("match component missing")
	}
	return m
}

func (tf *testField) ball(t *testing.T) *component.Ball {
	t.Helper()
	b, ok := ecs.Get(tf.w, tf.f.Ball, component.BallComponent.Kind())
	if !ok {
		t.Fatalf("ball component missing")
	}
	return b
}

func (tf *testField) pushContact(kind ecs.ContactEventKind, ball, other ecs.Entity) {
	tf.w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{
		Kind:  kind,
		Ball:  ball,
		Other: other,
		Tag:   "ball",
	}})
}

func goalEntity(t *testing.T, w *ecs.World, side component.Side) ecs.Entity {
	t.Helper()
	for _, e := range w.Query(component.GoalComponent.Kind()) {
		g, _ := ecs.Get(w, e, component.GoalComponent.Kind())
		if g.Side == side {
			return e
		}
	}
	t.Fatalf("no %s goal", side)
	return 0
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
