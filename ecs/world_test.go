package ecs

import (
	"testing"

	"github.com/milk9111/pongchaos/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	recycled := CreateEntity(w)
	if recycled.id() != old.id() {
		t.Fatalf("expected id reuse, got %d want %d", recycled.id(), old.id())
	}
	if recycled == old {
		t.Fatalf("recycled handle must differ from the stale one")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle must not resolve components")
	}
	if Has(w, recycled, kind) {
		t.Fatalf("recycled entity must start without components")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)

	if err := Add(w, e, kind, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, kind, intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestQueryAndForEach(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))
	_ = Add(w, e3, kb, stringPtr("three"))

	t.Run("query_intersection", func(t *testing.T) {
		res := w.Query(ka, kb)
		if len(res) != 1 || res[0] != e2 {
			t.Fatalf("expected only e2, got %v", res)
		}
	})

	t.Run("for_each_single", func(t *testing.T) {
		var ents []Entity
		ForEach(w, ka, func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)
		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1")
		}
		if _, ok := set[e2]; !ok {
			t.Fatalf("expected e2")
		}
		if _, ok := set[e3]; ok {
			t.Fatalf("did not expect e3")
		}
	})

	t.Run("for_each_destroy_during_iteration", func(t *testing.T) {
		seen := 0
		ForEach(w, kb, func(e Entity, _ *string) {
			seen++
			DestroyEntity(w, e)
		})
		if seen != 2 {
			t.Fatalf("expected 2 visits, got %d", seen)
		}
		if len(w.Query(kb)) != 0 {
			t.Fatalf("expected no string components left")
		}
	})

	t.Run("missing_store", func(t *testing.T) {
		kc := component.NewComponentKind[float64]()
		if res := w.Query(ka, kc); len(res) != 0 {
			t.Fatalf("expected empty result, got %v", res)
		}
		if _, ok := First(w, kc); ok {
			t.Fatalf("expected First to fail for empty store")
		}
	})
}

func TestEventQueueContacts(t *testing.T) {
	w := NewWorld()
	ball := CreateEntity(w)
	orb := CreateEntity(w)

	q := w.Events()
	q.Push(Event{Type: EventContact, Data: ContactEvent{Kind: ContactBallOrb, Ball: ball, Other: orb}})
	q.Push(Event{Type: EventContact, Data: ContactEvent{Kind: ContactBallWall, Ball: ball}})
	q.Push(Event{Type: "other"})

	orbs := q.Contacts(ContactBallOrb)
	if len(orbs) != 1 || orbs[0].Other != orb {
		t.Fatalf("expected one orb contact, got %v", orbs)
	}
	// reading must not consume
	if q.Len() != 3 {
		t.Fatalf("expected 3 queued events, got %d", q.Len())
	}

	NewScheduler().Update(w)
	if q.Len() != 0 {
		t.Fatalf("scheduler should flush events, %d left", q.Len())
	}
}
