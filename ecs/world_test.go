package ecs

import (
	"testing"

	"github.com/lodestone2d/lodestone/ecs/component"
	"github.com/lodestone2d/lodestone/physics"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
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
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for a live entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should be dead after destruction")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	w.DestroyEntity(e1)
	e2 := w.CreateEntity()

	if e1.slot() != e2.slot() {
		t.Fatalf("expected id reuse, got %d and %d", e1.slot(), e2.slot())
	}
	if e1 == e2 {
		t.Fatalf("recycled handle must differ in generation")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle must not be alive")
	}
	if !w.IsAlive(e2) {
		t.Fatalf("new handle must be alive")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	h := component.New[int]()
	e := w.CreateEntity()

	if err := Add(w, e, h, intPtr(10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	v, ok := Get(w, e, h)
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}

	if err := Add(w, e, h, intPtr(11)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, _ = Get(w, e, h)
	if *v != 11 {
		t.Fatalf("expected overwrite to 11, got %d", *v)
	}

	if !Remove(w, e, h) {
		t.Fatalf("remove should succeed")
	}
	if Has(w, e, h) {
		t.Fatalf("component should be gone after remove")
	}
}

func TestComponentErrors(t *testing.T) {
	w := NewWorld()
	h := component.New[string]()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	if err := Add(w, e, h, stringPtr("a")); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	live := w.CreateEntity()
	if err := Add(w, live, h, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestComponentsSkipDeadEntities(t *testing.T) {
	w := NewWorld()
	h := component.New[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	if err := Add(w, e1, h, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, h, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	w.DestroyEntity(e1)

	var visited []Entity
	ForEach(w, h, func(e Entity, _ *int) { visited = append(visited, e) })
	if len(visited) != 1 || visited[0] != e2 {
		t.Fatalf("expected only e2, got %v", visited)
	}

	if _, ok := Get(w, e1, h); ok {
		t.Fatalf("dead entity should not resolve a component")
	}
}

func TestForEach2Intersection(t *testing.T) {
	w := NewWorld()
	ha := component.New[int]()
	hb := component.New[float64]()

	both := w.CreateEntity()
	onlyA := w.CreateEntity()
	onlyB := w.CreateEntity()

	f := 1.5
	if err := Add(w, both, ha, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, both, hb, &f); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, onlyA, ha, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, onlyB, hb, &f); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach2(w, ha, hb, func(e Entity, _ *int, _ *float64) { res = append(res, e) })
	if len(res) != 1 || res[0] != both {
		t.Fatalf("expected only the entity with both components, got %v", res)
	}
}

func TestEventQueueSendDrain(t *testing.T) {
	w := NewWorld()
	q := w.Events()

	q.Send("a")
	q.Send("b")
	if q.Len() != 2 {
		t.Fatalf("expected 2 pending events, got %d", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected FIFO drain, got %v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("second drain should be empty")
	}
}

func TestWorldImplementsEntityResolver(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if !w.Alive(physics.Entity(e)) {
		t.Fatalf("live entity should resolve")
	}
	w.DestroyEntity(e)
	if w.Alive(physics.Entity(e)) {
		t.Fatalf("dead entity should not resolve")
	}
}
