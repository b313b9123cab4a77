package ecs

import "github.com/lodestone2d/lodestone/ecs/component"

// Add attaches a component value to a live entity, replacing any existing
// value of the same kind.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.table(h.Kind()).set(e, v)
	return nil
}

// Get returns the component value for a live entity.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.table(h.Kind()).get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether a live entity carries the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	_, ok := Get(w, e, h)
	return ok
}

// Remove detaches the component. Returns false if it was absent.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.table(h.Kind()).remove(e)
}

// First returns some live entity carrying the component.
func First[T any](w *World, h component.Handle[T]) (Entity, bool) {
	t := w.table(h.Kind())
	for _, e := range t.denseEntities {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the component. The callback
// must not create or destroy entities.
func ForEach[T any](w *World, h component.Handle[T], fn func(e Entity, v *T)) {
	t := w.table(h.Kind())
	for i, e := range t.denseEntities {
		if !w.IsAlive(e) {
			continue
		}
		if v, ok := t.denseValues[i].(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components, iterating
// the first table.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(e Entity, a *A, b *B)) {
	ta := w.table(ha.Kind())
	tb := w.table(hb.Kind())
	for i, e := range ta.denseEntities {
		if !w.IsAlive(e) || !tb.has(e) {
			continue
		}
		a, okA := ta.denseValues[i].(*A)
		b, okB := tb.get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
