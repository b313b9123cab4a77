package ecs

import (
	"github.com/lodestone2d/lodestone/ecs/component"
	"github.com/lodestone2d/lodestone/physics"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, component tables, system order, and the event
// queue. One World per scene; all mutation happens from the scene's update
// context.
type World struct {
	entities entityStore
	tables   map[component.Kind]*table
	systems  []System
	events   Queue

	physicsWorld *physics.World
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{tables: make(map[component.Kind]*table)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and removes its components. Returns false
// for a stale handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, t := range w.tables {
		t.remove(e)
	}
	return true
}

// IsAlive reports whether the handle is current.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.alive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Events returns the scene event queue.
func (w *World) Events() *Queue {
	return &w.events
}

// AttachPhysics wires a physics world to this scene.
func (w *World) AttachPhysics(pw *physics.World) {
	w.physicsWorld = pw
}

// Physics returns the attached physics world, if any.
func (w *World) Physics() *physics.World {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// Alive implements physics.EntityResolver so physics callbacks can check
// whether a handle still refers to a live entity.
func (w *World) Alive(e physics.Entity) bool {
	return w.IsAlive(Entity(e))
}

func (w *World) table(k component.Kind) *table {
	t, ok := w.tables[k]
	if !ok {
		t = &table{}
		w.tables[k] = t
	}
	return t
}
