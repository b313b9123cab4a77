package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"
)

// EventSink is the owning scene's event channel. The World publishes
// CollisionBegan and CollisionEnded values through it; delivery semantics
// belong to the sink.
type EventSink interface {
	Send(event any)
}

// EntityResolver reports whether an entity handle still refers to a live
// domain object. A nil resolver treats every non-zero handle as live.
type EntityResolver interface {
	Alive(e Entity) bool
}

// World is the public entry point of the physics layer. It exclusively owns
// the native simulation state and the contact bridge, and holds non-owning
// references to the scene's event sink and entity resolver.
//
// A World expects a single logical owner: stepping, body creation and
// destruction, and raycasts must all come from the same execution context.
// There is no internal locking. Stepping re-entrantly, using a destroyed
// Body, or creating/destroying bodies from inside a raycast or contact
// callback is a precondition violation.
type World struct {
	native             box2d.B2World
	gravity            Vec2
	velocityIterations int
	positionIterations int

	registry bodyRegistry
	events   EventSink
	resolver EntityResolver
	log      *zap.Logger

	destroyed bool
}

// NewWorld creates a world from the given tunables. The sink and resolver
// may be nil; events are then dropped and every non-zero entity handle is
// treated as live.
func NewWorld(cfg Config, sink EventSink, resolver EntityResolver, logger *zap.Logger) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &World{
		native:             box2d.MakeB2World(cfg.Gravity.toB2()),
		gravity:            cfg.Gravity,
		velocityIterations: cfg.VelocityIterations,
		positionIterations: cfg.PositionIterations,
		registry:           newBodyRegistry(),
		events:             sink,
		resolver:           resolver,
		log:                logger,
	}
	w.native.SetContactListener(&contactBridge{world: w})

	logger.Debug("physics world created",
		zap.Float64("gravity_x", cfg.Gravity.X),
		zap.Float64("gravity_y", cfg.Gravity.Y),
		zap.Int("velocity_iterations", cfg.VelocityIterations),
		zap.Int("position_iterations", cfg.PositionIterations))
	return w, nil
}

// Gravity returns the current gravity vector.
func (w *World) Gravity() Vec2 {
	return w.gravity
}

// SetGravity propagates the new gravity to the native simulation
// immediately.
func (w *World) SetGravity(g Vec2) {
	w.gravity = g
	w.native.SetGravity(g.toB2())
}

// ClearForces zeroes the accumulated forces on all bodies.
func (w *World) ClearForces() {
	w.native.ClearForces()
}

// Step advances the simulation by exactly one fixed step of size delta,
// using the configured iteration counts. All contact callbacks triggered by
// the step complete before Step returns. Must not be called re-entrantly.
func (w *World) Step(delta float64) {
	w.native.Step(delta, w.velocityIterations, w.positionIterations)
}

// CreateBody allocates a native body from def, wraps it, and registers the
// handle back-reference so native callbacks can resolve the owner in O(1).
// Panics if the native allocation fails; that is a programmer or resource
// exhaustion error, not a recoverable condition.
func (w *World) CreateBody(def BodyDef, entity Entity) *Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = def.Mode.b2Type()
	bd.Position = def.Position.toB2()
	bd.Angle = def.Angle
	bd.GravityScale = def.GravityScale
	bd.LinearVelocity = def.LinearVelocity.toB2()
	bd.AngularVelocity = def.AngularVelocity
	bd.LinearDamping = def.LinearDamping
	bd.AngularDamping = def.AngularDamping
	bd.AllowSleep = def.AllowSleep
	bd.FixedRotation = def.FixedRotation
	bd.Bullet = def.Bullet
	bd.Awake = def.Awake

	native := w.native.CreateBody(&bd)
	if native == nil {
		panic(fmt.Sprintf("physics: native body allocation failed (mode=%s entity=%d)", def.Mode, entity))
	}

	body := &Body{native: native, entity: entity, world: w}
	body.handle = w.registry.acquire(body)
	native.SetUserData(body.handle)

	w.log.Debug("body created",
		zap.Uint64("handle", body.handle),
		zap.Uint64("entity", uint64(entity)),
		zap.String("mode", def.Mode.String()))
	return body
}

// DestroyBody removes the native body and releases the registry handle. The
// native engine fires EndContact synchronously for any touching contacts;
// those callbacks still resolve because the handle is released only after
// the native body is gone. The Body must not be used afterward.
func (w *World) DestroyBody(b *Body) {
	if b == nil || b.native == nil {
		return
	}
	w.native.DestroyBody(b.native)
	w.registry.release(b.handle)
	w.log.Debug("body destroyed",
		zap.Uint64("handle", b.handle),
		zap.Uint64("entity", uint64(b.entity)))
	b.native = nil
	b.world = nil
}

// BodyCount returns the number of bodies in the native simulation.
func (w *World) BodyCount() int {
	return w.native.GetBodyCount()
}

// Config snapshots the current tunables in the persisted format.
func (w *World) Config() Config {
	return Config{
		Gravity:            w.gravity,
		VelocityIterations: w.velocityIterations,
		PositionIterations: w.positionIterations,
	}
}

// Destroy releases the native simulation state. Safe to call once; further
// calls are no-ops. All Bodies created from this world are invalid after
// Destroy returns.
func (w *World) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.registry = newBodyRegistry()
	w.native.Destroy()
	w.log.Debug("physics world destroyed")
}

func (w *World) entityAlive(e Entity) bool {
	if !e.Valid() {
		return false
	}
	if w.resolver == nil {
		return true
	}
	return w.resolver.Alive(e)
}

func (w *World) publish(event any) {
	if w.events == nil {
		return
	}
	w.events.Send(event)
}
