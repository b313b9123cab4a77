package system

import (
	"go.uber.org/zap"

	"github.com/lodestone2d/lodestone/ecs"
	"github.com/lodestone2d/lodestone/ecs/component"
	"github.com/lodestone2d/lodestone/physics"
)

// Physics drives the physics world from the scene tick: it creates native
// bodies for entities that gained a RigidBody, destroys bodies whose entity
// or component went away, advances the simulation one fixed step, and
// writes body poses back to Transforms.
type Physics struct {
	world  *physics.World
	dt     float64
	log    *zap.Logger
	bodies map[ecs.Entity]*physics.Body
}

// NewPhysics wires the driver to a physics world with a fixed step size.
func NewPhysics(pw *physics.World, dt float64, logger *zap.Logger) *Physics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Physics{
		world:  pw,
		dt:     dt,
		log:    logger,
		bodies: make(map[ecs.Entity]*physics.Body),
	}
}

func (ps *Physics) Update(w *ecs.World) {
	if ps == nil || ps.world == nil || w == nil {
		return
	}
	ps.ensureBodies(w)
	ps.destroyStaleBodies(w)
	ps.world.Step(ps.dt)
	ps.syncTransforms(w)
}

// Step size in seconds.
func (ps *Physics) Dt() float64 {
	return ps.dt
}

func (ps *Physics) ensureBodies(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent, component.TransformComponent, func(e ecs.Entity, rb *component.RigidBody, tf *component.Transform) {
		if rb.Body != nil {
			return
		}

		// A component swapped out and back in between ticks still has a
		// tracked body; destroy it before creating the replacement.
		if old, ok := ps.bodies[e]; ok {
			ps.world.DestroyBody(old)
			delete(ps.bodies, e)
		}

		def := physics.NewBodyDef(rb.Mode, physics.Vec2{X: tf.X, Y: tf.Y})
		def.Angle = tf.Rotation
		def.FixedRotation = rb.FixedRotation
		def.Bullet = rb.Bullet
		def.LinearDamping = rb.LinearDamping
		def.AngularDamping = rb.AngularDamping
		def.LinearVelocity = physics.Vec2{X: rb.VelocityX, Y: rb.VelocityY}
		if rb.GravityScale != 0 {
			def.GravityScale = rb.GravityScale
		}

		body := ps.world.CreateBody(def, physics.Entity(e))
		fixture := physics.FixtureDef{
			Density:     rb.Density,
			Friction:    rb.Friction,
			Restitution: rb.Restitution,
			Sensor:      rb.Sensor,
			Group:       rb.Group,
		}
		switch rb.Shape {
		case component.ShapeCircle:
			body.AddCircleFixture(rb.Radius, fixture)
		default:
			body.AddBoxFixture(rb.Width, rb.Height, fixture)
		}

		rb.Body = body
		ps.bodies[e] = body
		ps.log.Debug("rigid body attached",
			zap.String("entity", e.String()),
			zap.String("mode", rb.Mode.String()))
	})
}

func (ps *Physics) destroyStaleBodies(w *ecs.World) {
	for e, body := range ps.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.RigidBodyComponent) {
			continue
		}
		ps.world.DestroyBody(body)
		delete(ps.bodies, e)
		ps.log.Debug("rigid body detached", zap.String("entity", e.String()))
	}
}

func (ps *Physics) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent, component.TransformComponent, func(_ ecs.Entity, rb *component.RigidBody, tf *component.Transform) {
		if rb.Body == nil || rb.Mode == physics.BodyStatic {
			return
		}
		pos := rb.Body.Position()
		tf.X = pos.X
		tf.Y = pos.Y
		tf.Rotation = rb.Body.Angle()
	})
}

// Reset destroys every body this driver created. Used when the owning scene
// tears down or rebuilds its physics world.
func (ps *Physics) Reset() {
	for e, body := range ps.bodies {
		ps.world.DestroyBody(body)
		delete(ps.bodies, e)
	}
}
