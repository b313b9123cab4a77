package component

import "github.com/lodestone2d/lodestone/physics"

// ShapeKind selects the fixture attached to a rigid body.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// RigidBody is the simulation configuration for an entity. The physics
// system creates the native body on first sight and destroys it when the
// component or its entity goes away.
type RigidBody struct {
	Mode  physics.BodyMode
	Shape ShapeKind

	// Box extents or circle radius, in world units.
	Width  float64
	Height float64
	Radius float64

	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool
	Group       physics.CollisionGroup

	// GravityScale 0 means the default scale of 1.
	GravityScale   float64
	FixedRotation  bool
	Bullet         bool
	LinearDamping  float64
	AngularDamping float64
	VelocityX      float64
	VelocityY      float64

	// Body is runtime state owned by the physics system; never set it
	// directly.
	Body *physics.Body
}

var RigidBodyComponent = New[RigidBody]()
