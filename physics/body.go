package physics

import "github.com/ByteArena/box2d"

// Entity is an opaque handle to the domain object that owns a body. The
// physics layer never dereferences it; it only carries it through raycast
// results and collision events. The zero value means "no entity".
type Entity uint64

// Valid reports whether the handle refers to an entity at all.
func (e Entity) Valid() bool {
	return e != 0
}

// BodyMode selects how the native engine simulates a body.
type BodyMode int

const (
	BodyStatic BodyMode = iota
	BodyKinematic
	BodyDynamic
)

func (m BodyMode) String() string {
	switch m {
	case BodyStatic:
		return "static"
	case BodyKinematic:
		return "kinematic"
	case BodyDynamic:
		return "dynamic"
	}
	return "unknown"
}

func (m BodyMode) b2Type() uint8 {
	switch m {
	case BodyKinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case BodyDynamic:
		return box2d.B2BodyType.B2_dynamicBody
	}
	return box2d.B2BodyType.B2_staticBody
}

// CollisionGroup is the filter value carried by each fixture. Raycast
// queries accept a fixture only when its group is exactly equal to the
// query mask.
type CollisionGroup uint16

// BodyDef holds the creation parameters for a body. It is consumed once by
// World.CreateBody; mutating it afterward has no effect on the body.
type BodyDef struct {
	Position        Vec2
	Angle           float64
	Mode            BodyMode
	GravityScale    float64
	LinearVelocity  Vec2
	AngularVelocity float64
	LinearDamping   float64
	AngularDamping  float64
	AllowSleep      bool
	FixedRotation   bool
	Bullet          bool
	Awake           bool
}

// NewBodyDef returns a definition with the engine defaults: gravity scale 1,
// sleeping allowed, awake.
func NewBodyDef(mode BodyMode, position Vec2) BodyDef {
	return BodyDef{
		Position:     position,
		Mode:         mode,
		GravityScale: 1,
		AllowSleep:   true,
		Awake:        true,
	}
}

// FixtureDef holds the parameters for a collision shape attached to a body.
type FixtureDef struct {
	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool
	Group       CollisionGroup
}

// Body wraps one native rigid body. It holds a weak entity handle and a
// non-owning back-pointer to its World; neither keeps anything alive.
// Bodies are created and destroyed only through the World.
type Body struct {
	handle uint64
	native *box2d.B2Body
	entity Entity
	world  *World
}

// Handle returns the stable registry handle issued at creation.
func (b *Body) Handle() uint64 {
	if b == nil {
		return 0
	}
	return b.handle
}

// Entity returns the owning entity handle.
func (b *Body) Entity() Entity {
	if b == nil {
		return 0
	}
	return b.entity
}

// Position returns the body origin in world coordinates.
func (b *Body) Position() Vec2 {
	if b == nil || b.native == nil {
		return Vec2{}
	}
	return fromB2(b.native.GetPosition())
}

// Angle returns the body rotation in radians.
func (b *Body) Angle() float64 {
	if b == nil || b.native == nil {
		return 0
	}
	return b.native.GetAngle()
}

// LinearVelocity returns the velocity of the body origin.
func (b *Body) LinearVelocity() Vec2 {
	if b == nil || b.native == nil {
		return Vec2{}
	}
	return fromB2(b.native.GetLinearVelocity())
}

// SetLinearVelocity overwrites the velocity of the body origin.
func (b *Body) SetLinearVelocity(v Vec2) {
	if b == nil || b.native == nil {
		return
	}
	b.native.SetLinearVelocity(v.toB2())
}

// SetTransform teleports the body. Prefer velocities for motion that should
// interact with other bodies.
func (b *Body) SetTransform(position Vec2, angle float64) {
	if b == nil || b.native == nil {
		return
	}
	b.native.SetTransform(position.toB2(), angle)
}

// AddBoxFixture attaches a box shape of the given full extents, centered on
// the body origin. Must not be called during a step or raycast.
func (b *Body) AddBoxFixture(width, height float64, def FixtureDef) {
	if b == nil || b.native == nil {
		return
	}
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(width/2, height/2)
	b.addFixture(&shape, def)
}

// AddCircleFixture attaches a circle shape centered on the body origin.
// Must not be called during a step or raycast.
func (b *Body) AddCircleFixture(radius float64, def FixtureDef) {
	if b == nil || b.native == nil {
		return
	}
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius
	b.addFixture(&shape, def)
}

func (b *Body) addFixture(shape box2d.B2ShapeInterface, def FixtureDef) {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = def.Density
	fd.Friction = def.Friction
	fd.Restitution = def.Restitution
	fd.IsSensor = def.Sensor
	fd.Filter.CategoryBits = uint16(def.Group)
	b.native.CreateFixtureFromDef(&fd)
}
