package physics

import "github.com/ByteArena/box2d"

// CollisionBegan is published when two shapes begin overlapping. Impulse is
// always zero for now; true impulse extraction from the contact manifold is
// not implemented.
type CollisionBegan struct {
	A       Entity
	B       Entity
	Impulse float64
}

// CollisionEnded is published when two shapes cease overlapping.
type CollisionEnded struct {
	A Entity
	B Entity
}

// contactBridge translates native contact callbacks into domain collision
// events. Registered once per World; the native engine invokes it
// synchronously during Step and DestroyBody.
type contactBridge struct {
	world *World
}

func (cb *contactBridge) BeginContact(contact box2d.B2ContactInterface) {
	a, b, ok := cb.resolve(contact)
	if !ok {
		return
	}
	cb.world.publish(CollisionBegan{A: a, B: b})
}

func (cb *contactBridge) EndContact(contact box2d.B2ContactInterface) {
	a, b, ok := cb.resolve(contact)
	if !ok {
		return
	}
	cb.world.publish(CollisionEnded{A: a, B: b})
}

// PreSolve is reserved for future impulse reporting.
func (cb *contactBridge) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}

// PostSolve is reserved for future impulse reporting.
func (cb *contactBridge) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

// resolve maps both contacting fixtures to their entities. A contact whose
// bodies no longer resolve (removed body with a native contact still
// pending) is dropped without an event.
func (cb *contactBridge) resolve(contact box2d.B2ContactInterface) (Entity, Entity, bool) {
	bodyA := cb.world.resolveFixture(contact.GetFixtureA())
	bodyB := cb.world.resolveFixture(contact.GetFixtureB())
	if bodyA == nil || bodyB == nil {
		return 0, 0, false
	}
	if !cb.world.entityAlive(bodyA.entity) || !cb.world.entityAlive(bodyB.entity) {
		return 0, 0, false
	}
	return bodyA.entity, bodyB.entity, true
}
