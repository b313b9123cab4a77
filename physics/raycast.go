package physics

import "github.com/ByteArena/box2d"

// QueryType selects how many hits a raycast may return.
type QueryType int

const (
	// QueryFirst terminates the traversal after the first accepted hit.
	QueryFirst QueryType = iota
	// QueryAll scans the whole segment.
	QueryAll
)

// RayHit is one accepted candidate from a raycast. Plain value, no
// ownership.
type RayHit struct {
	Entity   Entity
	Point    Vec2
	Normal   Vec2
	Distance float64
}

// Raycast issues one traversal of the native spatial structure along the
// segment from->to. A candidate fixture is accepted only when its collision
// group is exactly equal to mask and its body still resolves to a live
// entity; everything else is skipped silently. Hits are returned in the
// order the traversal visits them; that order is deterministic for a fixed
// simulation state but not stable across engine versions.
//
// The reported distance is the squared segment length scaled by the
// traversal fraction, not the Euclidean distance to the hit point.
//
// Must not be called from inside a step or another raycast, and the
// traversal must not create or destroy bodies.
func (w *World) Raycast(from, to Vec2, query QueryType, mask CollisionGroup) []RayHit {
	segLenSq := from.Sub(to).LengthSquared()
	// The native traversal asserts on a zero-length segment.
	if segLenSq == 0 {
		return nil
	}

	var hits []RayHit

	w.native.RayCast(func(fixture *box2d.B2Fixture, point, normal box2d.B2Vec2, fraction float64) float64 {
		body := w.resolveFixture(fixture)
		if body == nil || !w.entityAlive(body.entity) {
			return -1
		}
		if CollisionGroup(fixture.GetFilterData().CategoryBits) != mask {
			return -1
		}

		hits = append(hits, RayHit{
			Entity:   body.entity,
			Point:    fromB2(point),
			Normal:   fromB2(normal),
			Distance: segLenSq * fraction,
		})
		if query == QueryFirst {
			return 0
		}
		return 1
	}, from.toB2(), to.toB2())

	return hits
}

// resolveFixture walks fixture -> native body -> user-data handle ->
// registered Body. Returns nil for foreign or already-released bodies.
func (w *World) resolveFixture(fixture *box2d.B2Fixture) *Body {
	if fixture == nil {
		return nil
	}
	handle, ok := fixture.GetBody().GetUserData().(uint64)
	if !ok {
		return nil
	}
	return w.registry.resolve(handle)
}
