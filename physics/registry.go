package physics

// bodyRegistry issues stable integer handles for bodies and resolves the
// handle stored in a native body's user-data slot back to the wrapper. The
// entries are non-owning; release must be called before a Body is discarded
// or the handle could resolve to a dead wrapper.
type bodyRegistry struct {
	next   uint64
	bodies map[uint64]*Body
}

func newBodyRegistry() bodyRegistry {
	return bodyRegistry{bodies: make(map[uint64]*Body)}
}

func (r *bodyRegistry) acquire(b *Body) uint64 {
	r.next++
	r.bodies[r.next] = b
	return r.next
}

func (r *bodyRegistry) resolve(handle uint64) *Body {
	if handle == 0 {
		return nil
	}
	return r.bodies[handle]
}

func (r *bodyRegistry) release(handle uint64) {
	delete(r.bodies, handle)
}

func (r *bodyRegistry) len() int {
	return len(r.bodies)
}
