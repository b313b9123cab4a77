package ecs

// table is sparse-set storage for one component kind. Dense arrays keep
// iteration cache-friendly; the sparse array maps entity slots to dense
// indices. Values are stored as `any`; the generic accessors in this
// package recover the concrete type.
type table struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int // indexed by slot-1, -1 = absent
}

func (t *table) has(e Entity) bool {
	slot := int(e.slot())
	if slot <= 0 || slot-1 >= len(t.sparse) {
		return false
	}
	idx := t.sparse[slot-1]
	return idx >= 0 && idx < len(t.denseEntities) && t.denseEntities[idx] == e
}

func (t *table) get(e Entity) any {
	if !t.has(e) {
		return nil
	}
	return t.denseValues[t.sparse[e.slot()-1]]
}

func (t *table) set(e Entity, v any) {
	slot := int(e.slot())
	for slot-1 >= len(t.sparse) {
		t.sparse = append(t.sparse, -1)
	}
	// Overwrite in place, including an entry left by a recycled slot.
	if idx := t.sparse[slot-1]; idx >= 0 && idx < len(t.denseEntities) {
		t.denseEntities[idx] = e
		t.denseValues[idx] = v
		return
	}
	t.denseEntities = append(t.denseEntities, e)
	t.denseValues = append(t.denseValues, v)
	t.sparse[slot-1] = len(t.denseEntities) - 1
}

func (t *table) remove(e Entity) bool {
	if !t.has(e) {
		return false
	}
	idx := t.sparse[e.slot()-1]
	last := len(t.denseEntities) - 1
	lastEntity := t.denseEntities[last]

	t.denseEntities[idx] = lastEntity
	t.denseValues[idx] = t.denseValues[last]
	t.sparse[lastEntity.slot()-1] = idx

	t.denseEntities = t.denseEntities[:last]
	t.denseValues = t.denseValues[:last]
	t.sparse[e.slot()-1] = -1
	return true
}
