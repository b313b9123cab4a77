package ecs

import "strconv"

// Entity is a generational handle packed into a uint64: the low half indexes
// a slot, the high half carries the slot's reuse generation so stale handles
// fail liveness checks. Zero is never a live entity.
type Entity uint64

type slotIndex uint32
type slotGen uint32

func packEntity(idx slotIndex, gen slotGen) Entity {
	return Entity(idx) | Entity(gen)<<32
}

func (e Entity) slot() slotIndex {
	return slotIndex(e)
}

func (e Entity) gen() slotGen {
	return slotGen(e >> 32)
}

// String renders the packed handle, mainly for log fields.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether the handle can refer to an entity at all.
func (e Entity) Valid() bool {
	return e != 0
}

// entityStore tracks generations, liveness, and free slots.
type entityStore struct {
	gens  []slotGen // indexed by slot-1
	live  []bool
	free  []slotIndex
	count int
}

func (s *entityStore) create() Entity {
	var idx slotIndex
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.live = append(s.live, false)
		idx = slotIndex(len(s.gens))
	}
	s.live[idx-1] = true
	s.count++
	return packEntity(idx, s.gens[idx-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.alive(e) {
		return false
	}
	i := e.slot() - 1
	s.gens[i]++
	s.live[i] = false
	s.free = append(s.free, e.slot())
	s.count--
	return true
}

func (s *entityStore) alive(e Entity) bool {
	idx := e.slot()
	if idx == 0 || int(idx) > len(s.gens) {
		return false
	}
	return s.live[idx-1] && s.gens[idx-1] == e.gen()
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, s.count)
	for i, ok := range s.live {
		if ok {
			out = append(out, packEntity(slotIndex(i+1), s.gens[i]))
		}
	}
	return out
}
