package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// Kind identifies one component type at runtime.
type Kind uint32

var nextKind atomic.Uint32

// Handle is the typed registration token for a component. Declare one
// package-level handle per component type.
type Handle[T any] struct {
	kind Kind
}

// New registers a new component type and returns its handle.
func New[T any]() Handle[T] {
	return Handle[T]{kind: Kind(nextKind.Add(1))}
}

func (h Handle[T]) Kind() Kind {
	return h.kind
}

func (h Handle[T]) Valid() bool {
	return h.kind != 0
}
