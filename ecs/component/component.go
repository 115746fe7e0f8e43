package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a component store in the world. Zero is never issued.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentHandle addresses the store for component type T. Handles are
// declared once per type as package variables, e.g.
//
//	var TransformComponent = NewComponent[Transform]()
type ComponentHandle[T any] struct {
	id   ComponentID
	name string
}

func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{
		id:   ComponentID(lastID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

// Valid is false for the zero handle.
func (h ComponentHandle[T]) Valid() bool { return h.id != 0 }

func (h ComponentHandle[T]) ID() ComponentID { return h.id }

func (h ComponentHandle[T]) String() string {
	if !h.Valid() {
		return "component(invalid)"
	}
	return h.name
}

// Key selects a store in queries without naming its type.
type Key interface {
	ID() ComponentID
}
