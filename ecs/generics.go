package ecs

import (
	"fmt"

	"github.com/milk9111/shipwreck/ecs/component"
)

func storeFor[T any](w *World, handle component.ComponentHandle[T], create bool) *sparseSet[T] {
	if w == nil || !handle.Valid() {
		return nil
	}
	if s, ok := w.stores[handle.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	s := &sparseSet[T]{}
	w.stores[handle.ID()] = s
	return s
}

// Add stores value as e's component for handle, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, handle)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %v add %s", component.ErrEntityNotAlive, e, handle)
	}
	storeFor(w, handle, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s := storeFor(w, handle, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s := storeFor(w, handle, false)
	return s != nil && s.has(e)
}

// Get returns e's component for handle. Entities scheduled for removal still
// resolve until the end-of-tick flush.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	s := storeFor(w, handle, false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

// ForEach calls fn for every live entity carrying handle's component.
// Entities destroyed by fn are skipped for the rest of the pass.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s := storeFor(w, handle, false)
	if s == nil || fn == nil {
		return
	}
	ents := append([]Entity(nil), s.entities()...)
	for _, e := range ents {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := s.get(e); ok {
			fn(e, v)
		}
	}
}
