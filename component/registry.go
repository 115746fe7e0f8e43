package component

import (
	"fmt"
	"math"
)

// Binder maps a configured part name to its physical handle at spawn time.
type Binder func(name string) (Handle, bool)

// PartRegistry owns a ship's parts and indexes them by name and by handle.
// The set of parts is fixed at construction.
type PartRegistry struct {
	parts    []*Part
	byName   map[string]*Part
	byHandle map[Handle]*Part
}

// NewPartRegistry builds the registry in declared order. It fails with
// ErrConfiguration when a name is empty or duplicated, a health is NaN, a
// name has no handle, two parts share a handle, or the protection graph is
// invalid. A part configured with health <= 0 starts out destroyed.
func NewPartRegistry(specs []PartSpec, bind Binder) (*PartRegistry, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no parts", ErrConfiguration)
	}
	if bind == nil {
		return nil, fmt.Errorf("%w: no binder", ErrConfiguration)
	}

	r := &PartRegistry{
		parts:    make([]*Part, 0, len(specs)),
		byName:   make(map[string]*Part, len(specs)),
		byHandle: make(map[Handle]*Part, len(specs)),
	}
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: part with empty name", ErrConfiguration)
		}
		if _, dup := r.byName[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate part %q", ErrConfiguration, spec.Name)
		}
		if math.IsNaN(spec.Health) {
			return nil, fmt.Errorf("%w: part %q has no health value", ErrConfiguration, spec.Name)
		}
		handle, ok := bind(spec.Name)
		if !ok {
			return nil, fmt.Errorf("%w: part %q has no physical handle", ErrConfiguration, spec.Name)
		}
		if !comparableHandle(handle) {
			return nil, fmt.Errorf("%w: part %q has an unusable handle %T", ErrConfiguration, spec.Name, handle)
		}
		if other, dup := r.byHandle[handle]; dup {
			return nil, fmt.Errorf("%w: parts %q and %q share a handle", ErrConfiguration, other.Name, spec.Name)
		}

		p := newPart(spec, handle)
		r.parts = append(r.parts, p)
		r.byName[p.Name] = p
		r.byHandle[handle] = p
	}

	if err := validateProtection(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ResolveByName returns the part with exactly this name.
func (r *PartRegistry) ResolveByName(name string) (*Part, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.byName[name]
	return p, ok
}

// ResolveByHandle returns the part that owns handle.
func (r *PartRegistry) ResolveByHandle(handle Handle) (*Part, bool) {
	if r == nil || !comparableHandle(handle) {
		return nil, false
	}
	p, ok := r.byHandle[handle]
	return p, ok
}

// IsDestroyed treats a missing part as already destroyed.
func (r *PartRegistry) IsDestroyed(p *Part) bool {
	return p.Destroyed()
}

// IsDestroyedByName resolves name first; unknown names count as destroyed.
func (r *PartRegistry) IsDestroyedByName(name string) bool {
	p, _ := r.ResolveByName(name)
	return r.IsDestroyed(p)
}

// AllDestroyed reports whether every part has fallen.
func (r *PartRegistry) AllDestroyed() bool {
	if r == nil {
		return true
	}
	for _, p := range r.parts {
		if !p.Destroyed() {
			return false
		}
	}
	return true
}

// Parts returns the parts in declared order. Callers must not mutate health.
func (r *PartRegistry) Parts() []*Part {
	if r == nil {
		return nil
	}
	return r.parts
}
