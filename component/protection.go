package component

import "fmt"

// ProtectionResolver decides whether a part is shielded by a surviving
// protector. Any one surviving protector blocks damage.
type ProtectionResolver struct {
	Registry *PartRegistry
}

// IsProtected reports whether damage to p is currently blocked.
func (r ProtectionResolver) IsProtected(p *Part) bool {
	_, ok := r.Protector(p)
	return ok
}

// Protector returns the first protector of p, in declared order, that is
// still standing. Protectors that cannot be resolved count as destroyed.
func (r ProtectionResolver) Protector(p *Part) (string, bool) {
	if p == nil || len(p.ProtectedBy) == 0 {
		return "", false
	}
	for _, name := range p.ProtectedBy {
		if !r.Registry.IsDestroyedByName(name) {
			return name, true
		}
	}
	return "", false
}

const (
	unvisited = iota
	visiting
	visited
)

// validateProtection rejects unknown protectors, self protection and cycles.
func validateProtection(r *PartRegistry) error {
	for _, p := range r.parts {
		for _, name := range p.ProtectedBy {
			if name == p.Name {
				return fmt.Errorf("%w: part %q protects itself", ErrConfiguration, p.Name)
			}
			if _, ok := r.byName[name]; !ok {
				return fmt.Errorf("%w: part %q is protected by unknown part %q", ErrConfiguration, p.Name, name)
			}
		}
	}

	state := make(map[string]int, len(r.parts))
	var visit func(p *Part, path []string) error
	visit = func(p *Part, path []string) error {
		switch state[p.Name] {
		case visited:
			return nil
		case visiting:
			return fmt.Errorf("%w: protection cycle %v", ErrConfiguration, append(path, p.Name))
		}
		state[p.Name] = visiting
		next := append(path[:len(path):len(path)], p.Name)
		for _, name := range p.ProtectedBy {
			if err := visit(r.byName[name], next); err != nil {
				return err
			}
		}
		state[p.Name] = visited
		return nil
	}
	for _, p := range r.parts {
		if err := visit(p, nil); err != nil {
			return err
		}
	}
	return nil
}
