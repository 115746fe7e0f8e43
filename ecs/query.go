package ecs

import "github.com/milk9111/shipwreck/ecs/component"

// Query returns the live entities that carry every listed component.
func (w *World) Query(kinds ...component.Key) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	ids := make([]component.ComponentID, 0, len(kinds))
	for _, k := range kinds {
		ids = append(ids, k.ID())
	}
	var smallest componentStore
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok {
			return nil
		}
		if smallest == nil || len(s.entities()) < len(smallest.entities()) {
			smallest = s
		}
	}
	out := make([]Entity, 0, len(smallest.entities()))
	for _, e := range smallest.entities() {
		if !IsAlive(w, e) {
			continue
		}
		all := true
		for _, id := range ids {
			if !w.stores[id].hasEntity(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}
