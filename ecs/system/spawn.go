package system

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/entity"
	"github.com/milk9111/shipwreck/prefabs"
)

// SpawnSystem keeps up to Max ships alive, adding one every Every.
type SpawnSystem struct {
	Spec  func() *prefabs.ShipSpec
	Deps  entity.ShipDeps
	Max   int
	Every time.Duration

	rng  *rand.Rand
	next time.Duration
}

func NewSpawnSystem(spec func() *prefabs.ShipSpec, deps entity.ShipDeps, max int, every time.Duration) *SpawnSystem {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
		deps.Rand = rng
	}
	return &SpawnSystem{Spec: spec, Deps: deps, Max: max, Every: every, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.Spec == nil {
		return
	}
	now := w.Now()
	if now < s.next {
		return
	}
	if len(w.Query(entity.ShipComponent)) >= s.Max {
		return
	}
	spec := s.Spec()
	if spec == nil {
		return
	}
	s.next = now + s.Every

	pos := entity.SpawnPosition(s.rng, s.Deps.Screen, spec.Radius)
	ship, err := entity.BuildEnemyShip(w, spec, pos, s.Deps)
	if err != nil {
		log.Printf("spawn: %v", err)
		return
	}
	log.Printf("spawn: %s (%s) at %.1f,%.1f", ship.Name, ship.ID, pos.X, pos.Y)
}
