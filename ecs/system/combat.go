package system

import (
	"log"

	shipcomp "github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/entity"
)

// CombatSystem routes friendly projectile contacts to the ship they touched.
// A projectile is spent by its first contact, so a shot that overlaps two
// parts in the same step only counts once.
type CombatSystem struct {
	// OnResult, when set, sees every resolved hit.
	OnResult func(ship *entity.Ship, res shipcomp.HitResult)
}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Take(ecs.EventContact) {
		c, ok := evt.Data.(ecs.Contact)
		if !ok || c.Kind != ecs.ContactFriendlyProjectile {
			continue
		}
		if !ecs.IsAlive(w, c.Projectile) || !ecs.IsAlive(w, c.Target) {
			continue
		}
		ship, ok := ecs.Get(w, c.Target, entity.ShipComponent)
		if !ok {
			continue
		}
		res, err := ship.OnHit(w.Now(), c)
		if err != nil {
			log.Printf("combat: %v", err)
			continue
		}
		if s.OnResult != nil {
			s.OnResult(ship, res)
		}
	}
}
