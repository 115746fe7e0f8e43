package system

import (
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/entity"
)

// ShipMotionSystem advances every ship along its current waypoint leg.
type ShipMotionSystem struct{}

func NewShipMotionSystem() *ShipMotionSystem {
	return &ShipMotionSystem{}
}

func (s *ShipMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	ecs.ForEach(w, entity.ShipComponent, func(_ ecs.Entity, ship *entity.Ship) {
		ship.OnTick(now)
	})
}
