package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/entity"
	"github.com/milk9111/shipwreck/prefabs"
)

func TestSpawnSystemRespectsLimitAndInterval(t *testing.T) {
	spec, err := prefabs.LoadShipSpec("enemy_4.yaml")
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(w.Events()))
	deps := entity.ShipDeps{Screen: testScreen, Rand: rand.New(rand.NewPCG(3, 4))}
	w.AddSystem(NewShipMotionSystem())
	w.AddSystem(NewSpawnSystem(func() *prefabs.ShipSpec { return spec }, deps, 2, 100*time.Millisecond))

	count := func() int { return len(w.Query(entity.ShipComponent)) }

	w.Update()
	if count() != 1 {
		t.Fatalf("expected first ship on the first tick, got %d", count())
	}
	w.Update()
	if count() != 1 {
		t.Fatalf("second ship spawned before the interval, got %d", count())
	}
	for i := 0; i < 30; i++ {
		w.Update()
	}
	if count() != 2 {
		t.Fatalf("expected the limit of 2 ships, got %d", count())
	}
}

func TestShipMotionSystemMovesShips(t *testing.T) {
	spec, err := prefabs.LoadShipSpec("enemy_4.yaml")
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(w.Events()))
	w.AddSystem(NewShipMotionSystem())

	spawn := entity.SpawnPosition(nil, testScreen, spec.Radius)
	ship, err := entity.BuildEnemyShip(w, spec, spawn, entity.ShipDeps{Screen: testScreen, Rand: rand.New(rand.NewPCG(5, 6))})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < int(spec.MotionDuration/w.Step())+1; i++ {
		w.Update()
	}
	if !ship.Bounds.IsOnScreen() {
		t.Fatalf("ship should be on screen after its first leg, at %v", ship.Position)
	}
	if p, _ := w.PhysicsWorld().Position(ship.Entity); p != ship.Position {
		t.Fatalf("body at %v, ship at %v", p, ship.Position)
	}
}
