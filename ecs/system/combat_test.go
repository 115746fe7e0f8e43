package system

import (
	"testing"
	"time"

	"github.com/milk9111/shipwreck/common"
	shipcomp "github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
	"github.com/milk9111/shipwreck/ecs/entity"
	"github.com/milk9111/shipwreck/prefabs"
)

var testScreen = entity.ScreenBounds{CamWidth: 32, CamHeight: 18}

type fixture struct {
	w       *ecs.World
	catalog *prefabs.WeaponCatalog
	combat  *CombatSystem
	results []shipcomp.HitResult
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog, err := prefabs.NewWeaponCatalog([]prefabs.WeaponSpec{
		{Type: "blaster", DamageOnHit: 1, Velocity: 50, Radius: 0.25, Lifetime: 3 * time.Second},
	})
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(w.Events()))

	f := &fixture{w: w, catalog: catalog, combat: NewCombatSystem()}
	f.combat.OnResult = func(_ *entity.Ship, res shipcomp.HitResult) {
		f.results = append(f.results, res)
	}
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(f.combat)
	w.AddSystem(NewProjectileSystem(testScreen))
	w.AddSystem(NewTTLSystem())
	return f
}

func (f *fixture) ship(t *testing.T, spec *prefabs.ShipSpec) *entity.Ship {
	t.Helper()
	ship, err := entity.BuildEnemyShip(f.w, spec, common.Vec2{}, entity.ShipDeps{Screen: testScreen, Catalog: f.catalog})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return ship
}

func (f *fixture) fire(t *testing.T, from, dir common.Vec2) ecs.Entity {
	t.Helper()
	def, _ := f.catalog.Definition("blaster")
	e, err := entity.BuildProjectile(f.w, def, true, from, dir)
	if err != nil {
		t.Fatalf("fire: %v", err)
	}
	return e
}

func (f *fixture) run(ticks int) {
	for i := 0; i < ticks; i++ {
		f.w.Update()
	}
}

func health(t *testing.T, ship *entity.Ship, name string) float64 {
	t.Helper()
	p, ok := ship.Registry.ResolveByName(name)
	if !ok {
		t.Fatalf("no part %s", name)
	}
	return p.Health
}

func twinSpec() *prefabs.ShipSpec {
	return &prefabs.ShipSpec{
		Name:   "twin",
		Radius: 2,
		Model: []prefabs.ShapeSpec{
			{Name: "left", X: 0, Y: 0, Width: 2, Height: 2},
			{Name: "right", X: 0, Y: 0, Width: 2, Height: 2},
		},
		Parts: []prefabs.PartSpec{
			{Name: "left", Health: 5},
			{Name: "right", Health: 5},
		},
	}
}

func TestCombatSystemProjectileDamagesPart(t *testing.T) {
	f := newFixture(t)
	spec, err := prefabs.LoadShipSpec("enemy_4.yaml")
	if err != nil {
		t.Fatal(err)
	}
	ship := f.ship(t, spec)
	shot := f.fire(t, common.Vec2{X: -2, Y: -10}, common.Vec2{Y: 1})

	f.run(30)

	if got := health(t, ship, "wing_l"); got != 3 {
		t.Fatalf("expected wing_l at 3, got %g", got)
	}
	if ecs.IsAlive(f.w, shot) {
		t.Fatalf("projectile should be consumed")
	}
	if len(f.results) != 1 || f.results[0].Outcome != shipcomp.HitDamaged {
		t.Fatalf("unexpected results %+v", f.results)
	}
}

func TestCombatSystemProjectileIsSingleUse(t *testing.T) {
	f := newFixture(t)
	ship := f.ship(t, twinSpec())
	f.fire(t, common.Vec2{Y: -10}, common.Vec2{Y: 1})

	f.run(30)

	total := health(t, ship, "left") + health(t, ship, "right")
	if total != 9 {
		t.Fatalf("expected exactly one point of damage, parts hold %g", total)
	}
	if len(f.results) != 1 {
		t.Fatalf("expected one resolved hit, got %d", len(f.results))
	}
}

func TestCombatSystemIgnoresOtherContacts(t *testing.T) {
	f := newFixture(t)
	ship := f.ship(t, twinSpec())
	def, _ := f.catalog.Definition("blaster")
	shot, err := entity.BuildProjectile(f.w, def, false, common.Vec2{Y: -10}, common.Vec2{Y: 1})
	if err != nil {
		t.Fatal(err)
	}

	f.run(15)

	if health(t, ship, "left") != 5 || health(t, ship, "right") != 5 {
		t.Fatalf("hostile projectile damaged the ship")
	}
	if !ecs.IsAlive(f.w, shot) {
		t.Fatalf("hostile projectile should not be consumed")
	}
}

func TestCombatSystemRemovesDestroyedShip(t *testing.T) {
	f := newFixture(t)
	spec := &prefabs.ShipSpec{
		Name:   "drone",
		Radius: 1,
		Model:  []prefabs.ShapeSpec{{Name: "core", Width: 2, Height: 2}},
		Parts:  []prefabs.PartSpec{{Name: "core", Health: 1}},
	}
	ship := f.ship(t, spec)
	f.fire(t, common.Vec2{Y: -10}, common.Vec2{Y: 1})

	f.run(30)

	if !ship.Destroyed() {
		t.Fatalf("drone should be destroyed")
	}
	if ecs.IsAlive(f.w, ship.Entity) || len(f.w.Query(entity.ShipComponent)) != 0 {
		t.Fatalf("destroyed ship still in world")
	}
}

func TestProjectileAndTTLSystems(t *testing.T) {
	f := newFixture(t)

	offscreen := f.fire(t, common.Vec2{X: 31}, common.Vec2{X: 1})
	f.run(5)
	if ecs.IsAlive(f.w, offscreen) {
		t.Fatalf("projectile leaving the screen should be removed")
	}

	e := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, e, component.TTLComponent, &component.TTL{Expires: f.w.Now() + 2*f.w.Step()})
	f.run(1)
	if !ecs.IsAlive(f.w, e) {
		t.Fatalf("ttl expired early")
	}
	f.run(1)
	if ecs.IsAlive(f.w, e) {
		t.Fatalf("ttl should expire on its deadline")
	}
}
