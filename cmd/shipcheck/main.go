// Command shipcheck validates a ship prefab against the weapon catalog and
// reports how many shots of a weapon it takes to bring the ship down.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/prefabs"
)

type alwaysOnScreen struct{}

func (alwaysOnScreen) IsOnScreen() bool { return true }
func (alwaysOnScreen) AllowedRange() (float64, float64) { return 0, 0 }

func main() {
	shipName := flag.String("ship", "enemy_4.yaml", "ship prefab in prefabs/")
	weapon := flag.String("weapon", "blaster", "projectile type to simulate")
	flag.Parse()

	spec, err := prefabs.LoadShipSpec(*shipName)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := prefabs.LoadWeaponCatalog(prefabs.WeaponsFile)
	if err != nil {
		log.Fatal(err)
	}

	bind := func(name string) (component.Handle, bool) {
		if _, ok := spec.Shape(name); !ok {
			return nil, false
		}
		return name, true
	}
	registry, err := component.NewPartRegistry(spec.PartSpecs(), bind)
	if err != nil {
		log.Fatalf("shipcheck: %s: %v", *shipName, err)
	}

	fmt.Printf("%s (radius %g, score %d)\n", spec.Name, spec.Radius, spec.Score)
	for _, p := range registry.Parts() {
		guard := "-"
		if len(p.ProtectedBy) > 0 {
			guard = strings.Join(p.ProtectedBy, ", ")
		}
		fmt.Printf("  %-10s health %-5g protected by %s\n", p.Name, p.Health, guard)
	}

	kind := component.ProjectileType(*weapon)
	damage := catalog.DamageForProjectileType(kind)
	if damage <= 0 {
		fmt.Printf("%s deals no damage; ship cannot be destroyed\n", kind)
		os.Exit(1)
	}

	shots, destroyed := simulate(registry, damage)
	if !destroyed {
		fmt.Printf("%s: ship survived %d shots\n", kind, shots)
		os.Exit(1)
	}
	fmt.Printf("%s (%g per hit): %d shots to destroy\n", kind, damage, shots)
}

// simulate always shoots the first exposed, surviving part.
func simulate(registry *component.PartRegistry, damage float64) (int, bool) {
	var notified bool
	resolver := component.NewDamageResolver(registry, alwaysOnScreen{}, nil)
	resolver.OnDestroyed = func() { notified = true }

	limit := 0
	for _, p := range registry.Parts() {
		limit += int(p.MaxHealth/damage) + 1
	}

	shots := 0
	for !notified && shots < limit {
		target := exposed(registry, resolver.Protection)
		if target == nil {
			break
		}
		if _, err := resolver.ApplyHit(0, target.Handle, nil, damage); err != nil {
			log.Fatalf("shipcheck: %v", err)
		}
		shots++
	}
	return shots, notified
}

func exposed(registry *component.PartRegistry, protection component.ProtectionResolver) *component.Part {
	for _, p := range registry.Parts() {
		if !p.Destroyed() && !protection.IsProtected(p) {
			return p
		}
	}
	return nil
}
