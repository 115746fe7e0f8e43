package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/shipwreck/component"
)

func TestLoadWeaponCatalog(t *testing.T) {
	catalog, err := LoadWeaponCatalog(WeaponsFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		kind component.ProjectileType
		want float64
	}{
		{"blaster", 1},
		{"spread", 2},
		{"heavy", 5},
		{"unknown", 0},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			if got := catalog.DamageForProjectileType(c.kind); got != c.want {
				t.Fatalf("expected %g, got %g", c.want, got)
			}
		})
	}

	types := catalog.Types()
	if len(types) != 3 || types[0] != "blaster" {
		t.Fatalf("unexpected type order %v", types)
	}
}

func TestNewWeaponCatalogErrors(t *testing.T) {
	cases := []struct {
		name  string
		specs []WeaponSpec
		want  error
	}{
		{"missing_type", []WeaponSpec{{DamageOnHit: 1}}, ErrInvalidSpec},
		{"duplicate", []WeaponSpec{{Type: "a"}, {Type: "a"}}, ErrInvalidSpec},
		{"bad_expr", []WeaponSpec{{Type: "a", DamageExpr: "base +"}}, nil},
		{"non_numeric_expr", []WeaponSpec{{Type: "a", DamageExpr: `"x"`}}, nil},
		{"missing_script", []WeaponSpec{{Type: "a", DamageScript: "nope.tengo"}}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewWeaponCatalog(c.specs)
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestWeaponCatalogReplace(t *testing.T) {
	held, err := NewWeaponCatalog([]WeaponSpec{{Type: "blaster", DamageOnHit: 1}})
	if err != nil {
		t.Fatal(err)
	}
	var iface component.WeaponCatalog = held

	next, err := NewWeaponCatalog([]WeaponSpec{{Type: "blaster", DamageOnHit: 3}})
	if err != nil {
		t.Fatal(err)
	}
	held.Replace(next)
	if got := iface.DamageForProjectileType("blaster"); got != 3 {
		t.Fatalf("expected reloaded damage 3, got %g", got)
	}
}

func TestNilWeaponCatalogDealsNoDamage(t *testing.T) {
	var c *WeaponCatalog
	if got := c.DamageForProjectileType("blaster"); got != 0 {
		t.Fatalf("expected 0, got %g", got)
	}
}
