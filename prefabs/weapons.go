package prefabs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shipwreck/component"
)

const WeaponsFile = "weapons.yaml"

// WeaponSpec is one projectile type. DamageExpr and DamageScript may rework
// DamageOnHit; both see it as `base`, and a script must set `damage`.
type WeaponSpec struct {
	Type         component.ProjectileType `yaml:"type"`
	DamageOnHit  float64                  `yaml:"damage_on_hit"`
	DamageExpr   string                   `yaml:"damage_expr"`
	DamageScript string                   `yaml:"damage_script"`
	Velocity     float64                  `yaml:"velocity"`
	Delay        time.Duration            `yaml:"delay_between_shots"`
	Lifetime     time.Duration            `yaml:"lifetime"`
	Radius       float64                  `yaml:"radius"`
	Color        *YAMLColor               `yaml:"color"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

// WeaponDefinition is a WeaponSpec with its damage already evaluated.
type WeaponDefinition struct {
	WeaponSpec
	Damage float64
}

// WeaponCatalog answers damage lookups by projectile type. Unknown types deal
// no damage.
type WeaponCatalog struct {
	defs  map[component.ProjectileType]WeaponDefinition
	order []component.ProjectileType
}

func NewWeaponCatalog(specs []WeaponSpec) (*WeaponCatalog, error) {
	c := &WeaponCatalog{defs: make(map[component.ProjectileType]WeaponDefinition, len(specs))}
	for _, spec := range specs {
		if spec.Type == "" {
			return nil, fmt.Errorf("%w: weapon without type", ErrInvalidSpec)
		}
		if _, dup := c.defs[spec.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate weapon %q", ErrInvalidSpec, spec.Type)
		}
		dmg, err := evalDamage(spec)
		if err != nil {
			return nil, fmt.Errorf("prefabs: weapon %q: %w", spec.Type, err)
		}
		c.defs[spec.Type] = WeaponDefinition{WeaponSpec: spec, Damage: dmg}
		c.order = append(c.order, spec.Type)
	}
	return c, nil
}

func LoadWeaponCatalog(name string) (*WeaponCatalog, error) {
	spec, err := LoadSpec[WeaponsSpec](name)
	if err != nil {
		return nil, err
	}
	return NewWeaponCatalog(spec.Weapons)
}

func (c *WeaponCatalog) DamageForProjectileType(t component.ProjectileType) float64 {
	if c == nil {
		return 0
	}
	return c.defs[t].Damage
}

func (c *WeaponCatalog) Definition(t component.ProjectileType) (WeaponDefinition, bool) {
	if c == nil {
		return WeaponDefinition{}, false
	}
	def, ok := c.defs[t]
	return def, ok
}

// Types lists projectile types in file order.
func (c *WeaponCatalog) Types() []component.ProjectileType {
	if c == nil {
		return nil
	}
	return append([]component.ProjectileType(nil), c.order...)
}

// Replace swaps in other's definitions so holders of c see a reload.
func (c *WeaponCatalog) Replace(other *WeaponCatalog) {
	if c == nil || other == nil {
		return
	}
	c.defs = other.defs
	c.order = other.order
	log.Printf("prefabs: weapon catalog reloaded with %d types", len(c.order))
}

func evalDamage(spec WeaponSpec) (float64, error) {
	dmg := spec.DamageOnHit
	if spec.DamageExpr != "" {
		res, err := tengo.Eval(context.Background(), spec.DamageExpr, map[string]interface{}{"base": dmg})
		if err != nil {
			return 0, fmt.Errorf("damage_expr: %w", err)
		}
		v, err := toFloat(res)
		if err != nil {
			return 0, fmt.Errorf("damage_expr: %w", err)
		}
		dmg = v
	}
	if spec.DamageScript != "" {
		src, err := LoadScript(spec.DamageScript)
		if err != nil {
			return 0, fmt.Errorf("damage_script: load %s: %w", spec.DamageScript, err)
		}
		script := tengo.NewScript(src)
		script.SetImports(stdlib.GetModuleMap("math"))
		if err := script.Add("base", dmg); err != nil {
			return 0, fmt.Errorf("damage_script: %w", err)
		}
		compiled, err := script.Run()
		if err != nil {
			return 0, fmt.Errorf("damage_script: run %s: %w", spec.DamageScript, err)
		}
		out := compiled.Get("damage")
		if out.IsUndefined() {
			return 0, fmt.Errorf("damage_script: %s does not set damage", spec.DamageScript)
		}
		dmg = out.Float()
	}
	return dmg, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expression result %v is not a number", v)
	}
}
