package component

import (
	"errors"
	"math"
	"testing"
)

func bindByName(name string) (Handle, bool) {
	return "shape:" + name, true
}

func TestNewPartRegistryConfiguration(t *testing.T) {
	cases := []struct {
		name    string
		specs   []PartSpec
		bind    Binder
		wantErr bool
	}{
		{
			name:  "valid",
			specs: []PartSpec{{Name: "hull", Health: 10}, {Name: "core", Health: 5, ProtectedBy: []string{"hull"}}},
			bind:  bindByName,
		},
		{name: "no_parts", specs: nil, bind: bindByName, wantErr: true},
		{name: "nil_binder", specs: []PartSpec{{Name: "hull", Health: 1}}, wantErr: true},
		{name: "empty_name", specs: []PartSpec{{Name: "", Health: 1}}, bind: bindByName, wantErr: true},
		{name: "duplicate_name", specs: []PartSpec{{Name: "a", Health: 1}, {Name: "a", Health: 2}}, bind: bindByName, wantErr: true},
		{name: "zero_health", specs: []PartSpec{{Name: "a", Health: 0}}, bind: bindByName},
		{name: "nan_health", specs: []PartSpec{{Name: "a", Health: math.NaN()}}, bind: bindByName, wantErr: true},
		{
			name:    "unbound_name",
			specs:   []PartSpec{{Name: "a", Health: 1}, {Name: "ghost", Health: 1}},
			bind:    func(name string) (Handle, bool) { return name, name != "ghost" },
			wantErr: true,
		},
		{
			name:    "shared_handle",
			specs:   []PartSpec{{Name: "a", Health: 1}, {Name: "b", Health: 1}},
			bind:    func(string) (Handle, bool) { return "same", true },
			wantErr: true,
		},
		{
			name:    "uncomparable_handle",
			specs:   []PartSpec{{Name: "a", Health: 1}},
			bind:    func(string) (Handle, bool) { return []int{1}, true },
			wantErr: true,
		},
		{name: "unknown_protector", specs: []PartSpec{{Name: "a", Health: 1, ProtectedBy: []string{"b"}}}, bind: bindByName, wantErr: true},
		{name: "self_protection", specs: []PartSpec{{Name: "a", Health: 1, ProtectedBy: []string{"a"}}}, bind: bindByName, wantErr: true},
		{
			name: "cycle",
			specs: []PartSpec{
				{Name: "a", Health: 1, ProtectedBy: []string{"b"}},
				{Name: "b", Health: 1, ProtectedBy: []string{"c"}},
				{Name: "c", Health: 1, ProtectedBy: []string{"a"}},
			},
			bind:    bindByName,
			wantErr: true,
		},
		{
			name: "diamond_is_not_a_cycle",
			specs: []PartSpec{
				{Name: "core", Health: 1, ProtectedBy: []string{"left", "right"}},
				{Name: "left", Health: 1, ProtectedBy: []string{"hull"}},
				{Name: "right", Health: 1, ProtectedBy: []string{"hull"}},
				{Name: "hull", Health: 1},
			},
			bind: bindByName,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := NewPartRegistry(c.specs, c.bind)
			if c.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Fatalf("expected ErrConfiguration, got %v", err)
				}
				if r != nil {
					t.Fatalf("expected nil registry on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(r.Parts()) != len(c.specs) {
				t.Fatalf("expected %d parts, got %d", len(c.specs), len(r.Parts()))
			}
		})
	}
}

func TestPartRegistryResolve(t *testing.T) {
	r, err := NewPartRegistry([]PartSpec{{Name: "hull", Health: 10}, {Name: "wing", Health: 4}}, bindByName)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	t.Run("by_name", func(t *testing.T) {
		p, ok := r.ResolveByName("wing")
		if !ok || p.Name != "wing" || p.Health != 4 {
			t.Fatalf("expected wing, got %+v ok=%v", p, ok)
		}
		if _, ok := r.ResolveByName("Wing"); ok {
			t.Fatalf("name lookup must be exact")
		}
	})

	t.Run("by_handle", func(t *testing.T) {
		p, ok := r.ResolveByHandle("shape:hull")
		if !ok || p.Name != "hull" {
			t.Fatalf("expected hull, got %+v ok=%v", p, ok)
		}
		if _, ok := r.ResolveByHandle("shape:tail"); ok {
			t.Fatalf("unknown handle should not resolve")
		}
		if _, ok := r.ResolveByHandle(nil); ok {
			t.Fatalf("nil handle should not resolve")
		}
	})

	t.Run("missing_counts_as_destroyed", func(t *testing.T) {
		if !r.IsDestroyed(nil) {
			t.Fatalf("nil part should count as destroyed")
		}
		if !r.IsDestroyedByName("tail") {
			t.Fatalf("unknown part should count as destroyed")
		}
		if r.IsDestroyedByName("hull") {
			t.Fatalf("hull is alive")
		}
	})

	t.Run("declared_order", func(t *testing.T) {
		parts := r.Parts()
		if parts[0].Name != "hull" || parts[1].Name != "wing" {
			t.Fatalf("unexpected order %s,%s", parts[0].Name, parts[1].Name)
		}
	})
}

func TestPartApplyDamage(t *testing.T) {
	p := newPart(PartSpec{Name: "hull", Health: 3}, "h")
	if p.applyDamage(-5) {
		t.Fatalf("negative damage must not destroy")
	}
	if p.Health != 3 {
		t.Fatalf("negative damage must not heal, health=%v", p.Health)
	}
	if !p.applyDamage(4) {
		t.Fatalf("expected crossing on 3-4")
	}
	if p.Health != -1 {
		t.Fatalf("health should not clamp, got %v", p.Health)
	}
	if p.applyDamage(1) {
		t.Fatalf("already destroyed part cannot cross again")
	}
	if p.Fraction() != 0 {
		t.Fatalf("destroyed fraction should be 0")
	}
}
