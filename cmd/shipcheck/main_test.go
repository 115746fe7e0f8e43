package main

import (
	"testing"

	"github.com/milk9111/shipwreck/component"
)

func TestSimulateCountsShots(t *testing.T) {
	specs := []component.PartSpec{
		{Name: "core", Health: 3, ProtectedBy: []string{"shield"}},
		{Name: "shield", Health: 2},
	}
	bind := func(name string) (component.Handle, bool) { return name, true }

	cases := []struct {
		name   string
		damage float64
		want   int
	}{
		{"exact", 1, 5},
		{"overkill", 10, 2},
		{"uneven", 2, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg, err := component.NewPartRegistry(specs, bind)
			if err != nil {
				t.Fatal(err)
			}
			shots, destroyed := simulate(reg, c.damage)
			if !destroyed || shots != c.want {
				t.Fatalf("expected %d shots, got %d (destroyed=%v)", c.want, shots, destroyed)
			}
		})
	}
}
