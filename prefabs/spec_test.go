package prefabs

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/milk9111/shipwreck/component"
	"gopkg.in/yaml.v3"
)

func TestLoadShipSpecEnemy4(t *testing.T) {
	spec, err := LoadShipSpec("enemy_4.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "enemy_4" || spec.Radius != 3.5 {
		t.Fatalf("unexpected header %q radius %g", spec.Name, spec.Radius)
	}
	if spec.MotionDuration != 4*time.Second || spec.FeedbackDuration != 100*time.Millisecond {
		t.Fatalf("unexpected durations %v %v", spec.MotionDuration, spec.FeedbackDuration)
	}

	parts := spec.PartSpecs()
	want := []string{"fuselage", "cockpit", "wing_l", "wing_r"}
	if len(parts) != len(want) {
		t.Fatalf("expected %d parts, got %d", len(want), len(parts))
	}
	for i, name := range want {
		if parts[i].Name != name {
			t.Fatalf("part %d: expected %s, got %s", i, name, parts[i].Name)
		}
		if _, ok := spec.Shape(name); !ok {
			t.Fatalf("part %s has no model entry", name)
		}
	}

	bind := func(name string) (component.Handle, bool) {
		_, ok := spec.Shape(name)
		return name, ok
	}
	if _, err := component.NewPartRegistry(parts, bind); err != nil {
		t.Fatalf("enemy_4 parts should form a valid registry: %v", err)
	}
}

func TestShipSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		spec    ShipSpec
		wantErr bool
	}{
		{"ok", ShipSpec{Model: []ShapeSpec{{Name: "a", Width: 1, Height: 1}}, Parts: []PartSpec{{Name: "a", Health: 1}}}, false},
		{"orphan_shape", ShipSpec{
			Model: []ShapeSpec{{Name: "a", Width: 1, Height: 1}, {Name: "fin", Width: 1, Height: 1}},
			Parts: []PartSpec{{Name: "a", Health: 1}},
		}, true},
		{"negative_radius", ShipSpec{Radius: -1}, true},
		{"negative_duration", ShipSpec{MotionDuration: -time.Second}, true},
		{"unnamed_shape", ShipSpec{Model: []ShapeSpec{{Width: 1, Height: 1}}}, true},
		{"duplicate_shape", ShipSpec{Model: []ShapeSpec{{Name: "a", Width: 1, Height: 1}, {Name: "a", Width: 1, Height: 1}}}, true},
		{"empty_shape", ShipSpec{Model: []ShapeSpec{{Name: "a"}}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if c.wantErr && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestShapeSpecRectIsCentered(t *testing.T) {
	r := ShapeSpec{X: 1, Y: 2, Width: 4, Height: 2}.Rect()
	if r.X != -1 || r.Y != 1 || r.Width != 4 || r.Height != 2 {
		t.Fatalf("unexpected rect %+v", r)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{`"#ff0000"`, color.NRGBA{R: 255, A: 255}, false},
		{`"#00ff0080"`, color.NRGBA{G: 255, A: 128}, false},
		{`gold`, color.RGBA{R: 255, G: 215, A: 255}, false},
		{`"#12"`, nil, true},
		{`"#zzzzzz"`, nil, true},
		{`[1, 2]`, nil, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}
