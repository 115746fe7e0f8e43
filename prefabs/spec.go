package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/shipwreck/common"
	"github.com/milk9111/shipwreck/component"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ShipSpec describes a multi-part enemy. Model holds the physical layout,
// Parts the gameplay records. Every part needs a model entry of the same name.
type ShipSpec struct {
	Name             string        `yaml:"name"`
	Radius           float64       `yaml:"radius"`
	Score            int           `yaml:"score"`
	MotionDuration   time.Duration `yaml:"motion_duration"`
	FeedbackDuration time.Duration `yaml:"feedback_duration"`
	Model            []ShapeSpec   `yaml:"model"`
	Parts            []PartSpec    `yaml:"parts"`
}

// ShapeSpec is one box of a ship's model, relative to the ship origin.
type ShapeSpec struct {
	Name   string     `yaml:"name"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

// Rect returns the shape's box centered on (X, Y).
func (s ShapeSpec) Rect() common.Rect {
	return common.Rect{X: s.X - s.Width/2, Y: s.Y - s.Height/2, Width: s.Width, Height: s.Height}
}

type PartSpec struct {
	Name        string   `yaml:"name"`
	Health      float64  `yaml:"health"`
	ProtectedBy []string `yaml:"protected_by"`
}

func LoadShipSpec(name string) (*ShipSpec, error) {
	spec, err := LoadSpec[ShipSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// Validate checks the layout fields and that every model entry belongs to a
// part. Part graph rules are enforced when the parts are registered.
func (s *ShipSpec) Validate() error {
	if s.Radius < 0 {
		return fmt.Errorf("%w: negative radius %g", ErrInvalidSpec, s.Radius)
	}
	if s.MotionDuration < 0 || s.FeedbackDuration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidSpec)
	}
	seen := make(map[string]struct{}, len(s.Model))
	for _, shape := range s.Model {
		if shape.Name == "" {
			return fmt.Errorf("%w: model entry without name", ErrInvalidSpec)
		}
		if _, dup := seen[shape.Name]; dup {
			return fmt.Errorf("%w: duplicate model entry %q", ErrInvalidSpec, shape.Name)
		}
		if shape.Width <= 0 || shape.Height <= 0 {
			return fmt.Errorf("%w: model entry %q has empty size", ErrInvalidSpec, shape.Name)
		}
		seen[shape.Name] = struct{}{}
	}
	used := make(map[string]struct{}, len(s.Parts))
	for _, p := range s.Parts {
		used[p.Name] = struct{}{}
	}
	for _, shape := range s.Model {
		if _, ok := used[shape.Name]; !ok {
			return fmt.Errorf("%w: model entry %q is not a part", ErrInvalidSpec, shape.Name)
		}
	}
	return nil
}

// PartSpecs converts the yaml records to registry input, keeping order.
func (s *ShipSpec) PartSpecs() []component.PartSpec {
	out := make([]component.PartSpec, 0, len(s.Parts))
	for _, p := range s.Parts {
		out = append(out, component.PartSpec{
			Name:        p.Name,
			Health:      p.Health,
			ProtectedBy: append([]string(nil), p.ProtectedBy...),
		})
	}
	return out
}

// Shape returns the model entry named name.
func (s *ShipSpec) Shape(name string) (ShapeSpec, bool) {
	for _, shape := range s.Model {
		if shape.Name == name {
			return shape, true
		}
	}
	return ShapeSpec{}, false
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa", or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns c's color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
