package common

import "testing"

func TestEaseOutQuad(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"start", 0, 0},
		{"half", 0.5, 0.75},
		{"end", 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EaseOutQuad(c.in); got != c.want {
				t.Fatalf("EaseOutQuad(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLerpVec(t *testing.T) {
	a := Vec2{X: -2, Y: 4}
	b := Vec2{X: 2, Y: 0}
	if got := LerpVec(a, b, 0); got != a {
		t.Fatalf("t=0: got %v want %v", got, a)
	}
	if got := LerpVec(a, b, 1); got != b {
		t.Fatalf("t=1: got %v want %v", got, b)
	}
	if got := LerpVec(a, b, 0.5); got != (Vec2{X: 0, Y: 2}) {
		t.Fatalf("t=0.5: got %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := CenteredRect(10, 5)
	cases := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{}, true},
		{"corner", Vec2{X: 10, Y: -5}, true},
		{"outside_x", Vec2{X: 10.1, Y: 0}, false},
		{"outside_y", Vec2{X: 0, Y: -6}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.p); got != c.want {
				t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}
