package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching_edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("Intersects (swapped) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(10, 20) {
		t.Fatalf("top-left corner should be contained")
	}
	if r.Contains(40, 60) {
		t.Fatalf("bottom-right corner should be exclusive")
	}
	if !r.Contains(25, 40) {
		t.Fatalf("interior point should be contained")
	}
}
