package cave

import "testing"

func TestRenderedStartsAsSpace(t *testing.T) {
	r := NewRendered(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := r.Get(Coordinate{X: x, Y: y}); got != ElemSpace {
				t.Fatalf("cell (%d,%d) = %v, want SPACE", x, y, got)
			}
		}
	}
}

func TestRenderedSetGet(t *testing.T) {
	r := NewRendered(4, 3)
	r.Set(Coordinate{X: 1, Y: 2}, ElemDiamond)
	if got := r.Get(Coordinate{X: 1, Y: 2}); got != ElemDiamond {
		t.Fatalf("got %v, want DIAMOND", got)
	}
}

func TestRenderedOutOfBounds(t *testing.T) {
	r := NewRendered(4, 3)
	outside := []Coordinate{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 4, Y: 0},
		{X: 0, Y: 3},
		{X: 100, Y: 100},
	}
	for _, c := range outside {
		r.Set(c, ElemWall) // must be a silent no-op
		if got := r.Get(c); got != ElemSpace {
			t.Errorf("Get(%v) = %v, want SPACE", c, got)
		}
	}
	// nothing inside changed either
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := r.Get(Coordinate{X: x, Y: y}); got != ElemSpace {
				t.Errorf("cell (%d,%d) = %v after out-of-bounds writes", x, y, got)
			}
		}
	}
}
