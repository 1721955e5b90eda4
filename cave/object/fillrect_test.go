package object

import (
	"testing"

	"github.com/milk9111/boulders/cave"
)

func TestFillRectDraw(t *testing.T) {
	f := NewFillRect(cave.Coordinate{X: 1, Y: 1}, cave.Coordinate{X: 4, Y: 4}, cave.ElemWall, cave.ElemDirt)
	g := cave.NewRendered(6, 6)
	f.Draw(g)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := cave.ElemSpace
			switch {
			case onPerimeter(x, y, 1, 1, 4, 4):
				want = cave.ElemWall
			case x > 1 && x < 4 && y > 1 && y < 4:
				want = cave.ElemDirt
			}
			if got := g.Get(cave.Coordinate{X: x, Y: y}); got != want {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectDegenerateHasNoInterior(t *testing.T) {
	f := NewFillRect(cave.Coordinate{X: 2, Y: 1}, cave.Coordinate{X: 3, Y: 4}, cave.ElemWall, cave.ElemDirt)
	g := cave.NewRendered(6, 6)
	f.Draw(g)

	// a two-cell-wide box is all border
	for y := 1; y <= 4; y++ {
		for x := 2; x <= 3; x++ {
			if got := g.Get(cave.Coordinate{X: x, Y: y}); got != cave.ElemWall {
				t.Errorf("cell (%d,%d) = %v, want WALL", x, y, got)
			}
		}
	}
}

func TestFillRectRoundTrip(t *testing.T) {
	line := "FillRect 0 0 9 9 STEELWALL DIRT"
	o, ok := Parse(line)
	if !ok {
		t.Fatalf("parse failed")
	}
	if got := o.Encode(); got != line {
		t.Fatalf("Encode = %q, want %q", got, line)
	}
	f := o.(*FillRect)
	if f.Border != cave.ElemSteelWall || f.Fill != cave.ElemDirt {
		t.Fatalf("parsed %+v", f)
	}
	if f.CharacteristicElement() != cave.ElemSteelWall {
		t.Fatalf("characteristic element should be the border")
	}
}

func TestFillRectParseRejects(t *testing.T) {
	bad := []string{
		"FillRect 0 0 9 9 STEELWALL",           // missing fill element
		"FillRect 0 0 9 9 STEELWALL DIRT ROCK", // extra token
		"FillRect 0 0 9 STEELWALL DIRT",        // short coordinate
	}
	for _, line := range bad {
		if _, ok := Parse(line); ok {
			t.Errorf("Parse(%q) should fail", line)
		}
	}
}
