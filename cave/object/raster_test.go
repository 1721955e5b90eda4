package object

import (
	"testing"

	"github.com/milk9111/boulders/cave"
)

func TestRasterDraw(t *testing.T) {
	r := NewRaster(cave.Coordinate{X: 1, Y: 1}, cave.Coordinate{X: 7, Y: 5}, 3, 2, cave.ElemDiamond)
	got := drawCells(t, r, 10, 10, cave.ElemDiamond)

	want := map[cave.Coordinate]bool{}
	for y := 1; y <= 5; y += 2 {
		for x := 1; x <= 7; x += 3 {
			want[cave.Coordinate{X: x, Y: y}] = true
		}
	}
	if len(got) != len(want) {
		t.Fatalf("drew %d cells, want %d", len(got), len(want))
	}
	for c := range want {
		if !got[c] {
			t.Errorf("cell %v not drawn", c)
		}
	}
}

func TestRasterSwappedCornersSameCells(t *testing.T) {
	a := NewRaster(cave.Coordinate{X: 1, Y: 1}, cave.Coordinate{X: 7, Y: 5}, 3, 2, cave.ElemDiamond)
	b := NewRaster(cave.Coordinate{X: 7, Y: 5}, cave.Coordinate{X: 1, Y: 1}, 3, 2, cave.ElemDiamond)

	ga := drawCells(t, a, 10, 10, cave.ElemDiamond)
	gb := drawCells(t, b, 10, 10, cave.ElemDiamond)
	if len(ga) != len(gb) {
		t.Fatalf("swapped corners drew %d vs %d cells", len(ga), len(gb))
	}
	for c := range ga {
		if !gb[c] {
			t.Errorf("cell %v missing from swapped draw", c)
		}
	}
}

func TestRasterZeroStepFillsBox(t *testing.T) {
	// steps below 1 degrade to 1 instead of looping forever
	r := NewRaster(cave.Coordinate{X: 0, Y: 0}, cave.Coordinate{X: 2, Y: 2}, 0, 0, cave.ElemDirt)
	got := drawCells(t, r, 4, 4, cave.ElemDirt)
	if len(got) != 9 {
		t.Fatalf("drew %d cells, want the whole 3x3 box", len(got))
	}
}

func TestRasterRoundTrip(t *testing.T) {
	line := "Raster 1 1 7 5 3 2 DIAMOND"
	o, ok := Parse(line)
	if !ok {
		t.Fatalf("parse failed")
	}
	if got := o.Encode(); got != line {
		t.Fatalf("Encode = %q, want %q", got, line)
	}
	r := o.(*Raster)
	if r.DX != 3 || r.DY != 2 {
		t.Fatalf("parsed steps %d %d", r.DX, r.DY)
	}
}
