package object

import (
	"testing"

	"github.com/milk9111/boulders/cave"
)

func drawCells(t *testing.T, o cave.Object, w, h int, e cave.Element) map[cave.Coordinate]bool {
	t.Helper()
	g := cave.NewRendered(w, h)
	o.Draw(g)
	cells := map[cave.Coordinate]bool{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cave.Coordinate{X: x, Y: y}
			switch g.Get(c) {
			case e:
				cells[c] = true
			case cave.ElemSpace:
			default:
				t.Fatalf("cell %v has foreign element %v", c, g.Get(c))
			}
		}
	}
	return cells
}

func TestLineDraw(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 cave.Coordinate
		want   []cave.Coordinate
	}{
		{
			name: "horizontal",
			p1:   cave.Coordinate{X: 1, Y: 2},
			p2:   cave.Coordinate{X: 4, Y: 2},
			want: []cave.Coordinate{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}},
		},
		{
			name: "vertical_reversed",
			p1:   cave.Coordinate{X: 3, Y: 4},
			p2:   cave.Coordinate{X: 3, Y: 1},
			want: []cave.Coordinate{{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}},
		},
		{
			name: "diagonal",
			p1:   cave.Coordinate{X: 0, Y: 0},
			p2:   cave.Coordinate{X: 3, Y: 3},
			want: []cave.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		},
		{
			name: "anti_diagonal",
			p1:   cave.Coordinate{X: 3, Y: 0},
			p2:   cave.Coordinate{X: 0, Y: 3},
			want: []cave.Coordinate{{X: 3, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 3}},
		},
		{
			name: "single_cell",
			p1:   cave.Coordinate{X: 2, Y: 2},
			p2:   cave.Coordinate{X: 2, Y: 2},
			want: []cave.Coordinate{{X: 2, Y: 2}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := drawCells(t, NewLine(c.p1, c.p2, cave.ElemBoulder), 6, 6, cave.ElemBoulder)
			if len(got) != len(c.want) {
				t.Fatalf("drew %d cells, want %d: %v", len(got), len(c.want), got)
			}
			for _, w := range c.want {
				if !got[w] {
					t.Errorf("cell %v not drawn", w)
				}
			}
		})
	}
}

func TestLineEndpointsAlwaysDrawn(t *testing.T) {
	// a shallow line; whatever the stair-stepping does in between, both
	// endpoints must be written
	g := cave.NewRendered(10, 10)
	l := NewLine(cave.Coordinate{X: 0, Y: 0}, cave.Coordinate{X: 7, Y: 2}, cave.ElemDirt)
	l.Draw(g)
	if g.Get(cave.Coordinate{X: 0, Y: 0}) != cave.ElemDirt {
		t.Errorf("start endpoint not drawn")
	}
	if g.Get(cave.Coordinate{X: 7, Y: 2}) != cave.ElemDirt {
		t.Errorf("end endpoint not drawn")
	}
}

func TestLineRoundTripPreservesEndpointOrder(t *testing.T) {
	line := "Line 5 1 0 6 SPACE"
	o, ok := Parse(line)
	if !ok {
		t.Fatalf("parse failed")
	}
	if got := o.Encode(); got != line {
		t.Fatalf("Encode = %q, want %q", got, line)
	}
	l := o.(*Line)
	if l.P1 != (cave.Coordinate{X: 5, Y: 1}) || l.P2 != (cave.Coordinate{X: 0, Y: 6}) {
		t.Fatalf("stored corners were reordered: %+v", l)
	}
}
