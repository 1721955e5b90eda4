package object

import "github.com/milk9111/boulders/cave"

const TagRectangle = "Rectangle"

// Rectangle draws the outline of its box with a single element, leaving the
// interior untouched.
type Rectangle struct {
	Rectangular
	Element cave.Element
}

var rectangleFields = append(
	cornerFields[*Rectangle](func(r *Rectangle) *Rectangular { return &r.Rectangular }),
	elementField[*Rectangle]("Element", func(r *Rectangle) *cave.Element { return &r.Element }),
)

func init() {
	Register(TagRectangle, func() cave.Object { return &Rectangle{} })
}

// NewRectangle builds an outlined rectangle between two opposite corners.
func NewRectangle(p1, p2 cave.Coordinate, e cave.Element) *Rectangle {
	return &Rectangle{Rectangular: Rectangular{P1: p1, P2: p2}, Element: e}
}

func (r *Rectangle) Tag() string { return TagRectangle }

func (r *Rectangle) Clone() cave.Object {
	c := *r
	return &c
}

// Draw writes the perimeter of the normalized box. A degenerate box draws
// the line or point the perimeter collapses to; out-of-grid cells are
// clipped by the grid itself.
func (r *Rectangle) Draw(g *cave.Rendered) {
	x1, y1, x2, y2 := r.Bounds()
	for x := x1; x <= x2; x++ {
		g.Set(cave.Coordinate{X: x, Y: y1}, r.Element)
		g.Set(cave.Coordinate{X: x, Y: y2}, r.Element)
	}
	for y := y1; y <= y2; y++ {
		g.Set(cave.Coordinate{X: x1, Y: y}, r.Element)
		g.Set(cave.Coordinate{X: x2, Y: y}, r.Element)
	}
}

func (r *Rectangle) Encode() string { return encode(r) }

func (r *Rectangle) Fields() []cave.Field { return rectangleFields }

func (r *Rectangle) CharacteristicElement() cave.Element { return r.Element }
