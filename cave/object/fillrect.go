package object

import "github.com/milk9111/boulders/cave"

const TagFillRect = "FillRect"

// FillRect draws a bordered box: the border element on the perimeter and
// the fill element everywhere inside it.
type FillRect struct {
	Rectangular
	Border cave.Element
	Fill   cave.Element
}

var fillRectFields = append(
	cornerFields[*FillRect](func(f *FillRect) *Rectangular { return &f.Rectangular }),
	elementField[*FillRect]("Border element", func(f *FillRect) *cave.Element { return &f.Border }),
	elementField[*FillRect]("Fill element", func(f *FillRect) *cave.Element { return &f.Fill }),
)

func init() {
	Register(TagFillRect, func() cave.Object { return &FillRect{} })
}

func NewFillRect(p1, p2 cave.Coordinate, border, fill cave.Element) *FillRect {
	return &FillRect{Rectangular: Rectangular{P1: p1, P2: p2}, Border: border, Fill: fill}
}

func (f *FillRect) Tag() string { return TagFillRect }

func (f *FillRect) Clone() cave.Object {
	c := *f
	return &c
}

func (f *FillRect) Draw(g *cave.Rendered) {
	x1, y1, x2, y2 := f.Bounds()
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			e := f.Fill
			if x == x1 || x == x2 || y == y1 || y == y2 {
				e = f.Border
			}
			g.Set(cave.Coordinate{X: x, Y: y}, e)
		}
	}
}

func (f *FillRect) Encode() string { return encode(f) }

func (f *FillRect) Fields() []cave.Field { return fillRectFields }

// CharacteristicElement is the border: it is what the shape looks like from
// the outside, which is what an object list wants to show.
func (f *FillRect) CharacteristicElement() cave.Element { return f.Border }
