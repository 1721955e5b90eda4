package object

import "github.com/milk9111/boulders/cave"

const TagPoint = "Point"

// Point draws a single element at one cell.
type Point struct {
	P       cave.Coordinate
	Element cave.Element
}

var pointFields = []cave.Field{
	coordinateField[*Point]("Position", func(p *Point) *cave.Coordinate { return &p.P }),
	elementField[*Point]("Element", func(p *Point) *cave.Element { return &p.Element }),
}

func init() {
	Register(TagPoint, func() cave.Object { return &Point{} })
}

func NewPoint(p cave.Coordinate, e cave.Element) *Point {
	return &Point{P: p, Element: e}
}

func (p *Point) Tag() string { return TagPoint }

func (p *Point) Clone() cave.Object {
	c := *p
	return &c
}

func (p *Point) Draw(g *cave.Rendered) {
	g.Set(p.P, p.Element)
}

func (p *Point) Encode() string { return encode(p) }

func (p *Point) Fields() []cave.Field { return pointFields }

func (p *Point) CharacteristicElement() cave.Element { return p.Element }
