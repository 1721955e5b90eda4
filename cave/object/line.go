package object

import "github.com/milk9111/boulders/cave"

const TagLine = "Line"

// Line draws a run of elements between its two stored endpoints. The stored
// order matters here: the walk starts at P1, so normalizing the corners at
// storage time would flip diagonals.
type Line struct {
	Rectangular
	Element cave.Element
}

var lineFields = append(
	cornerFields[*Line](func(l *Line) *Rectangular { return &l.Rectangular }),
	elementField[*Line]("Element", func(l *Line) *cave.Element { return &l.Element }),
)

func init() {
	Register(TagLine, func() cave.Object { return &Line{} })
}

func NewLine(p1, p2 cave.Coordinate, e cave.Element) *Line {
	return &Line{Rectangular: Rectangular{P1: p1, P2: p2}, Element: e}
}

func (l *Line) Tag() string { return TagLine }

func (l *Line) Clone() cave.Object {
	c := *l
	return &c
}

// Draw walks a Bresenham line from P1 to P2 inclusive.
func (l *Line) Draw(g *cave.Rendered) {
	x, y := l.P1.X, l.P1.Y
	dx := abs(l.P2.X - x)
	dy := -abs(l.P2.Y - y)
	sx, sy := 1, 1
	if x > l.P2.X {
		sx = -1
	}
	if y > l.P2.Y {
		sy = -1
	}
	err := dx + dy
	for {
		g.Set(cave.Coordinate{X: x, Y: y}, l.Element)
		if x == l.P2.X && y == l.P2.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (l *Line) Encode() string { return encode(l) }

func (l *Line) Fields() []cave.Field { return lineFields }

func (l *Line) CharacteristicElement() cave.Element { return l.Element }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
