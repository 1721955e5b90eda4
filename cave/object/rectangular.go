package object

import "github.com/milk9111/boulders/cave"

// Rectangular is the shared corner-pair storage for every two-corner shape.
// P1 and P2 are kept exactly as given; only Bounds normalizes. Swapping at
// storage time would corrupt round-trips and change the direction of
// diagonal lines, so consumers that need a box must go through Bounds.
type Rectangular struct {
	P1, P2 cave.Coordinate
}

// Bounds returns the normalized box [x1,x2]×[y1,y2] with x1<=x2 and y1<=y2.
func (r *Rectangular) Bounds() (x1, y1, x2, y2 int) {
	x1, x2 = r.P1.X, r.P2.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 = r.P1.Y, r.P2.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return x1, y1, x2, y2
}

// cornerFields returns the two coordinate descriptors every two-corner
// variant shares, bound to variant T's embedded Rectangular.
func cornerFields[T cave.Object](base func(T) *Rectangular) []cave.Field {
	return []cave.Field{
		coordinateField[T]("Start corner", func(t T) *cave.Coordinate { return &base(t).P1 }),
		coordinateField[T]("End corner", func(t T) *cave.Coordinate { return &base(t).P2 }),
	}
}
