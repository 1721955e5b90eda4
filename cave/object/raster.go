package object

import "github.com/milk9111/boulders/cave"

const TagRaster = "Raster"

// Raster draws the element on a regular grid of cells inside the box,
// starting at the box's minimum corner and stepping DX cells across and DY
// cells down.
type Raster struct {
	Rectangular
	DX, DY  int
	Element cave.Element
}

var rasterFields = append(
	cornerFields[*Raster](func(r *Raster) *Rectangular { return &r.Rectangular }),
	intField[*Raster]("Horizontal step", func(r *Raster) *int { return &r.DX }),
	intField[*Raster]("Vertical step", func(r *Raster) *int { return &r.DY }),
	elementField[*Raster]("Element", func(r *Raster) *cave.Element { return &r.Element }),
)

func init() {
	Register(TagRaster, func() cave.Object { return &Raster{} })
}

func NewRaster(p1, p2 cave.Coordinate, dx, dy int, e cave.Element) *Raster {
	return &Raster{Rectangular: Rectangular{P1: p1, P2: p2}, DX: dx, DY: dy, Element: e}
}

func (r *Raster) Tag() string { return TagRaster }

func (r *Raster) Clone() cave.Object {
	c := *r
	return &c
}

// Draw treats a step below 1 as 1, so a zero step degenerates to a filled
// box rather than an infinite loop.
func (r *Raster) Draw(g *cave.Rendered) {
	dx, dy := r.DX, r.DY
	if dx < 1 {
		dx = 1
	}
	if dy < 1 {
		dy = 1
	}
	x1, y1, x2, y2 := r.Bounds()
	for y := y1; y <= y2; y += dy {
		for x := x1; x <= x2; x += dx {
			g.Set(cave.Coordinate{X: x, Y: y}, r.Element)
		}
	}
}

func (r *Raster) Encode() string { return encode(r) }

func (r *Raster) Fields() []cave.Field { return rasterFields }

func (r *Raster) CharacteristicElement() cave.Element { return r.Element }
