package cave

// Rendered is the mutable grid a cave's objects draw into. Cells are stored
// row-major. All accessors clip silently: writing outside the grid is a
// no-op and reading outside it yields SPACE.
type Rendered struct {
	width  int
	height int
	cells  []Element
}

// NewRendered returns a w×h grid filled with SPACE.
func NewRendered(w, h int) *Rendered {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r := &Rendered{
		width:  w,
		height: h,
		cells:  make([]Element, w*h),
	}
	r.Fill(ElemSpace)
	return r
}

func (r *Rendered) Width() int  { return r.width }
func (r *Rendered) Height() int { return r.height }

func (r *Rendered) contains(c Coordinate) bool {
	return c.X >= 0 && c.X < r.width && c.Y >= 0 && c.Y < r.height
}

// Set writes an element at c. Out-of-bounds coordinates are ignored.
func (r *Rendered) Set(c Coordinate, e Element) {
	if !r.contains(c) {
		return
	}
	r.cells[c.Y*r.width+c.X] = e
}

// Get reads the element at c, or SPACE when c is outside the grid.
func (r *Rendered) Get(c Coordinate) Element {
	if !r.contains(c) {
		return ElemSpace
	}
	return r.cells[c.Y*r.width+c.X]
}

// Fill overwrites every cell with e.
func (r *Rendered) Fill(e Element) {
	for i := range r.cells {
		r.cells[i] = e
	}
}
