package cave

// Cave is one level: a grid size plus the ordered object list that produces
// its tiles. The cave owns its objects exclusively; objects never refer back
// to the cave or to each other.
type Cave struct {
	Name    string
	Width   int
	Height  int
	Objects []Object
}

// NewCave returns an empty cave of the given size.
func NewCave(name string, w, h int) *Cave {
	return &Cave{Name: name, Width: w, Height: h}
}

// AddObject appends o to the draw sequence.
func (c *Cave) AddObject(o Object) {
	c.Objects = append(c.Objects, o)
}

// RemoveObject drops the object at index i. Out-of-range indexes are
// ignored.
func (c *Cave) RemoveObject(i int) {
	if i < 0 || i >= len(c.Objects) {
		return
	}
	c.Objects = append(c.Objects[:i], c.Objects[i+1:]...)
}

// Render draws every object in sequence order into a fresh grid. Later
// objects overwrite earlier ones where they overlap.
func (c *Cave) Render() *Rendered {
	r := NewRendered(c.Width, c.Height)
	for _, o := range c.Objects {
		o.Draw(r)
	}
	return r
}

// Clone deep-copies the cave, cloning every object.
func (c *Cave) Clone() *Cave {
	out := &Cave{Name: c.Name, Width: c.Width, Height: c.Height}
	if c.Objects != nil {
		out.Objects = make([]Object, len(c.Objects))
		for i, o := range c.Objects {
			out.Objects[i] = o.Clone()
		}
	}
	return out
}

// CaveSet is an ordered collection of caves loaded from one file.
type CaveSet struct {
	Name  string
	Caves []*Cave
}
