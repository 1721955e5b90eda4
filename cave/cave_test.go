package cave

import "testing"

// stampObject writes one element at one cell; enough to observe draw order.
type stampObject struct {
	at Coordinate
	e  Element
}

func (s *stampObject) Tag() string                    { return "Stamp" }
func (s *stampObject) Clone() Object                  { c := *s; return &c }
func (s *stampObject) Draw(r *Rendered)               { r.Set(s.at, s.e) }
func (s *stampObject) Encode() string                 { return "Stamp" }
func (s *stampObject) Fields() []Field                { return nil }
func (s *stampObject) CharacteristicElement() Element { return s.e }

func TestCaveRenderOrder(t *testing.T) {
	c := NewCave("t", 3, 3)
	at := Coordinate{X: 1, Y: 1}
	c.AddObject(&stampObject{at: at, e: ElemDirt})
	c.AddObject(&stampObject{at: at, e: ElemDiamond})

	r := c.Render()
	if got := r.Get(at); got != ElemDiamond {
		t.Fatalf("later object should win: got %v, want DIAMOND", got)
	}
}

func TestCaveRemoveObject(t *testing.T) {
	c := NewCave("t", 3, 3)
	a := &stampObject{at: Coordinate{X: 0, Y: 0}, e: ElemWall}
	b := &stampObject{at: Coordinate{X: 1, Y: 1}, e: ElemDirt}
	c.AddObject(a)
	c.AddObject(b)

	c.RemoveObject(0)
	if len(c.Objects) != 1 || c.Objects[0] != Object(b) {
		t.Fatalf("expected only second object to remain")
	}

	// out of range is ignored
	c.RemoveObject(5)
	c.RemoveObject(-1)
	if len(c.Objects) != 1 {
		t.Fatalf("out-of-range removal changed the list")
	}
}

func TestCaveCloneIsDeep(t *testing.T) {
	c := NewCave("t", 3, 3)
	orig := &stampObject{at: Coordinate{X: 2, Y: 2}, e: ElemWall}
	c.AddObject(orig)

	clone := c.Clone()
	clone.Objects[0].(*stampObject).e = ElemDiamond

	if orig.e != ElemWall {
		t.Fatalf("mutating the clone changed the original")
	}
	if got := clone.Objects[0].(*stampObject).e; got != ElemDiamond {
		t.Fatalf("clone mutation lost: got %v", got)
	}
}
