package main

import (
	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/object"
)

// newDefaultObject returns a fresh instance of a registered variant with
// usable starting values: element fields get WALL instead of the none
// sentinel, coordinates land near the top-left so the new shape is visible,
// and int fields (raster steps) start at 1.
func newDefaultObject(tag string) (cave.Object, bool) {
	o, ok := object.New(tag)
	if !ok {
		return nil, false
	}
	coord := 0
	for _, f := range o.Fields() {
		switch f.Type {
		case cave.FieldCoordinate:
			// spread successive coordinate fields so two-corner shapes
			// don't collapse into a point
			c := cave.Coordinate{X: 2 + coord*4, Y: 2 + coord*3}
			coord++
			_ = f.Set(o, c)
		case cave.FieldElement:
			_ = f.Set(o, cave.ElemWall)
		case cave.FieldInt:
			_ = f.Set(o, 1)
		}
	}
	return o, true
}
