// Package generator runs a tengo script that builds a cave's object list.
// Scripts call shape builtins in draw order, so a generated cave renders the
// same way a hand-written caveset does:
//
//	size(40, 22)
//	name("scripted")
//	fill_rect(0, 0, 39, 21, "STEELWALL", "DIRT")
//	for i := 0; i < 5; i++ {
//		point(3 + i*7, 10, "DIAMOND")
//	}
package generator

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/object"
)

const (
	defaultWidth  = 40
	defaultHeight = 22
)

// Run executes a generation script and returns the cave it built.
func Run(src []byte) (*cave.Cave, error) {
	c := cave.NewCave("generated", defaultWidth, defaultHeight)

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	builtins := map[string]tengo.CallableFunc{
		"name": func(args ...tengo.Object) (tengo.Object, error) {
			s, err := stringArg("name", args, 0)
			if err != nil {
				return nil, err
			}
			c.Name = s
			return tengo.UndefinedValue, nil
		},
		"size": func(args ...tengo.Object) (tengo.Object, error) {
			ints, err := intArgs("size", args, 2)
			if err != nil {
				return nil, err
			}
			if ints[0] <= 0 || ints[1] <= 0 {
				return nil, fmt.Errorf("size: want positive dimensions, got %d %d", ints[0], ints[1])
			}
			c.Width, c.Height = ints[0], ints[1]
			return tengo.UndefinedValue, nil
		},
		"point": func(args ...tengo.Object) (tengo.Object, error) {
			ints, err := intArgs("point", args, 2)
			if err != nil {
				return nil, err
			}
			e, err := elementArg("point", args, 2)
			if err != nil {
				return nil, err
			}
			c.AddObject(object.NewPoint(cave.Coordinate{X: ints[0], Y: ints[1]}, e))
			return tengo.UndefinedValue, nil
		},
		"line": func(args ...tengo.Object) (tengo.Object, error) {
			ints, err := intArgs("line", args, 4)
			if err != nil {
				return nil, err
			}
			e, err := elementArg("line", args, 4)
			if err != nil {
				return nil, err
			}
			c.AddObject(object.NewLine(
				cave.Coordinate{X: ints[0], Y: ints[1]},
				cave.Coordinate{X: ints[2], Y: ints[3]}, e))
			return tengo.UndefinedValue, nil
		},
		"rectangle": func(args ...tengo.Object) (tengo.Object, error) {
			ints, err := intArgs("rectangle", args, 4)
			if err != nil {
				return nil, err
			}
			e, err := elementArg("rectangle", args, 4)
			if err != nil {
				return nil, err
			}
			c.AddObject(object.NewRectangle(
				cave.Coordinate{X: ints[0], Y: ints[1]},
				cave.Coordinate{X: ints[2], Y: ints[3]}, e))
			return tengo.UndefinedValue, nil
		},
		"fill_rect": func(args ...tengo.Object) (tengo.Object, error) {
			ints, err := intArgs("fill_rect", args, 4)
			if err != nil {
				return nil, err
			}
			border, err := elementArg("fill_rect", args, 4)
			if err != nil {
				return nil, err
			}
			fill, err := elementArg("fill_rect", args, 5)
			if err != nil {
				return nil, err
			}
			c.AddObject(object.NewFillRect(
				cave.Coordinate{X: ints[0], Y: ints[1]},
				cave.Coordinate{X: ints[2], Y: ints[3]}, border, fill))
			return tengo.UndefinedValue, nil
		},
		"raster": func(args ...tengo.Object) (tengo.Object, error) {
			ints, err := intArgs("raster", args, 6)
			if err != nil {
				return nil, err
			}
			e, err := elementArg("raster", args, 6)
			if err != nil {
				return nil, err
			}
			c.AddObject(object.NewRaster(
				cave.Coordinate{X: ints[0], Y: ints[1]},
				cave.Coordinate{X: ints[2], Y: ints[3]},
				ints[4], ints[5], e))
			return tengo.UndefinedValue, nil
		},
	}
	for name, fn := range builtins {
		if err := script.Add(name, &tengo.UserFunction{Name: name, Value: fn}); err != nil {
			return nil, fmt.Errorf("generator: add builtin %s: %w", name, err)
		}
	}

	if _, err := script.Run(); err != nil {
		return nil, fmt.Errorf("generator: run script: %w", err)
	}
	return c, nil
}

func intArgs(fn string, args []tengo.Object, want int) ([]int, error) {
	if len(args) < want {
		return nil, fmt.Errorf("%s: want %d int args, got %d", fn, want, len(args))
	}
	out := make([]int, want)
	for i := 0; i < want; i++ {
		n, ok := tengo.ToInt(args[i])
		if !ok {
			return nil, fmt.Errorf("%s: arg %d: want int, got %s", fn, i+1, args[i].TypeName())
		}
		out[i] = n
	}
	return out, nil
}

func stringArg(fn string, args []tengo.Object, i int) (string, error) {
	if len(args) <= i {
		return "", fmt.Errorf("%s: missing arg %d", fn, i+1)
	}
	s, ok := tengo.ToString(args[i])
	if !ok {
		return "", fmt.Errorf("%s: arg %d: want string, got %s", fn, i+1, args[i].TypeName())
	}
	return s, nil
}

func elementArg(fn string, args []tengo.Object, i int) (cave.Element, error) {
	if len(args) <= i {
		return cave.ElemNone, fmt.Errorf("%s: missing element arg %d", fn, i+1)
	}
	s, ok := tengo.ToString(args[i])
	if !ok {
		return cave.ElemNone, fmt.Errorf("%s: arg %d: want element name, got %s", fn, i+1, args[i].TypeName())
	}
	e, ok := cave.ParseElement(s)
	if !ok {
		return cave.ElemNone, fmt.Errorf("%s: unknown element %q", fn, s)
	}
	return e, nil
}
