// Package object implements the drawable cave primitives and their
// line codec. Every variant registers a factory under its type tag; the
// encoder and parser are both driven by the variant's field descriptor
// table, so the wire order can never drift from the table order.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/boulders/cave"
)

var (
	factories = map[string]func() cave.Object{}
	tags      []string
)

// Register stores a variant factory by tag. Called from the variants'
// init functions.
func Register(tag string, factory func() cave.Object) {
	if tag == "" || factory == nil {
		return
	}
	if _, ok := factories[tag]; !ok {
		tags = append(tags, tag)
	}
	factories[tag] = factory
}

// Tags returns every registered type tag in registration order.
func Tags() []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// New returns a fresh zero-valued instance for a tag.
func New(tag string) (cave.Object, bool) {
	factory, ok := factories[tag]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Parse decodes one object line: a type tag followed by whitespace-separated
// field tokens. It returns ok=false for an unknown tag, a malformed token or
// a wrong token count; no partial object is ever returned.
func Parse(line string) (cave.Object, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, false
	}
	factory, ok := factories[parts[0]]
	if !ok {
		return nil, false
	}
	o := factory()
	if !decodeFields(o, parts[1:]) {
		return nil, false
	}
	return o, true
}

// tokenCount is how many line tokens a field of the given type consumes.
func tokenCount(t cave.FieldType) int {
	if t == cave.FieldCoordinate {
		return 2
	}
	return 1
}

// decodeFields fills o's fields from tokens, consuming exactly the count the
// descriptor table implies. Leftover or missing tokens fail the decode.
func decodeFields(o cave.Object, args []string) bool {
	i := 0
	for _, f := range o.Fields() {
		n := tokenCount(f.Type)
		if i+n > len(args) {
			return false
		}
		var v any
		switch f.Type {
		case cave.FieldCoordinate:
			x, errX := strconv.Atoi(args[i])
			y, errY := strconv.Atoi(args[i+1])
			if errX != nil || errY != nil {
				return false
			}
			v = cave.Coordinate{X: x, Y: y}
		case cave.FieldElement:
			e, ok := cave.ParseElement(args[i])
			if !ok {
				return false
			}
			v = e
		case cave.FieldInt:
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return false
			}
			v = n
		}
		if err := f.Set(o, v); err != nil {
			return false
		}
		i += tokenCount(f.Type)
	}
	return i == len(args)
}

// encode produces the canonical line for o from its descriptor table.
func encode(o cave.Object) string {
	var b strings.Builder
	b.WriteString(o.Tag())
	for _, f := range o.Fields() {
		b.WriteByte(' ')
		switch v := f.Get(o).(type) {
		case cave.Coordinate:
			b.WriteString(v.String())
		case cave.Element:
			b.WriteString(v.String())
		case int:
			b.WriteString(strconv.Itoa(v))
		}
	}
	return b.String()
}

// coordinateField builds a coordinate descriptor for variant T. ref returns
// the address of the field inside a concrete instance, which keeps the table
// itself free of per-instance state.
func coordinateField[T cave.Object](name string, ref func(T) *cave.Coordinate) cave.Field {
	return cave.Field{
		Name: name,
		Type: cave.FieldCoordinate,
		Get: func(o cave.Object) any {
			return *ref(o.(T))
		},
		Set: func(o cave.Object, v any) error {
			t, ok := o.(T)
			if !ok {
				return fmt.Errorf("object: field %s: wrong variant %T", name, o)
			}
			c, ok := v.(cave.Coordinate)
			if !ok {
				return fmt.Errorf("object: field %s: want coordinate, got %T", name, v)
			}
			*ref(t) = c
			return nil
		},
	}
}

func elementField[T cave.Object](name string, ref func(T) *cave.Element) cave.Field {
	return cave.Field{
		Name: name,
		Type: cave.FieldElement,
		Get: func(o cave.Object) any {
			return *ref(o.(T))
		},
		Set: func(o cave.Object, v any) error {
			t, ok := o.(T)
			if !ok {
				return fmt.Errorf("object: field %s: wrong variant %T", name, o)
			}
			e, ok := v.(cave.Element)
			if !ok {
				return fmt.Errorf("object: field %s: want element, got %T", name, v)
			}
			*ref(t) = e
			return nil
		},
	}
}

func intField[T cave.Object](name string, ref func(T) *int) cave.Field {
	return cave.Field{
		Name: name,
		Type: cave.FieldInt,
		Get: func(o cave.Object) any {
			return *ref(o.(T))
		},
		Set: func(o cave.Object, v any) error {
			t, ok := o.(T)
			if !ok {
				return fmt.Errorf("object: field %s: wrong variant %T", name, o)
			}
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("object: field %s: want int, got %T", name, v)
			}
			*ref(t) = n
			return nil
		},
	}
}
