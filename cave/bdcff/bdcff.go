// Package bdcff reads and writes the line-oriented caveset format: section
// markers in brackets, Name/Size header lines, and one object per line
// inside an [objects] section.
package bdcff

import (
	"fmt"
	"strings"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/object"
	"github.com/milk9111/boulders/logger"
)

// Decode parses a whole caveset. Malformed object lines are reported to the
// active logger and skipped; a cave missing a valid Size line is an error,
// because nothing after it could be placed.
func Decode(data []byte) (*cave.CaveSet, error) {
	set := &cave.CaveSet{}
	var current *cave.Cave
	inObjects := false

	for n, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		switch {
		case line == "[caveset]" || line == "[/caveset]":
			// outer frame is optional; nothing to track

		case line == "[cave]":
			if current != nil {
				return nil, fmt.Errorf("bdcff: line %d: [cave] inside another cave", n+1)
			}
			current = &cave.Cave{}

		case line == "[/cave]":
			if current == nil {
				return nil, fmt.Errorf("bdcff: line %d: [/cave] without [cave]", n+1)
			}
			if current.Width <= 0 || current.Height <= 0 {
				return nil, fmt.Errorf("bdcff: cave %q has no valid Size", current.Name)
			}
			set.Caves = append(set.Caves, current)
			current = nil
			inObjects = false

		case line == "[objects]":
			if current == nil {
				return nil, fmt.Errorf("bdcff: line %d: [objects] outside a cave", n+1)
			}
			inObjects = true

		case line == "[/objects]":
			inObjects = false

		case inObjects:
			o, ok := object.Parse(line)
			if !ok {
				logger.Warningf("unreadable object line %d: %q", n+1, line)
				continue
			}
			current.AddObject(o)

		case strings.HasPrefix(line, "Name="):
			name := strings.TrimPrefix(line, "Name=")
			if current != nil {
				current.Name = name
			} else {
				set.Name = name
			}

		case strings.HasPrefix(line, "Size="):
			if current == nil {
				logger.Warningf("ignoring Size outside a cave at line %d", n+1)
				continue
			}
			var w, h int
			if _, err := fmt.Sscanf(strings.TrimPrefix(line, "Size="), "%d %d", &w, &h); err != nil || w <= 0 || h <= 0 {
				return nil, fmt.Errorf("bdcff: line %d: bad Size %q", n+1, line)
			}
			current.Width, current.Height = w, h

		default:
			logger.Warningf("ignoring unknown line %d: %q", n+1, line)
		}
	}

	if current != nil {
		return nil, fmt.Errorf("bdcff: cave %q is not closed", current.Name)
	}
	return set, nil
}

// Encode writes the canonical text form. Decode(Encode(s)) reproduces s.
func Encode(set *cave.CaveSet) []byte {
	var b strings.Builder
	b.WriteString("[caveset]\n")
	if set.Name != "" {
		fmt.Fprintf(&b, "Name=%s\n", set.Name)
	}
	for _, c := range set.Caves {
		b.WriteString("[cave]\n")
		if c.Name != "" {
			fmt.Fprintf(&b, "Name=%s\n", c.Name)
		}
		fmt.Fprintf(&b, "Size=%d %d\n", c.Width, c.Height)
		b.WriteString("[objects]\n")
		for _, o := range c.Objects {
			b.WriteString(o.Encode())
			b.WriteByte('\n')
		}
		b.WriteString("[/objects]\n")
		b.WriteString("[/cave]\n")
	}
	b.WriteString("[/caveset]\n")
	return []byte(b.String())
}
