// Package palette maps cave elements to display runes and colors. The
// default palette is embedded; a palette file on disk can override it so the
// look is tweakable without rebuilding.
package palette

import (
	"embed"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/logger"
)

//go:embed palette.yaml
var paletteFS embed.FS

// Entry is how one element is displayed: a single rune for text output and
// a fill color for tile output.
type Entry struct {
	Rune  rune
	Color color.RGBA
}

type Palette struct {
	entries map[cave.Element]Entry
}

type fileEntry struct {
	Element string `yaml:"element"`
	Rune    string `yaml:"rune"`
	Color   string `yaml:"color"`
}

type file struct {
	Elements []fileEntry `yaml:"elements"`
}

// Default loads the embedded palette.
func Default() *Palette {
	data, err := paletteFS.ReadFile("palette.yaml")
	if err != nil {
		// embedded file, can only fail if the build is broken
		panic(fmt.Sprintf("palette: embedded palette: %v", err))
	}
	p, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("palette: embedded palette: %v", err))
	}
	return p
}

// Load reads a palette file from disk.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: load %s: %w", path, err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("palette: parse %s: %w", path, err)
	}
	return p, nil
}

// parse builds a palette, logging and skipping entries naming unknown
// elements so an old palette file keeps working after the element set grows.
func parse(data []byte) (*Palette, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	p := &Palette{entries: make(map[cave.Element]Entry, len(f.Elements))}
	for _, fe := range f.Elements {
		e, ok := cave.ParseElement(fe.Element)
		if !ok {
			logger.Warningf("palette: unknown element %q", fe.Element)
			continue
		}
		r := '?'
		for _, c := range fe.Rune {
			r = c
			break
		}
		p.entries[e] = Entry{Rune: r, Color: parseHexColor(fe.Color)}
	}
	return p, nil
}

// Entry returns the display entry for an element. Elements missing from the
// palette get a magenta '?' so they are loud on screen instead of invisible.
func (p *Palette) Entry(e cave.Element) Entry {
	if entry, ok := p.entries[e]; ok {
		return entry
	}
	return Entry{Rune: '?', Color: color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}}
}

func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x00, 0x00, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
