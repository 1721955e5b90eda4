package palette

import (
	"image/color"
	"testing"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/logger"
)

func TestDefaultCoversEveryElement(t *testing.T) {
	p := Default()
	for _, e := range cave.Elements() {
		entry := p.Entry(e)
		if entry.Rune == '?' {
			t.Errorf("element %v missing from the default palette", e)
		}
	}
}

func TestEntryFallback(t *testing.T) {
	p := &Palette{entries: map[cave.Element]Entry{}}
	entry := p.Entry(cave.ElemWall)
	if entry.Rune != '?' {
		t.Errorf("fallback rune %q", entry.Rune)
	}
	if entry.Color != (color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}) {
		t.Errorf("fallback color %v", entry.Color)
	}
}

func TestParseSkipsUnknownElements(t *testing.T) {
	l := logger.Push()
	defer logger.Pop()

	data := []byte(`
elements:
  - element: WALL
    rune: "#"
    color: "#808080"
  - element: LAVA
    rune: "~"
    color: "#ff0000"
`)
	p, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := p.Entry(cave.ElemWall).Rune; got != '#' {
		t.Errorf("wall rune %q", got)
	}
	if l.Empty() {
		t.Fatalf("unknown element was not logged")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{"nonsense", color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}},
		{"", color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}},
	}
	for _, c := range cases {
		if got := parseHexColor(c.in); got != c.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
