package cave

// Element identifies a tile kind. The zero value is ElemNone, which marks
// an unset element field and never appears in a fully built object or grid.
type Element int

const (
	ElemNone Element = iota
	ElemSpace
	ElemDirt
	ElemWall
	ElemSteelWall
	ElemBoulder
	ElemDiamond
	ElemInbox
	ElemOutbox
	ElemFirefly
	ElemButterfly
	ElemAmoeba
	ElemMagicWall
	ElemSlime
	ElemExpandingWall
)

var elementNames = map[Element]string{
	ElemSpace:         "SPACE",
	ElemDirt:          "DIRT",
	ElemWall:          "WALL",
	ElemSteelWall:     "STEELWALL",
	ElemBoulder:       "BOULDER",
	ElemDiamond:       "DIAMOND",
	ElemInbox:         "INBOX",
	ElemOutbox:        "OUTBOX",
	ElemFirefly:       "FIREFLY",
	ElemButterfly:     "BUTTERFLY",
	ElemAmoeba:        "AMOEBA",
	ElemMagicWall:     "MAGICWALL",
	ElemSlime:         "SLIME",
	ElemExpandingWall: "EXPANDINGWALL",
}

var elementsByName = func() map[string]Element {
	m := make(map[string]Element, len(elementNames))
	for e, name := range elementNames {
		m[name] = e
	}
	return m
}()

// String returns the canonical file-format name of the element.
func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "NONE"
}

// ParseElement resolves a canonical element name. ElemNone is not parseable;
// it is a sentinel, not a tile.
func ParseElement(name string) (Element, bool) {
	e, ok := elementsByName[name]
	return e, ok
}

// Elements returns every tile element in declaration order.
func Elements() []Element {
	out := make([]Element, 0, len(elementNames))
	for e := ElemSpace; e <= ElemExpandingWall; e++ {
		out = append(out, e)
	}
	return out
}
