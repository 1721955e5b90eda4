package cave

import "testing"

func TestElementNamesRoundTrip(t *testing.T) {
	for _, e := range Elements() {
		name := e.String()
		if name == "NONE" {
			t.Fatalf("element %d has no canonical name", e)
		}
		parsed, ok := ParseElement(name)
		if !ok {
			t.Fatalf("ParseElement(%q) failed", name)
		}
		if parsed != e {
			t.Fatalf("ParseElement(%q) = %v, want %v", name, parsed, e)
		}
	}
}

func TestParseElementRejects(t *testing.T) {
	cases := []string{"", "NONE", "wall", "WALL ", "LAVA"}
	for _, name := range cases {
		if e, ok := ParseElement(name); ok {
			t.Errorf("ParseElement(%q) = %v, want failure", name, e)
		}
	}
}
