package caves

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/bdcff"
)

//go:embed *.bdcff
var CavesFS embed.FS

// LoadCaveSetFromFS decodes an embedded caveset by file name.
func LoadCaveSetFromFS(name string) (*cave.CaveSet, error) {
	data, err := fs.ReadFile(CavesFS, name)
	if err != nil {
		return nil, fmt.Errorf("read caveset: %w", err)
	}
	set, err := bdcff.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode caveset: %w", err)
	}
	return set, nil
}

// Names lists the embedded caveset files.
func Names() []string {
	entries, err := CavesFS.ReadDir(".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out
}
