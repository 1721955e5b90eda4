// editor is a small cave editor: a canvas showing the rendered cave, an
// object list, and an attribute form built from each object's field
// descriptors, so new shape variants get editing support without any editor
// changes.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/bdcff"
	"github.com/milk9111/boulders/caves"
	"github.com/milk9111/boulders/logger"
	"github.com/milk9111/boulders/palette"
)

func main() {
	setPath := flag.String("set", "", "caveset file to edit; empty starts from the embedded tutorial set")
	outPath := flag.String("o", "", "save path; defaults to -set, or caves.bdcff")
	flag.Parse()

	set, err := loadSet(*setPath)
	if err != nil {
		log.Fatal(err)
	}
	if len(set.Caves) == 0 {
		set.Caves = append(set.Caves, cave.NewCave("new cave", 40, 22))
	}

	filename := *outPath
	if filename == "" {
		filename = *setPath
	}
	if filename == "" {
		filename = "caves.bdcff"
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("boulders editor")

	e := NewEditor(set, filename, palette.Default(), clipboardOK)
	if err := ebiten.RunGame(e); err != nil {
		log.Fatal(err)
	}
}

func loadSet(path string) (*cave.CaveSet, error) {
	l := logger.Push()
	defer func() {
		logger.Pop()
		if !l.Empty() {
			log.Printf("problems while loading:\n%s", l)
		}
	}()

	if path == "" {
		return caves.LoadCaveSetFromFS("tutorial.bdcff")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bdcff.Decode(data)
}
