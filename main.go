package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/bdcff"
	"github.com/milk9111/boulders/caves"
	"github.com/milk9111/boulders/logger"
	"github.com/milk9111/boulders/palette"
)

func main() {
	setPath := flag.String("set", "", "caveset file (.bdcff); default is the embedded tutorial set")
	palettePath := flag.String("palette", "", "palette file overriding the built-in colors")
	caveIndex := flag.Int("cave", 0, "index of the cave to show first")
	flag.Parse()

	pal := palette.Default()
	if *palettePath != "" {
		p, err := palette.Load(*palettePath)
		if err != nil {
			log.Fatal(err)
		}
		pal = p
	}

	set, err := loadSet(*setPath)
	if err != nil {
		log.Fatal(err)
	}
	if len(set.Caves) == 0 {
		log.Fatal("caveset has no caves")
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("boulders")

	game := NewGame(set, *setPath, pal, *caveIndex)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadSet reads a caveset from disk, or the embedded tutorial set when no
// path is given. Diagnostics from the decode are printed but not fatal; a
// partially readable set is still worth showing.
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
