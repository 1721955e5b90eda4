package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/palette"
	"github.com/milk9111/boulders/watch"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// TileSize is the drawn size of one cave cell in pixels.
	TileSize = 24

	// gridTop keeps the tile grid clear of the status line.
	gridTop = TileSize
)

type Game struct {
	frames int

	set     *cave.CaveSet
	setPath string
	current int

	pal      *palette.Palette
	tiles    map[cave.Element]*ebiten.Image
	rendered *cave.Rendered

	watcher *watch.Watcher
}

func NewGame(set *cave.CaveSet, setPath string, pal *palette.Palette, current int) *Game {
	g := &Game{
		set:     set,
		setPath: setPath,
		pal:     pal,
		tiles:   map[cave.Element]*ebiten.Image{},
	}
	if current >= 0 && current < len(set.Caves) {
		g.current = current
	}
	g.rendered = g.set.Caves[g.current].Render()

	// watching only makes sense for a set that lives on disk
	if setPath != "" {
		w, err := watch.NewWatcher(setPath)
		if err != nil {
			log.Printf("watch %s: %v", setPath, err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.selectCave(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.selectCave(g.current - 1)
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			if reload {
				g.reload()
			}
			return
		}
	}
}

func (g *Game) reload() {
	set, err := loadSet(g.setPath)
	if err != nil {
		log.Printf("reload %s: %v", g.setPath, err)
		return
	}
	if len(set.Caves) == 0 {
		log.Printf("reload %s: caveset has no caves", g.setPath)
		return
	}
	g.set = set
	g.selectCave(g.current)
}

func (g *Game) selectCave(i int) {
	n := len(g.set.Caves)
	g.current = ((i % n) + n) % n
	g.rendered = g.set.Caves[g.current].Render()
}

func (g *Game) Draw(screen *ebiten.Image) {
	for y := 0; y < g.rendered.Height(); y++ {
		for x := 0; x < g.rendered.Width(); x++ {
			e := g.rendered.Get(cave.Coordinate{X: x, Y: y})
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*TileSize), float64(gridTop+y*TileSize))
			screen.DrawImage(g.tile(e), op)
		}
	}

	c := g.set.Caves[g.current]
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d/%d)    %d objects    FPS: %.2f",
		c.Name, g.current+1, len(g.set.Caves), len(c.Objects), ebiten.ActualFPS()))
}

// tile returns the cached solid-color image for an element, building it on
// first use from the palette.
func (g *Game) tile(e cave.Element) *ebiten.Image {
	if img, ok := g.tiles[e]; ok {
		return img
	}
	img := ebiten.NewImage(TileSize, TileSize)
	img.Fill(g.pal.Entry(e).Color)
	g.tiles[e] = img
	return img
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
