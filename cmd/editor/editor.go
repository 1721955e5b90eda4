package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/bdcff"
	"github.com/milk9111/boulders/palette"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	cellSize = 16

	// canvas placement between the two panels
	canvasX = 240
	canvasY = 56
)

type Editor struct {
	set      *cave.CaveSet
	filename string

	caveIdx  int
	selected int // index into the current cave's objects, -1 for none

	pal      *palette.Palette
	tiles    map[cave.Element]*ebiten.Image
	rendered *cave.Rendered

	ui          *editorUI
	status      string
	clipboardOK bool
}

func NewEditor(set *cave.CaveSet, filename string, pal *palette.Palette, clipboardOK bool) *Editor {
	e := &Editor{
		set:         set,
		filename:    filename,
		selected:    -1,
		pal:         pal,
		tiles:       map[cave.Element]*ebiten.Image{},
		clipboardOK: clipboardOK,
	}
	e.ui = buildUI(e)
	e.rerender()
	e.ui.refreshObjects(e.cave(), e.selected)
	return e
}

func (e *Editor) cave() *cave.Cave {
	return e.set.Caves[e.caveIdx]
}

func (e *Editor) selectedObject() cave.Object {
	c := e.cave()
	if e.selected < 0 || e.selected >= len(c.Objects) {
		return nil
	}
	return c.Objects[e.selected]
}

// rerender rebuilds the cached grid after any object change.
func (e *Editor) rerender() {
	e.rendered = e.cave().Render()
}

// objectChanged is the attribute form's commit hook.
func (e *Editor) objectChanged() {
	e.rerender()
	e.ui.refreshObjects(e.cave(), e.selected)
}

func (e *Editor) selectObject(i int) {
	c := e.cave()
	if i < 0 || i >= len(c.Objects) {
		e.selected = -1
	} else {
		e.selected = i
	}
	e.ui.rebuildForm(e.selectedObject())
}

func (e *Editor) selectCave(i int) {
	n := len(e.set.Caves)
	e.caveIdx = ((i % n) + n) % n
	e.selected = -1
	e.rerender()
	e.ui.refreshObjects(e.cave(), e.selected)
	e.ui.rebuildForm(nil)
}

func (e *Editor) addObject(tag string) {
	o, ok := newDefaultObject(tag)
	if !ok {
		e.status = fmt.Sprintf("unknown object type %q", tag)
		return
	}
	c := e.cave()
	c.AddObject(o)
	e.selected = len(c.Objects) - 1
	e.objectChanged()
	e.ui.rebuildForm(o)
	e.status = fmt.Sprintf("added %s", tag)
}

func (e *Editor) duplicateSelected() {
	o := e.selectedObject()
	if o == nil {
		return
	}
	c := e.cave()
	c.AddObject(o.Clone())
	e.selected = len(c.Objects) - 1
	e.objectChanged()
	e.ui.rebuildForm(e.selectedObject())
	e.status = "duplicated"
}

func (e *Editor) deleteSelected() {
	if e.selected < 0 {
		return
	}
	c := e.cave()
	c.RemoveObject(e.selected)
	e.selected = -1
	e.objectChanged()
	e.ui.rebuildForm(nil)
	e.status = "deleted"
}

func (e *Editor) copySelected() {
	o := e.selectedObject()
	if o == nil {
		return
	}
	if !e.clipboardOK {
		e.status = "clipboard unavailable"
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(o.Encode()))
	e.status = fmt.Sprintf("copied %q", o.Encode())
}

func (e *Editor) save() {
	if err := os.WriteFile(e.filename, bdcff.Encode(e.set), 0644); err != nil {
		e.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	e.status = fmt.Sprintf("saved %s", e.filename)
}

func (e *Editor) Update() error {
	e.ui.ui.Update()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyD):
		e.duplicateSelected()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.copySelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		e.deleteSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		e.selectCave(e.caveIdx + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		e.selectCave(e.caveIdx - 1)
	}
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 24, 255})

	for y := 0; y < e.rendered.Height(); y++ {
		for x := 0; x < e.rendered.Width(); x++ {
			el := e.rendered.Get(cave.Coordinate{X: x, Y: y})
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(canvasX+x*cellSize), float64(canvasY+y*cellSize))
			screen.DrawImage(e.tile(el), op)
		}
	}

	e.drawSelectionMarkers(screen)

	c := e.cave()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d/%d)  %d objects    %s",
		c.Name, e.caveIdx+1, len(e.set.Caves), len(c.Objects), e.status))

	e.ui.ui.Draw(screen)
}

// drawSelectionMarkers outlines every coordinate field of the selected
// object. The markers come from the descriptor table, so they work for any
// variant without knowing its shape.
func (e *Editor) drawSelectionMarkers(screen *ebiten.Image) {
	o := e.selectedObject()
	if o == nil {
		return
	}
	marker := color.RGBA{255, 255, 0, 255}
	for _, f := range o.Fields() {
		if f.Type != cave.FieldCoordinate {
			continue
		}
		c, ok := f.Get(o).(cave.Coordinate)
		if !ok {
			continue
		}
		vector.StrokeRect(screen,
			float32(canvasX+c.X*cellSize), float32(canvasY+c.Y*cellSize),
			cellSize, cellSize, 2, marker, false)
	}
}

func (e *Editor) tile(el cave.Element) *ebiten.Image {
	if img, ok := e.tiles[el]; ok {
		return img
	}
	img := ebiten.NewImage(cellSize, cellSize)
	img.Fill(e.pal.Entry(el).Color)
	e.tiles[el] = img
	return img
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
