package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/object"
)

type objectEntry struct {
	Index int
	Label string
}

type editorUI struct {
	ui       *ebitenui.UI
	fontFace *text.Face

	objectList *widget.List
	form       *widget.Container

	// called after a form input commits a valid field value
	onObjectEdited func()

	// set while refreshObjects replaces entries, so the selection handler
	// can tell a programmatic change from a user click
	suppressSelect bool
}

func buildUI(e *Editor) *editorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	eui := &editorUI{ui: ui, fontFace: &fontFace}
	eui.onObjectEdited = e.objectChanged

	leftPanel := eui.buildObjectPanel(e)
	rightPanel := eui.buildFormPanel()
	toolbar := eui.buildToolBar(e)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel)
	root.AddChild(rightPanel)
	root.AddChild(toolbar)

	ui.Container = root
	return eui
}

func (eui *editorUI) buildObjectPanel(e *Editor) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 0)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Objects", eui.fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	eui.objectList = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(entry any) string {
			if oe, ok := entry.(objectEntry); ok {
				return oe.Label
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if eui.suppressSelect {
				return
			}
			if oe, ok := args.Entry.(objectEntry); ok {
				e.selectObject(oe.Index)
			}
		}),
	)
	panel.AddChild(eui.objectList)
	return panel
}

func (eui *editorUI) buildFormPanel() *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 0)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Attributes", eui.fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	eui.form = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	panel.AddChild(eui.form)
	return panel
}

func (eui *editorUI) buildToolBar(e *Editor) *widget.Container {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 48)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
		)),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	// one add-button per registered variant; new shape types show up here
	// without editor changes
	for _, tag := range object.Tags() {
		tag := tag
		toolbar.AddChild(eui.newToolButton("+ "+tag, func() { e.addObject(tag) }))
	}
	toolbar.AddChild(eui.newToolButton("Duplicate", e.duplicateSelected))
	toolbar.AddChild(eui.newToolButton("Delete", e.deleteSelected))
	toolbar.AddChild(eui.newToolButton("Copy", e.copySelected))
	toolbar.AddChild(eui.newToolButton("Save", e.save))
	return toolbar
}

func (eui *editorUI) newToolButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(eui.ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, eui.fontFace, &widget.ButtonTextColor{
			Idle:    color.Black,
			Hover:   color.Black,
			Pressed: color.RGBA{0, 0, 200, 255},
		}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(48, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// refreshObjects replaces the object list entries from the cave.
func (eui *editorUI) refreshObjects(c *cave.Cave, selected int) {
	entries := make([]any, len(c.Objects))
	for i, o := range c.Objects {
		entries[i] = objectEntry{
			Index: i,
			Label: fmt.Sprintf("%d. %s (%s)", i+1, o.Tag(), o.CharacteristicElement()),
		}
	}
	eui.suppressSelect = true
	eui.objectList.SetEntries(entries)
	if selected >= 0 && selected < len(entries) {
		eui.objectList.SetSelectedEntry(entries[selected])
	}
	eui.suppressSelect = false
}
