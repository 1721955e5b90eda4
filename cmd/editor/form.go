package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/boulders/cave"
)

// rebuildForm replaces the attribute form with one row per descriptor of o.
// Values are committed on enter; a value that does not parse for the field's
// type is dropped and the input resets to the current value.
func (eui *editorUI) rebuildForm(o cave.Object) {
	eui.form.RemoveChildren()
	if o == nil {
		return
	}

	eui.form.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(o.Tag(), eui.fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	for _, f := range o.Fields() {
		f := f
		eui.form.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(f.Name, eui.fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
		))

		var input *widget.TextInput
		input = widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
				Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 120},
				Caret:    color.Black,
			}),
			widget.TextInputOpts.Face(eui.fontFace),
			widget.TextInputOpts.SubmitOnEnter(true),
			widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
				v, err := parseFieldValue(f.Type, args.InputText)
				if err == nil {
					err = f.Set(o, v)
				}
				if err != nil {
					input.SetText(fieldText(f, o))
					return
				}
				if eui.onObjectEdited != nil {
					eui.onObjectEdited()
				}
			}),
		)
		input.SetText(fieldText(f, o))
		eui.form.AddChild(input)
	}
}

func fieldText(f cave.Field, o cave.Object) string {
	switch v := f.Get(o).(type) {
	case cave.Coordinate:
		return v.String()
	case cave.Element:
		return v.String()
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

func parseFieldValue(t cave.FieldType, s string) (any, error) {
	switch t {
	case cave.FieldCoordinate:
		var x, y int
		if _, err := fmt.Sscanf(s, "%d %d", &x, &y); err != nil {
			return nil, fmt.Errorf("want two integers: %w", err)
		}
		return cave.Coordinate{X: x, Y: y}, nil
	case cave.FieldElement:
		e, ok := cave.ParseElement(s)
		if !ok {
			return nil, fmt.Errorf("unknown element %q", s)
		}
		return e, nil
	case cave.FieldInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, fmt.Errorf("unhandled field type %d", t)
}
