package gadget

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorPicker shows the current color as a swatch with its hex value beside
// it and opens the host's native color dialog on click. Changed fires when
// the dialog returns a different color.
type ColorPicker struct {
	R        image.Rectangle
	Value    color.RGBA
	Disabled bool
	Changed  func(c color.RGBA)

	m Mouse
}

var _ UI = &ColorPicker{}

func (ui *ColorPicker) Draw(env *Env, m Mouse) {
	disabled := ui.Disabled || env.Picker == nil
	colors := env.colors(disabled, m.In(ui.R))
	env.Canvas.FillRect(ui.R, ui.Value)
	env.Canvas.StrokeRect(ui.R, colors.Border)
	p := image.Pt(ui.R.Max.X+env.Pad.X, ui.R.Min.Y+(ui.R.Dy()-env.Canvas.LineHeight())/2)
	env.Canvas.Text(p, hexColor(ui.Value), colors.Text)
}

func (ui *ColorPicker) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled || env.Picker == nil {
		return
	}
	if m.In(ui.R) && prev.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 {
		r.Consumed = true
		env.Picker.Pick(ui.Value, func(c color.RGBA, ok bool) {
			if !ok || c == ui.Value {
				return
			}
			ui.Value = c
			if ui.Changed != nil {
				ui.Changed(c)
			}
		})
	}
	return
}

func (ui *ColorPicker) Key(env *Env, k rune) (r Result) {
	return
}

func hexColor(c color.RGBA) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cc.Hex()
}
