package gadget

import (
	"image"
)

// Radio is a group of mutually exclusive options, laid out as rows growing
// down from R.Min. Selecting an option on button-1 release fires Changed with
// its index and text, only when the selection actually changes. Set Selected
// to -1 for no initial selection.
type Radio struct {
	R        image.Rectangle // only Min is used; rows grow downward
	Options  []string
	Selected int
	Disabled bool
	Changed  func(index int, option string)

	m Mouse
}

var _ UI = &Radio{}

func (ui *Radio) rowHeight(env *Env) int {
	return env.Canvas.LineHeight() + env.Pad.Y
}

// findIndex returns the option row under the pointer, or -1.
func (ui *Radio) findIndex(env *Env, p image.Point) int {
	rh := ui.rowHeight(env)
	for i, opt := range ui.Options {
		w := rh + env.Pad.X + env.Canvas.TextWidth(opt)
		r := image.Rect(ui.R.Min.X, ui.R.Min.Y+i*rh, ui.R.Min.X+w, ui.R.Min.Y+(i+1)*rh)
		if p.In(r) {
			return i
		}
	}
	return -1
}

func (ui *Radio) Draw(env *Env, m Mouse) {
	rh := ui.rowHeight(env)
	lh := env.Canvas.LineHeight()
	radius := lh / 2
	for i, opt := range ui.Options {
		hover := !ui.Disabled && ui.findIndex(env, m.Point) == i
		colors := env.colors(ui.Disabled, hover)
		center := image.Pt(ui.R.Min.X+radius, ui.R.Min.Y+i*rh+rh/2)
		env.Canvas.Ellipse(center, radius, radius, colors.Border, false)
		if i == ui.Selected {
			dot := env.Accent
			if ui.Disabled {
				dot = colors.Border
			}
			env.Canvas.Ellipse(center, radius/2, radius/2, dot, true)
		}
		env.Canvas.Text(image.Pt(ui.R.Min.X+2*radius+env.Pad.X, ui.R.Min.Y+i*rh+(rh-lh)/2), opt, colors.Text)
	}
}

func (ui *Radio) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled {
		return
	}
	if prev.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 {
		i := ui.findIndex(env, m.Point)
		if i < 0 {
			return
		}
		r.Consumed = true
		if i == ui.Selected {
			return
		}
		ui.Selected = i
		r.Redraw = true
		if ui.Changed != nil {
			ui.Changed(i, ui.Options[i])
		}
	}
	return
}

func (ui *Radio) Key(env *Env, k rune) (r Result) {
	return
}
