package gadget

import (
	"image"
	"math"
)

// Slider maps a horizontal drag position to a value in [Min, Max]. When Step
// is positive the value snaps to the nearest Min + k·Step. Changed fires only
// when the (snapped) value actually changes.
type Slider struct {
	R        image.Rectangle
	Min, Max float64
	Step     float64 // 0 means continuous
	Value    float64
	Disabled bool
	Changed  func(v float64)

	dragging bool
	m        Mouse
}

var _ UI = &Slider{}

func (ui *Slider) valueAt(x int) float64 {
	t := float64(x-ui.R.Min.X) / float64(ui.R.Dx())
	t = math.Max(0, math.Min(1, t))
	v := ui.Min + t*(ui.Max-ui.Min)
	if ui.Step > 0 {
		v = ui.Min + math.Round((v-ui.Min)/ui.Step)*ui.Step
	}
	return math.Max(ui.Min, math.Min(ui.Max, v))
}

func (ui *Slider) set(v float64) (changed bool) {
	if v == ui.Value {
		return false
	}
	ui.Value = v
	if ui.Changed != nil {
		ui.Changed(v)
	}
	return true
}

func (ui *Slider) Draw(env *Env, m Mouse) {
	colors := env.colors(ui.Disabled, m.In(ui.R))
	track := colors.Border
	fill := env.Accent
	if ui.Disabled {
		fill = colors.Border
	}

	midY := ui.R.Min.Y + ui.R.Dy()/2
	t := 0.0
	if ui.Max > ui.Min {
		t = (ui.Value - ui.Min) / (ui.Max - ui.Min)
	}
	knobX := ui.R.Min.X + int(t*float64(ui.R.Dx()))

	env.Canvas.Line(image.Pt(knobX, midY), image.Pt(ui.R.Max.X, midY), track)
	env.Canvas.Line(image.Pt(ui.R.Min.X, midY), image.Pt(knobX, midY), fill)

	side := ui.R.Dy() / 2
	knob := image.Rect(knobX-side/2, midY-side/2, knobX+side/2, midY+side/2)
	env.Canvas.FillRect(knob, colors.Background)
	env.Canvas.StrokeRect(knob, fill)
}

func (ui *Slider) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled {
		return
	}
	press := prev.Buttons&Button1 == 0 && m.Buttons&Button1 == Button1
	release := prev.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0
	switch {
	case press && m.In(ui.R):
		ui.dragging = true
		r.Consumed = true
		r.Redraw = ui.set(ui.valueAt(m.Point.X))
	case ui.dragging && release:
		ui.dragging = false
		r.Consumed = true
	case ui.dragging:
		r.Consumed = true
		r.Redraw = ui.set(ui.valueAt(m.Point.X))
	}
	return
}

func (ui *Slider) Key(env *Env, k rune) (r Result) {
	return
}
