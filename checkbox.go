package gadget

import (
	"image"
)

// Checkbox is a toggle with an optional label. The box is a square sized from
// the line height at R.Min; Text draws beside it. Toggling on button-1
// release inside the box fires Changed with the new state.
type Checkbox struct {
	R        image.Rectangle // only Min is used; the box is square
	Text     string
	Checked  bool
	Disabled bool
	Changed  func(checked bool)

	m Mouse
}

var _ UI = &Checkbox{}

func (ui *Checkbox) box(env *Env) image.Rectangle {
	side := env.Canvas.LineHeight()
	return image.Rectangle{ui.R.Min, ui.R.Min.Add(image.Pt(side, side))}
}

func (ui *Checkbox) Draw(env *Env, m Mouse) {
	box := ui.box(env)
	hover := m.In(box)
	colors := env.colors(ui.Disabled, hover)
	env.Canvas.FillRect(box, colors.Background)
	env.Canvas.StrokeRect(box, colors.Border)

	if hover && !ui.Disabled && m.Buttons&Button1 == Button1 {
		box = box.Add(image.Pt(0, 1))
	}
	if ui.Checked {
		cr := box.Inset(box.Dx() / 5)
		p0 := image.Pt(cr.Min.X, cr.Min.Y+2*cr.Dy()/3)
		p1 := image.Pt(cr.Min.X+cr.Dx()/3, cr.Max.Y)
		p2 := image.Pt(cr.Max.X, cr.Min.Y)
		env.Canvas.Line(p0, p1, colors.Text)
		env.Canvas.Line(p1, p2, colors.Text)
	}
	if ui.Text != "" {
		env.Canvas.Text(image.Pt(box.Max.X+env.Pad.X, ui.R.Min.Y), ui.Text, colors.Text)
	}
}

func (ui *Checkbox) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled {
		return
	}
	box := ui.box(env)
	if m.In(box) && prev.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 {
		r.Consumed = true
		r.Redraw = true
		ui.Checked = !ui.Checked
		if ui.Changed != nil {
			ui.Changed(ui.Checked)
		}
	}
	return
}

func (ui *Checkbox) Key(env *Env, k rune) (r Result) {
	return
}
