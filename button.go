package gadget

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Button is a clickable push button. Click fires on button-1 release inside
// the bounds: pressing and dragging out cancels.
//
// Fill, when set, overrides the palette background; the label color is then
// picked automatically for contrast against it.
type Button struct {
	R        image.Rectangle
	Text     string
	Fill     color.RGBA // zero value means palette background
	Disabled bool
	Click    func()

	m Mouse
}

var _ UI = &Button{}

func (ui *Button) Draw(env *Env, m Mouse) {
	hover := m.In(ui.R)
	colors := env.colors(ui.Disabled, hover)
	bg, fg, border := colors.Background, colors.Text, colors.Border
	if ui.Fill != (color.RGBA{}) && !ui.Disabled {
		bg = ui.Fill
		fg = contrastText(ui.Fill)
		border = ui.Fill
	}
	env.Canvas.FillRect(ui.R, bg)
	env.Canvas.StrokeRect(ui.R, border)

	p := image.Pt(
		ui.R.Min.X+(ui.R.Dx()-env.Canvas.TextWidth(ui.Text))/2,
		ui.R.Min.Y+(ui.R.Dy()-env.Canvas.LineHeight())/2,
	)
	if hover && !ui.Disabled && m.Buttons&Button1 == Button1 {
		p = p.Add(image.Pt(0, 1))
	}
	env.Canvas.Text(p, ui.Text, fg)
}

func (ui *Button) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled {
		return
	}
	if prev.Buttons&Button1 != m.Buttons&Button1 && (prev.In(ui.R) || m.In(ui.R)) {
		r.Redraw = true
	}
	if prev.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 && m.In(ui.R) {
		r.Consumed = true
		if ui.Click != nil {
			ui.Click()
		}
	}
	return
}

func (ui *Button) Key(env *Env, k rune) (r Result) {
	return
}

// contrastText picks a readable label color for bg: white on dark fills,
// near-black on light ones, by relative luminance.
func contrastText(bg color.RGBA) color.RGBA {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return rgba(0x333333ff)
	}
	if _, y, _ := c.Xyz(); y < 0.5 {
		return rgba(0xffffffff)
	}
	return rgba(0x333333ff)
}
