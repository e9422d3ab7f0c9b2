package gadget

import (
	"image"
)

// Label draws a single line of text at P. It never handles events.
type Label struct {
	P    image.Point
	Text string
}

var _ UI = &Label{}

func (ui *Label) Draw(env *Env, m Mouse) {
	env.Canvas.Text(ui.P, ui.Text, env.Regular.Text)
}

func (ui *Label) Mouse(env *Env, m Mouse) (r Result) {
	return
}

func (ui *Label) Key(env *Env, k rune) (r Result) {
	return
}
