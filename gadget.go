package gadget

import (
	"image"
)

const (
	BorderSize = 1 // border thickness, all widgets
	Space      = 4 // default Env.Pad: padding between border and content
)

// Mouse button bitmask, devdraw-style. Button4 and Button5 are wheel up/down.
const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

// Control keys are delivered as runes, using the devdraw encoding: function
// keys live in the unicode private use area, the rest are their ASCII values.
// Hosts that read keys in another form translate to these.
const (
	KeyFn = '\uF000'

	KeyHome      = KeyFn | 0x0D
	KeyUp        = KeyFn | 0x0E
	KeyLeft      = KeyFn | 0x11
	KeyRight     = KeyFn | 0x12
	KeyDown      = 0x80
	KeyEnd       = KeyFn | 0x18
	KeyBackspace = 0x08
	KeyDelete    = 0x7F
	KeyEscape    = 0x1b
)

// Mouse is the pointer state delivered to widgets: absolute position in host
// coordinates and the currently held buttons. Widgets detect press/release
// edges by comparing against the previous Mouse they saw.
type Mouse struct {
	Point   image.Point
	Buttons int
}

// In reports whether the pointer is inside r.
func (m Mouse) In(r image.Rectangle) bool {
	return m.Point.In(r)
}

// Result is what widgets return from event handling.
type Result struct {
	Consumed bool // whether event was consumed, and should not be further handled by other UIs
	Redraw   bool // whether event needs a redraw after
}

// UI is the interface all widgets implement. Draw renders current state and
// must not change it. Mouse and Key handle one event each; the host calls
// them for every event, hit-testing is up to the widget.
type UI interface {
	Draw(env *Env, m Mouse)
	Mouse(env *Env, m Mouse) Result
	Key(env *Env, k rune) Result
}

// Group is a composite UI over a flat list of widgets.
//
// Mouse events go to every kid, not just until one consumes: widgets keep
// focus state from presses outside their own bounds, so all of them must see
// each event. Key events stop at the first consumer (the focused widget).
type Group struct {
	Kids []UI
}

var _ UI = &Group{}

func (ui *Group) Draw(env *Env, m Mouse) {
	for _, k := range ui.Kids {
		k.Draw(env, m)
	}
}

func (ui *Group) Mouse(env *Env, m Mouse) (r Result) {
	for _, k := range ui.Kids {
		kr := k.Mouse(env, m)
		r.Consumed = r.Consumed || kr.Consumed
		r.Redraw = r.Redraw || kr.Redraw
	}
	return
}

func (ui *Group) Key(env *Env, k rune) (r Result) {
	for _, kid := range ui.Kids {
		r = kid.Key(env, k)
		if r.Consumed {
			return
		}
	}
	return
}
