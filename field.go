package gadget

import (
	"image"
	"time"
)

// Field is a single-line text input.
//
// A click inside focuses it and places the cursor; newline commits (fires
// Commit and drops focus), escape cancels (drops focus without Commit), and a
// click outside drops focus. While unfocused all keys are ignored. Up/down
// are ignored: there is only one line, a newline never splits it.
type Field struct {
	R           image.Rectangle
	Placeholder string
	Disabled    bool
	Changed     func(text string) // per edit
	Commit      func(text string) // on the commit key

	b         *Buffer
	offset    int // horizontal scroll in pixels, >= 0
	focus     bool
	focusTime time.Time
	m         Mouse
}

var _ UI = &Field{}

func (ui *Field) buf() *Buffer {
	if ui.b == nil {
		ui.b = NewBuffer("")
		ui.b.Changed = func(s string) {
			if ui.Changed != nil {
				ui.Changed(s)
			}
		}
	}
	return ui.b
}

// Text returns the current contents.
func (ui *Field) Text() string {
	return ui.buf().Text()
}

// SetText replaces the contents, cursor to the end.
func (ui *Field) SetText(s string) {
	ui.buf().SetText(s)
}

// Focused reports whether the field has keyboard focus.
func (ui *Field) Focused() bool {
	return ui.focus
}

func (ui *Field) content(env *Env) image.Rectangle {
	return env.inset(ui.R)
}

func (ui *Field) caretX(env *Env) int {
	b := ui.buf()
	_, col := b.Cursor()
	return env.Canvas.TextWidth(string([]rune(b.Line(0))[:col]))
}

func (ui *Field) scrollToCaret(env *Env) {
	ui.offset = clampFieldOffset(ui.offset, ui.caretX(env), ui.content(env).Dx())
}

func (ui *Field) Draw(env *Env, m Mouse) {
	b := ui.buf()
	colors := env.colors(ui.Disabled, m.In(ui.R))
	border := colors.Border
	if ui.focus {
		border = env.Accent
	}
	env.Canvas.FillRect(ui.R, colors.Background)
	env.Canvas.StrokeRect(ui.R, border)

	c := ui.content(env)
	if b.Line(0) == "" && !ui.focus && ui.Placeholder != "" {
		env.Canvas.Text(c.Min, ui.Placeholder, env.Placeholder.Text)
		return
	}
	env.Canvas.Text(image.Pt(c.Min.X-ui.offset, c.Min.Y), b.Line(0), colors.Text)

	if ui.focus && (env.now().Sub(ui.focusTime)/blinkInterval)%2 == 0 {
		x := c.Min.X + ui.caretX(env) - ui.offset
		env.Canvas.Line(image.Pt(x, c.Min.Y), image.Pt(x, c.Min.Y+env.Canvas.LineHeight()-1), colors.Text)
	}
}

func (ui *Field) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled {
		return
	}
	if prev.Buttons&Button1 == 0 && m.Buttons&Button1 == Button1 {
		if m.In(ui.R) {
			ui.focus = true
			ui.focusTime = env.now()
			b := ui.buf()
			col := columnAt(env.Canvas.TextWidth, []rune(b.Line(0)), m.Point.X-ui.content(env).Min.X+ui.offset)
			b.SetCursor(0, col)
			ui.scrollToCaret(env)
			r.Consumed = true
			r.Redraw = true
		} else if ui.focus {
			ui.focus = false
			r.Redraw = true
		}
	}
	return
}

func (ui *Field) Key(env *Env, k rune) (r Result) {
	if ui.Disabled || !ui.focus {
		return
	}
	b := ui.buf()
	r.Consumed = true
	r.Redraw = true
	ui.focusTime = env.now()
	switch k {
	case '\n':
		ui.focus = false
		if ui.Commit != nil {
			ui.Commit(b.Text())
		}
		return
	case KeyEscape:
		ui.focus = false
		return
	case KeyLeft:
		b.MoveLeft()
	case KeyRight:
		b.MoveRight()
	case KeyHome:
		b.MoveLineStart()
	case KeyEnd:
		b.MoveLineEnd()
	case KeyBackspace:
		b.DeleteBackward()
	case KeyDelete:
		b.DeleteForward()
	case KeyUp, KeyDown:
		r.Consumed = false
		r.Redraw = false
		return
	default:
		if k < ' ' || (k >= KeyFn && k <= KeyFn|0xFF) {
			r.Consumed = false
			r.Redraw = false
			return
		}
		b.InsertRune(k)
	}
	ui.scrollToCaret(env)
	return
}
