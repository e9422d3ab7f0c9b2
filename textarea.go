package gadget

import (
	"image"
	"time"
)

// caret blink half-period
const blinkInterval = 500 * time.Millisecond

// TextArea is a multi-line text editing widget.
//
// Keys while focused:
//
//	printable runes insert, newline starts a new line
//	backspace/delete edit, joining lines at the boundaries
//	arrows move, wrapping horizontally; home/end jump within the line
//	escape drops focus
//
// A click places the cursor; wheel scrolls without moving it.
type TextArea struct {
	R           image.Rectangle
	Placeholder string // drawn in placeholder colors when empty and unfocused
	Disabled    bool
	Changed     func(text string) // content changes only, never cursor movement

	b         *Buffer
	scroll    int // pixels, >= 0
	focus     bool
	focusTime time.Time // last focus or keystroke; caret is solid right after
	m         Mouse
}

var _ UI = &TextArea{}

func (ui *TextArea) buf() *Buffer {
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
func (ui *TextArea) Text() string {
	return ui.buf().Text()
}

// SetText replaces the contents, cursor to the end.
func (ui *TextArea) SetText(s string) {
	ui.buf().SetText(s)
	ui.scrollToCursor(nil)
}

// Focused reports whether the widget has keyboard focus.
func (ui *TextArea) Focused() bool {
	return ui.focus
}

// content is the text rectangle inside border and padding.
func (ui *TextArea) content(env *Env) image.Rectangle {
	return env.inset(ui.R)
}

// locate maps a pointer position to a (row, col) buffer position.
func (ui *TextArea) locate(env *Env, p image.Point) (row, col int) {
	b := ui.buf()
	c := ui.content(env)
	row = rowAt(p.Y-c.Min.Y, ui.scroll, env.Canvas.LineHeight(), b.Lines())
	col = columnAt(env.Canvas.TextWidth, []rune(b.Line(row)), p.X-c.Min.X)
	return
}

func (ui *TextArea) scrollToCursor(env *Env) {
	if env == nil {
		// no canvas yet (SetText before first draw); clamped on next event
		return
	}
	row, _ := ui.buf().Cursor()
	ui.scroll = clampScroll(ui.scroll, row, env.Canvas.LineHeight(), ui.content(env).Dy())
}

func (ui *TextArea) Draw(env *Env, m Mouse) {
	b := ui.buf()
	colors := env.colors(ui.Disabled, m.In(ui.R))
	border := colors.Border
	if ui.focus {
		border = env.Accent
	}
	env.Canvas.FillRect(ui.R, colors.Background)
	env.Canvas.StrokeRect(ui.R, border)

	c := ui.content(env)
	lh := env.Canvas.LineHeight()
	if b.Lines() == 1 && b.Line(0) == "" && !ui.focus && ui.Placeholder != "" {
		env.Canvas.Text(c.Min, ui.Placeholder, env.Placeholder.Text)
		return
	}
	for i := ui.scroll / lh; i < b.Lines(); i++ {
		y := c.Min.Y + i*lh - ui.scroll
		if y >= c.Max.Y {
			break
		}
		env.Canvas.Text(image.Pt(c.Min.X, y), b.Line(i), colors.Text)
	}

	if ui.focus && ui.blinkOn(env) {
		row, col := b.Cursor()
		x := c.Min.X + env.Canvas.TextWidth(string([]rune(b.Line(row))[:col]))
		y := c.Min.Y + row*lh - ui.scroll
		env.Canvas.Line(image.Pt(x, y), image.Pt(x, y+lh-1), colors.Text)
	}
}

func (ui *TextArea) blinkOn(env *Env) bool {
	return (env.now().Sub(ui.focusTime)/blinkInterval)%2 == 0
}

func (ui *TextArea) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled {
		return
	}

	if prev.Buttons&Button1 == 0 && m.Buttons&Button1 == Button1 {
		if m.In(ui.R) {
			ui.focus = true
			ui.focusTime = env.now()
			row, col := ui.locate(env, m.Point)
			ui.buf().SetCursor(row, col)
			ui.scrollToCursor(env)
			r.Consumed = true
			r.Redraw = true
		} else if ui.focus {
			ui.focus = false
			r.Redraw = true
		}
	}

	// wheel scrolls without moving the cursor
	if m.In(ui.R) {
		lh := env.Canvas.LineHeight()
		maxScroll := max(0, ui.buf().Lines()*lh-ui.content(env).Dy())
		if prev.Buttons&Button4 == 0 && m.Buttons&Button4 != 0 {
			ui.scroll = clamp(ui.scroll-lh, 0, maxScroll)
			r.Consumed = true
			r.Redraw = true
		}
		if prev.Buttons&Button5 == 0 && m.Buttons&Button5 != 0 {
			ui.scroll = clamp(ui.scroll+lh, 0, maxScroll)
			r.Consumed = true
			r.Redraw = true
		}
	}
	return
}

func (ui *TextArea) Key(env *Env, k rune) (r Result) {
	if ui.Disabled || !ui.focus {
		return
	}
	b := ui.buf()
	r.Consumed = true
	r.Redraw = true
	ui.focusTime = env.now()
	switch k {
	case KeyEscape:
		ui.focus = false
		return
	case KeyLeft:
		b.MoveLeft()
	case KeyRight:
		b.MoveRight()
	case KeyUp:
		b.MoveUp()
	case KeyDown:
		b.MoveDown()
	case KeyHome:
		b.MoveLineStart()
	case KeyEnd:
		b.MoveLineEnd()
	case KeyBackspace:
		b.DeleteBackward()
	case KeyDelete:
		b.DeleteForward()
	case '\n':
		b.InsertNewline()
	default:
		if k < ' ' || (k >= KeyFn && k <= KeyFn|0xFF) {
			r.Consumed = false
			r.Redraw = false
			return
		}
		b.InsertRune(k)
	}
	ui.scrollToCursor(env)
	return
}
