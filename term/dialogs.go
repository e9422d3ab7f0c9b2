package term

import (
	"errors"
	"image"
	"image/color"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/jgkn/gadget"
)

// ErrCanceled is reported through FilePicker.Failed when the user dismisses
// the file dialog.
var ErrCanceled = errors.New("dialog canceled")

// fileDialog opens an overlay listing the current directory; typing filters
// the names fuzzily.
type fileDialog struct {
	m *Model
}

var _ gadget.FileDialog = &fileDialog{}

func (d *fileDialog) Open(fn func(name string, data []byte, err error)) {
	entries, err := os.ReadDir(".")
	if err != nil {
		fn("", nil, err)
		return
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	d.m.overlay = &fileOverlay{fn: fn, names: names, matches: names}
}

type fileOverlay struct {
	fn      func(name string, data []byte, err error)
	names   []string
	query   string
	matches []string
	sel     int
}

func (o *fileOverlay) filter() {
	if o.query == "" {
		o.matches = o.names
	} else {
		found := fuzzy.Find(o.query, o.names)
		o.matches = make([]string, len(found))
		for i, f := range found {
			o.matches[i] = f.Str
		}
	}
	o.sel = 0
}

func (o *fileOverlay) key(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		o.fn("", nil, ErrCanceled)
		return true
	case tea.KeyEnter:
		if len(o.matches) == 0 {
			return false
		}
		name := o.matches[o.sel]
		data, err := os.ReadFile(name)
		o.fn(name, data, err)
		return true
	case tea.KeyUp:
		if o.sel > 0 {
			o.sel--
		}
	case tea.KeyDown:
		if o.sel < len(o.matches)-1 {
			o.sel++
		}
	case tea.KeyBackspace:
		if o.query != "" {
			o.query = o.query[:len(o.query)-1]
			o.filter()
		}
	case tea.KeyRunes:
		o.query += string(msg.Runes)
		o.filter()
	}
	return false
}

func (o *fileOverlay) draw(c *Canvas) {
	r := overlayRect(c)
	drawPanel(c, r, "open file: "+o.query)
	y := r.Min.Y + 2
	for i, name := range o.matches {
		if y >= r.Max.Y-1 {
			break
		}
		fg := rgb(0x333333)
		if i == o.sel {
			fg = rgb(0x3272dc)
			c.Text(image.Pt(r.Min.X+1, y), "> "+name, fg)
		} else {
			c.Text(image.Pt(r.Min.X+3, y), name, fg)
		}
		y++
	}
}

// colorDialog offers a fixed swatch list; terminals have no native picker.
type colorDialog struct {
	m *Model
}

var _ gadget.ColorDialog = &colorDialog{}

var swatches = []color.RGBA{
	rgb(0x000000), rgb(0xffffff), rgb(0x888888),
	rgb(0xdc3545), rgb(0x28a745), rgb(0x3272dc),
	rgb(0xffc107), rgb(0x17a2b8), rgb(0x6f42c1),
}

func (d *colorDialog) Pick(current color.RGBA, fn func(c color.RGBA, ok bool)) {
	sel := 0
	for i, s := range swatches {
		if s == current {
			sel = i
			break
		}
	}
	d.m.overlay = &colorOverlay{fn: fn, sel: sel}
}

type colorOverlay struct {
	fn  func(c color.RGBA, ok bool)
	sel int
}

func (o *colorOverlay) key(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		o.fn(color.RGBA{}, false)
		return true
	case tea.KeyEnter:
		o.fn(swatches[o.sel], true)
		return true
	case tea.KeyLeft:
		if o.sel > 0 {
			o.sel--
		}
	case tea.KeyRight:
		if o.sel < len(swatches)-1 {
			o.sel++
		}
	}
	return false
}

func (o *colorOverlay) draw(c *Canvas) {
	r := overlayRect(c)
	drawPanel(c, r, "pick color")
	y := r.Min.Y + 2
	for i, s := range swatches {
		x := r.Min.X + 1 + i*4
		c.FillRect(image.Rect(x, y, x+3, y+2), s)
		if i == o.sel {
			c.StrokeRect(image.Rect(x-1, y-1, x+4, y+3), rgb(0x3272dc))
		}
	}
}

func overlayRect(c *Canvas) image.Rectangle {
	w := min(c.w-4, 60)
	h := min(c.h-4, 16)
	x := (c.w - w) / 2
	y := (c.h - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

func drawPanel(c *Canvas, r image.Rectangle, title string) {
	c.FillRect(r, rgb(0xf8f8f8))
	c.StrokeRect(r, rgb(0xbbbbbb))
	c.Text(r.Min.Add(image.Pt(1, 1)), title, rgb(0x333333))
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
