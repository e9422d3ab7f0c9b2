// Package draw9 hosts gadget widgets on devdraw via 9fans.net/go/draw.
package draw9

import (
	"image"
	"image/color"
	"io"
	"log"
	"time"

	"9fans.net/go/draw"

	"github.com/jgkn/gadget"
)

// Host is a devdraw window implementing gadget.Canvas. Create one with New,
// build an Env on it with gadget.NewEnv, then hand control to Run.
type Host struct {
	Display *draw.Display
	Done    chan struct{} // closed when the window is closed

	errch    chan error
	mousectl *draw.Mousectl
	keyctl   *draw.Keyboardctl
	colors   map[color.RGBA]*draw.Image
}

func check(err error, msg string) {
	if err != nil {
		log.Printf("draw9: %s: %s\n", msg, err)
		panic(err)
	}
}

// New connects to devdraw and opens a window. Dim is a devdraw geometry like
// "800x600".
func New(label, dim string) (*Host, error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", label, dim)
	if err != nil {
		return nil, err
	}
	return &Host{
		Display:  display,
		Done:     make(chan struct{}),
		errch:    errch,
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
		colors:   map[color.RGBA]*draw.Image{},
	}, nil
}

// color returns a replicated 1x1 image for c, allocated once.
func (h *Host) color(c color.RGBA) *draw.Image {
	if img, ok := h.colors[c]; ok {
		return img
	}
	v := draw.Color(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
	img, err := h.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, v)
	check(err, "allocimage")
	h.colors[c] = img
	return img
}

var _ gadget.Canvas = &Host{}

func (h *Host) FillRect(r image.Rectangle, c color.RGBA) {
	h.Display.ScreenImage.Draw(r, h.color(c), nil, image.ZP)
}

func (h *Host) StrokeRect(r image.Rectangle, c color.RGBA) {
	h.Display.ScreenImage.Border(r, gadget.BorderSize, h.color(c), image.ZP)
}

func (h *Host) Line(p0, p1 image.Point, c color.RGBA) {
	h.Display.ScreenImage.Line(p0, p1, 0, 0, 0, h.color(c), image.ZP)
}

func (h *Host) Ellipse(center image.Point, rx, ry int, c color.RGBA, fill bool) {
	if fill {
		h.Display.ScreenImage.FillArc(center, rx, ry, 0, h.color(c), image.ZP, 0, 360)
	} else {
		h.Display.ScreenImage.Arc(center, rx, ry, 0, h.color(c), image.ZP, 0, 360)
	}
}

func (h *Host) Text(p image.Point, s string, c color.RGBA) {
	h.Display.ScreenImage.String(p, h.color(c), image.ZP, h.Display.DefaultFont, s)
}

func (h *Host) TextWidth(s string) int {
	return h.Display.DefaultFont.StringWidth(s)
}

func (h *Host) LineHeight() int {
	return h.Display.DefaultFont.Height
}

func (h *Host) render(env *gadget.Env, root gadget.UI, m gadget.Mouse) {
	h.Display.ScreenImage.Draw(h.Display.ScreenImage.R, h.color(env.Background), nil, image.ZP)
	root.Draw(env, m)
	h.Display.Flush()
}

// Run drives the event loop until the window is closed: mouse and key events
// go to root, functions from env.Call run on the loop, and a redraw happens
// after consumed events and on the caret blink tick.
func (h *Host) Run(env *gadget.Env, root gadget.UI) error {
	var m gadget.Mouse
	blink := time.NewTicker(500 * time.Millisecond)
	defer blink.Stop()
	h.render(env, root, m)
	for {
		select {
		case dm := <-h.mousectl.C:
			m = gadget.Mouse{Point: dm.Point, Buttons: dm.Buttons}
			root.Mouse(env, m)
			h.render(env, root, m)
		case k := <-h.keyctl.C:
			root.Key(env, k)
			h.render(env, root, m)
		case <-h.mousectl.Resize:
			check(h.Display.Attach(draw.Refmesg), "attach after resize")
			h.render(env, root, m)
		case fn := <-env.Call:
			fn()
			h.render(env, root, m)
		case <-blink.C:
			h.render(env, root, m)
		case err := <-h.errch:
			if err == io.EOF {
				// devdraw disappeared, typically because the window was closed
				close(h.Done)
				return nil
			}
			return err
		}
	}
}
