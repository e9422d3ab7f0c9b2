package gadget

import (
	"image"
	"image/color"
	"time"
)

// Canvas is the rendering capability widgets draw through. Implementations
// must make TextWidth a pure function of the string for a fixed font, and
// LineHeight a constant; widgets use both for hit testing.
type Canvas interface {
	FillRect(r image.Rectangle, c color.RGBA)
	StrokeRect(r image.Rectangle, c color.RGBA) // 1px border just inside r
	Line(p0, p1 image.Point, c color.RGBA)
	Ellipse(center image.Point, rx, ry int, c color.RGBA, fill bool)
	Text(p image.Point, s string, c color.RGBA) // p is the top-left of the string
	TextWidth(s string) int
	LineHeight() int
}

// FileDialog is the host's native file-open dialog. Open shows it and later
// calls fn exactly once with the chosen file's name and contents, or with a
// non-nil error (including cancellation). The call may complete
// asynchronously; hosts must invoke fn on their event loop.
type FileDialog interface {
	Open(fn func(name string, data []byte, err error))
}

// ColorDialog is the host's native color-choose dialog. Pick shows it with
// current preselected and later calls fn exactly once; ok is false when the
// user dismissed the dialog. Hosts must invoke fn on their event loop.
type ColorDialog interface {
	Pick(current color.RGBA, fn func(c color.RGBA, ok bool))
}

// Colors groups the text/background/border colors for one widget state.
type Colors struct {
	Text,
	Background,
	Border color.RGBA
}

// Env bundles the injected host capabilities and the shared palette. One Env
// is typically shared by all widgets of a window.
type Env struct {
	Canvas Canvas
	Now    func() time.Time // nil means time.Now; fix in tests for caret blink determinism
	Files  FileDialog       // nil: FilePicker draws disabled and ignores clicks
	Picker ColorDialog      // nil: ColorPicker draws disabled and ignores clicks

	// Call receives functions from code running outside the event loop, e.g.
	// the file picker's decode goroutine. The host must run them on its loop.
	Call chan func()

	Regular,
	Hover,
	Disabled,
	Placeholder Colors

	Accent     color.RGBA // focus borders, slider fill, selected radio dot
	Background color.RGBA // window background behind widgets

	// Pad is the content padding inside widget borders, in canvas units.
	// Hosts with coarse units scale it down, e.g. the term host uses (1,0).
	Pad image.Point
}

// NewEnv returns an Env for c with the default palette.
func NewEnv(c Canvas) *Env {
	return &Env{
		Canvas: c,
		Call:   make(chan func(), 1),
		Regular: Colors{
			Text:       rgba(0x333333ff),
			Background: rgba(0xf8f8f8ff),
			Border:     rgba(0xbbbbbbff),
		},
		Hover: Colors{
			Text:       rgba(0x222222ff),
			Background: rgba(0xfafafaff),
			Border:     rgba(0x3272dcff),
		},
		Disabled: Colors{
			Text:       rgba(0x888888ff),
			Background: rgba(0xf0f0f0ff),
			Border:     rgba(0xe0e0e0ff),
		},
		Placeholder: Colors{
			Text:       rgba(0xaaaaaaff),
			Background: rgba(0xf8f8f8ff),
			Border:     rgba(0xbbbbbbff),
		},
		Accent:     rgba(0x3272dcff),
		Background: rgba(0xfcfcfcff),
		Pad:        image.Pt(Space, Space),
	}
}

// inset shrinks r past the border and padding to the content rectangle.
func (e *Env) inset(r image.Rectangle) image.Rectangle {
	d := e.Pad.Add(image.Pt(BorderSize, BorderSize))
	return image.Rectangle{Min: r.Min.Add(d), Max: r.Max.Sub(d)}
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// colors returns the palette entry for the common disabled/hover/normal cases.
func (e *Env) colors(disabled, hover bool) Colors {
	if disabled {
		return e.Disabled
	}
	if hover {
		return e.Hover
	}
	return e.Regular
}

func rgba(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
