package gadget

import (
	"image"
)

// File is the result of a successful pick. Image is the decoded image, or nil
// when the data is not in a recognized image format.
type File struct {
	Name  string
	Data  []byte
	Image image.Image
}

// FilePicker opens the host's native file dialog on click. The chosen file is
// decoded as an image on a separate goroutine; the outcome comes back through
// Env.Call, so Picked and Failed always run on the event loop.
//
// Failed fires for dialog errors (including cancellation) and for data that
// is a recognized image format but corrupt. Data in no recognized format is
// not an error: Picked fires with Image nil.
type FilePicker struct {
	R        image.Rectangle
	Text     string // label, default "browse…"
	Disabled bool
	Picked   func(f File)
	Failed   func(err error)

	name string // shown after a pick
	m    Mouse
}

var _ UI = &FilePicker{}

func (ui *FilePicker) label() string {
	if ui.Text != "" {
		return ui.Text
	}
	return "browse…"
}

func (ui *FilePicker) Draw(env *Env, m Mouse) {
	disabled := ui.Disabled || env.Files == nil
	colors := env.colors(disabled, m.In(ui.R))
	env.Canvas.FillRect(ui.R, colors.Background)
	env.Canvas.StrokeRect(ui.R, colors.Border)
	p := ui.R.Min.Add(image.Pt(env.Pad.X, (ui.R.Dy()-env.Canvas.LineHeight())/2))
	env.Canvas.Text(p, ui.label(), colors.Text)
	if ui.name != "" {
		env.Canvas.Text(image.Pt(ui.R.Max.X+env.Pad.X, p.Y), ui.name, env.Regular.Text)
	}
}

func (ui *FilePicker) Mouse(env *Env, m Mouse) (r Result) {
	prev := ui.m
	ui.m = m
	if ui.Disabled || env.Files == nil {
		return
	}
	if m.In(ui.R) && prev.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 {
		r.Consumed = true
		ui.open(env)
	}
	return
}

func (ui *FilePicker) open(env *Env) {
	env.Files.Open(func(name string, data []byte, err error) {
		if err != nil {
			ui.fail(err)
			return
		}
		go func() {
			img, derr := ui.decode(data)
			env.Call <- func() {
				if derr != nil {
					ui.fail(derr)
					return
				}
				ui.name = name
				if ui.Picked != nil {
					ui.Picked(File{Name: name, Data: data, Image: img})
				}
			}
		}()
	})
}

func (ui *FilePicker) decode(data []byte) (image.Image, error) {
	img, err := decodeImage(data)
	if err == image.ErrFormat {
		// not an image; still a valid pick
		return nil, nil
	}
	return img, err
}

func (ui *FilePicker) fail(err error) {
	if ui.Failed != nil {
		ui.Failed(err)
	}
}

func (ui *FilePicker) Key(env *Env, k rune) (r Result) {
	return
}
