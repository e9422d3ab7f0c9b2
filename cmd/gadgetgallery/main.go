// Gadgetgallery shows all gadget controls on the terminal host.
package main

import (
	"image"
	"image/color"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jgkn/gadget"
	gterm "github.com/jgkn/gadget/term"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func main() {
	log.SetFlags(0)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalln("gadgetgallery needs a terminal")
	}

	status := &gadget.Label{P: image.Pt(2, 22), Text: "click around; ctrl-c quits"}
	say := func(s string) {
		status.Text = s
	}

	root := &gadget.Group{Kids: []gadget.UI{
		&gadget.Button{
			R:    image.Rect(2, 1, 16, 4),
			Text: "click me",
			Click: func() {
				say("button clicked")
			},
		},
		&gadget.Slider{
			R:   image.Rect(20, 2, 50, 3),
			Min: 0, Max: 100, Step: 5, Value: 40,
			Changed: func(v float64) {
				say("slider changed")
			},
		},
		&gadget.Radio{
			R:       image.Rect(2, 6, 2, 6),
			Options: []string{"tea", "coffee", "mate"},
			Changed: func(i int, opt string) {
				say("radio: " + opt)
			},
		},
		&gadget.Checkbox{
			R:    image.Rect(20, 6, 20, 6),
			Text: "extra shot",
			Changed: func(on bool) {
				if on {
					say("checkbox on")
				} else {
					say("checkbox off")
				}
			},
		},
		&gadget.Field{
			R:           image.Rect(2, 9, 40, 12),
			Placeholder: "your name",
			Commit: func(s string) {
				say("hello, " + s)
			},
		},
		&gadget.TextArea{
			R:           image.Rect(2, 13, 40, 20),
			Placeholder: "notes…",
		},
		&gadget.FilePicker{
			R: image.Rect(44, 9, 60, 12),
			Picked: func(f gadget.File) {
				say("picked " + f.Name)
			},
			Failed: func(err error) {
				say("pick failed: " + err.Error())
			},
		},
		&gadget.ColorPicker{
			R:     image.Rect(44, 14, 50, 17),
			Value: color.RGBA{R: 0x32, G: 0x72, B: 0xdc, A: 0xff},
			Changed: func(c color.RGBA) {
				say("color changed")
			},
		},
		status,
	}}

	m := gterm.New(root)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	check(err, "running program")
}
