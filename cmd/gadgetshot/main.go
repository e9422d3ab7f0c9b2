// Gadgetshot renders a widget scene off-screen with the raster host and
// writes it as a PNG. Drawing is deterministic, so the output is a stable
// function of this scene.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/jgkn/gadget"
	"github.com/jgkn/gadget/raster"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func main() {
	log.SetFlags(0)
	out := flag.String("o", "gadgets.png", "output file")
	flag.Parse()

	face, err := raster.ParseFace(goregular.TTF, 14)
	check(err, "parsing font")
	canvas := raster.NewWithFace(image.Rect(0, 0, 480, 360), face)

	env := gadget.NewEnv(canvas)
	env.Now = func() time.Time { return time.Time{} } // caret always solid

	area := &gadget.TextArea{R: image.Rect(16, 160, 300, 280)}
	area.SetText("the quick brown fox\njumps over\nthe lazy dog")

	root := &gadget.Group{Kids: []gadget.UI{
		&gadget.Button{R: image.Rect(16, 16, 120, 48), Text: "ok"},
		&gadget.Button{
			R: image.Rect(132, 16, 236, 48), Text: "danger",
			Fill: color.RGBA{R: 0xdc, G: 0x35, B: 0x45, A: 0xff},
		},
		&gadget.Slider{R: image.Rect(16, 64, 236, 88), Min: 0, Max: 10, Value: 7},
		&gadget.Radio{R: image.Rect(16, 100, 16, 100), Options: []string{"small", "large"}, Selected: 1},
		&gadget.Checkbox{R: image.Rect(160, 100, 160, 100), Text: "wrap", Checked: true},
		&gadget.Field{R: image.Rect(16, 120, 236, 150), Placeholder: "search"},
		area,
		&gadget.ColorPicker{R: image.Rect(320, 160, 360, 190), Value: color.RGBA{R: 0x28, G: 0xa7, B: 0x45, A: 0xff}},
		&gadget.Label{P: image.Pt(16, 300), Text: "rendered by gadgetshot"},
	}}

	canvas.FillRect(canvas.Image().Bounds(), env.Background)
	root.Draw(env, gadget.Mouse{})

	f, err := os.Create(*out)
	check(err, "creating output")
	check(png.Encode(f, canvas.Image()), "encoding png")
	check(f.Close(), "closing output")
	log.Printf("wrote %s\n", *out)
}
