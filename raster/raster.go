// Package raster is an off-screen software host: a gadget.Canvas drawing
// into an image.RGBA with a golang.org/x/image font.Face. Rendering is
// deterministic, which makes it suitable for screenshots and tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jgkn/gadget"
)

type Canvas struct {
	img  *image.RGBA
	face font.Face
}

var _ gadget.Canvas = &Canvas{}

// New returns a canvas of the given bounds using the fixed 7x13 basic font.
func New(r image.Rectangle) *Canvas {
	return NewWithFace(r, basicfont.Face7x13)
}

// NewWithFace returns a canvas rendering text with face, e.g. one from
// ParseFace.
func NewWithFace(r image.Rectangle, face font.Face) *Canvas {
	return &Canvas{img: image.NewRGBA(r), face: face}
}

// Image exposes the backing image, for encoding or blitting.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r, &image.Uniform{col}, image.ZP, draw.Src)
}

func (c *Canvas) StrokeRect(r image.Rectangle, col color.RGBA) {
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	c.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	c.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func (c *Canvas) Line(p0, p1 image.Point, col color.RGBA) {
	// Bresenham
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		c.img.SetRGBA(x, y, col)
		if x == p1.X && y == p1.Y {
			return
		}
		if e2 := 2 * err; e2 >= dy {
			err += dy
			x += sx
		} else {
			err += dx
			y += sy
		}
	}
}

func (c *Canvas) Ellipse(center image.Point, rx, ry int, col color.RGBA, fill bool) {
	if rx <= 0 || ry <= 0 {
		c.img.SetRGBA(center.X, center.Y, col)
		return
	}
	rx2, ry2 := rx*rx, ry*ry
	for dy := -ry; dy <= ry; dy++ {
		// widest dx with dx²·ry² + dy²·rx² <= rx²·ry²
		rem := (ry2 - dy*dy) * rx2
		dx := 0
		for (dx+1)*(dx+1)*ry2 <= rem {
			dx++
		}
		y := center.Y + dy
		if fill {
			c.FillRect(image.Rect(center.X-dx, y, center.X+dx+1, y+1), col)
			continue
		}
		c.img.SetRGBA(center.X-dx, y, col)
		c.img.SetRGBA(center.X+dx, y, col)
	}
	if !fill {
		for dx := -rx; dx <= rx; dx++ {
			rem := (rx2 - dx*dx) * ry2
			dy := 0
			for (dy+1)*(dy+1)*rx2 <= rem {
				dy++
			}
			c.img.SetRGBA(center.X+dx, center.Y-dy, col)
			c.img.SetRGBA(center.X+dx, center.Y+dy, col)
		}
	}
}

func (c *Canvas) Text(p image.Point, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(p.X, p.Y+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

func (c *Canvas) LineHeight() int {
	return c.face.Metrics().Height.Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
