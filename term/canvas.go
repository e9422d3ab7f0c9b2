// Package term hosts gadget widgets in a terminal using bubbletea. The cell
// grid is treated as a pixel surface with 1 cell per pixel: LineHeight is 1
// and text widths are cell counts, so the kit's hit testing and scrolling
// work unchanged.
package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jgkn/gadget"
)

type cell struct {
	r      rune
	fg, bg color.RGBA
	cont   bool // continuation of a wide rune to its left
}

// Canvas is a cell grid implementing gadget.Canvas.
type Canvas struct {
	w, h  int
	cells []cell
}

var _ gadget.Canvas = &Canvas{}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

// Clear resets every cell to a space on bg.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', bg: bg}
	}
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

func (c *Canvas) paint(x, y int, bg color.RGBA) {
	if cl := c.at(x, y); cl != nil {
		*cl = cell{r: ' ', bg: bg}
	}
}

func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.paint(x, y, col)
		}
	}
}

func (c *Canvas) StrokeRect(r image.Rectangle, col color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		c.paint(x, r.Min.Y, col)
		c.paint(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.paint(r.Min.X, y, col)
		c.paint(r.Max.X-1, y, col)
	}
}

func (c *Canvas) Line(p0, p1 image.Point, col color.RGBA) {
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
		c.paint(x, y, col)
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

// Ellipse degenerates to a single glyph: cells are far too coarse for arcs.
func (c *Canvas) Ellipse(center image.Point, rx, ry int, col color.RGBA, fill bool) {
	if cl := c.at(center.X, center.Y); cl != nil {
		r := '○'
		if fill {
			r = '●'
		}
		cl.r = r
		cl.fg = col
		cl.cont = false
	}
}

func (c *Canvas) Text(p image.Point, s string, col color.RGBA) {
	x := p.X
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cl := c.at(x, p.Y); cl != nil {
			cl.r = r
			cl.fg = col
			cl.cont = false
		}
		if w == 2 {
			if cl := c.at(x+1, p.Y); cl != nil {
				cl.r = ' '
				cl.cont = true
			}
		}
		x += w
	}
}

func (c *Canvas) TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

func (c *Canvas) LineHeight() int {
	return 1
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// View renders the grid, styling runs of cells that share colors.
func (c *Canvas) View() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < c.w {
			start := c.at(x, y)
			var run strings.Builder
			for x < c.w {
				cl := c.at(x, y)
				if cl.fg != start.fg || cl.bg != start.bg {
					break
				}
				if !cl.cont {
					run.WriteRune(cl.r)
				}
				x++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(start.fg))).
				Background(lipgloss.Color(hex(start.bg)))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
