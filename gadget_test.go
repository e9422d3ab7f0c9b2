package gadget

import (
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeCanvas records draw calls and measures text at a fixed 10px per rune
// with a 16px line height, so hit-test and scroll arithmetic is exact.
type fakeCanvas struct {
	ops []string
}

func (c *fakeCanvas) op(format string, args ...any) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *fakeCanvas) FillRect(r image.Rectangle, col color.RGBA)   { c.op("fill %v %v", r, col) }
func (c *fakeCanvas) StrokeRect(r image.Rectangle, col color.RGBA) { c.op("stroke %v %v", r, col) }
func (c *fakeCanvas) Line(p0, p1 image.Point, col color.RGBA)      { c.op("line %v %v %v", p0, p1, col) }
func (c *fakeCanvas) Ellipse(center image.Point, rx, ry int, col color.RGBA, fill bool) {
	c.op("ellipse %v %d %d %v %v", center, rx, ry, col, fill)
}
func (c *fakeCanvas) Text(p image.Point, s string, col color.RGBA) { c.op("text %v %q %v", p, s, col) }

func (c *fakeCanvas) TextWidth(s string) int {
	return 10 * len([]rune(s))
}

func (c *fakeCanvas) LineHeight() int {
	return 16
}

func colorString(c color.RGBA) string {
	return fmt.Sprintf("%v", c)
}

func newTestEnv() (*Env, *fakeCanvas) {
	c := &fakeCanvas{}
	env := NewEnv(c)
	env.Now = func() time.Time { return time.Unix(1700000000, 0) }
	return env, c
}

func press(env *Env, ui UI, p image.Point) Result {
	return ui.Mouse(env, Mouse{Point: p, Buttons: Button1})
}

func release(env *Env, ui UI, p image.Point) Result {
	return ui.Mouse(env, Mouse{Point: p, Buttons: 0})
}

func click(env *Env, ui UI, p image.Point) {
	press(env, ui, p)
	release(env, ui, p)
}

func TestGroupMouseReachesAllKids(t *testing.T) {
	env, _ := newTestEnv()
	a := &Field{R: image.Rect(0, 0, 100, 26)}
	b := &Field{R: image.Rect(0, 30, 100, 56)}
	g := &Group{Kids: []UI{a, b}}

	click(env, g, image.Pt(10, 40))
	require.False(t, a.Focused())
	require.True(t, b.Focused())

	// clicking a must reach b too, so b drops focus
	click(env, g, image.Pt(10, 10))
	require.True(t, a.Focused())
	require.False(t, b.Focused())
}

func TestGroupKeyStopsAtConsumer(t *testing.T) {
	env, _ := newTestEnv()
	a := &Field{R: image.Rect(0, 0, 100, 26)}
	b := &Field{R: image.Rect(0, 30, 100, 56)}
	g := &Group{Kids: []UI{a, b}}

	click(env, g, image.Pt(10, 10))
	r := g.Key(env, 'x')
	require.True(t, r.Consumed)
	require.Equal(t, "x", a.Text())
	require.Equal(t, "", b.Text())
}
