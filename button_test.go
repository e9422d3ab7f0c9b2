package gadget

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtonClicksOnReleaseInside(t *testing.T) {
	env, _ := newTestEnv()
	clicks := 0
	ui := &Button{R: image.Rect(0, 0, 100, 30), Text: "ok", Click: func() { clicks++ }}

	press(env, ui, image.Pt(10, 10))
	require.Zero(t, clicks)
	r := release(env, ui, image.Pt(10, 10))
	require.True(t, r.Consumed)
	require.Equal(t, 1, clicks)
}

func TestButtonDragOutCancels(t *testing.T) {
	env, _ := newTestEnv()
	clicks := 0
	ui := &Button{R: image.Rect(0, 0, 100, 30), Click: func() { clicks++ }}

	press(env, ui, image.Pt(10, 10))
	ui.Mouse(env, Mouse{Point: image.Pt(200, 10), Buttons: Button1})
	release(env, ui, image.Pt(200, 10))
	require.Zero(t, clicks)
}

func TestButtonDisabledIgnoresClicks(t *testing.T) {
	env, _ := newTestEnv()
	clicks := 0
	ui := &Button{R: image.Rect(0, 0, 100, 30), Disabled: true, Click: func() { clicks++ }}
	click(env, ui, image.Pt(10, 10))
	require.Zero(t, clicks)
}

func TestButtonFillPicksContrastingLabel(t *testing.T) {
	env, c := newTestEnv()
	white := rgba(0xffffffff)
	dark := rgba(0x333333ff)

	ui := &Button{R: image.Rect(0, 0, 100, 30), Text: "x", Fill: color.RGBA{A: 0xff}} // black
	ui.Draw(env, Mouse{})
	require.Contains(t, c.ops[len(c.ops)-1], colorString(white))

	c.ops = nil
	ui.Fill = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ui.Draw(env, Mouse{})
	require.Contains(t, c.ops[len(c.ops)-1], colorString(dark))
}

func TestContrastText(t *testing.T) {
	white := rgba(0xffffffff)
	dark := rgba(0x333333ff)

	require.Equal(t, white, contrastText(color.RGBA{A: 0xff}))
	require.Equal(t, white, contrastText(color.RGBA{R: 0x33, G: 0x27, B: 0x72, A: 0xff}))
	require.Equal(t, dark, contrastText(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	require.Equal(t, dark, contrastText(color.RGBA{R: 0xff, G: 0xf2, B: 0xa0, A: 0xff}))
}
