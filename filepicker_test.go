package gadget

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubDialog records the callback so tests can complete the pick themselves.
type stubDialog struct {
	fn func(name string, data []byte, err error)
}

func (d *stubDialog) Open(fn func(name string, data []byte, err error)) {
	d.fn = fn
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pickerFixture(t *testing.T) (*Env, *FilePicker, *stubDialog, *[]File, *[]error) {
	t.Helper()
	env, _ := newTestEnv()
	dialog := &stubDialog{}
	env.Files = dialog
	var picked []File
	var failed []error
	ui := &FilePicker{
		R:      image.Rect(0, 0, 100, 30),
		Picked: func(f File) { picked = append(picked, f) },
		Failed: func(err error) { failed = append(failed, err) },
	}
	click(env, ui, image.Pt(10, 10))
	require.NotNil(t, dialog.fn, "click should open the dialog")
	return env, ui, dialog, &picked, &failed
}

// drain runs the next function posted to env.Call, as a host loop would.
func drain(env *Env) {
	fn := <-env.Call
	fn()
}

func TestFilePickerDecodesImage(t *testing.T) {
	env, _, dialog, picked, failed := pickerFixture(t)

	data := pngBytes(t)
	dialog.fn("shot.png", data, nil)
	drain(env)

	require.Empty(t, *failed)
	require.Len(t, *picked, 1)
	f := (*picked)[0]
	require.Equal(t, "shot.png", f.Name)
	require.Equal(t, data, f.Data)
	require.NotNil(t, f.Image)
	require.Equal(t, image.Rect(0, 0, 2, 2), f.Image.Bounds())
}

func TestFilePickerUnrecognizedFormatPicksWithoutImage(t *testing.T) {
	env, _, dialog, picked, failed := pickerFixture(t)

	dialog.fn("notes.txt", []byte("just text"), nil)
	drain(env)

	require.Empty(t, *failed)
	require.Len(t, *picked, 1)
	require.Nil(t, (*picked)[0].Image)
}

func TestFilePickerCorruptImageFails(t *testing.T) {
	env, _, dialog, picked, failed := pickerFixture(t)

	// valid png signature, truncated data: recognized but undecodable
	dialog.fn("broken.png", pngBytes(t)[:16], nil)
	drain(env)

	require.Empty(t, *picked)
	require.Len(t, *failed, 1)
}

func TestFilePickerDialogErrorFails(t *testing.T) {
	_, _, dialog, picked, failed := pickerFixture(t)

	boom := errors.New("boom")
	dialog.fn("", nil, boom)

	require.Empty(t, *picked)
	require.Equal(t, []error{boom}, *failed)
}

func TestFilePickerWithoutDialogIgnoresClicks(t *testing.T) {
	env, _ := newTestEnv()
	ui := &FilePicker{R: image.Rect(0, 0, 100, 30)}
	r := press(env, ui, image.Pt(10, 10))
	require.False(t, r.Consumed)
}
