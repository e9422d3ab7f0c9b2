package term

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jgkn/gadget"
)

func TestCanvasTextAndWidths(t *testing.T) {
	c := NewCanvas(20, 4)
	c.Clear(rgb(0xffffff))
	c.Text(image.Pt(1, 1), "hi", rgb(0x000000))

	require.Equal(t, 'h', c.at(1, 1).r)
	require.Equal(t, 'i', c.at(2, 1).r)
	require.Equal(t, 2, c.TextWidth("hi"))
	require.Equal(t, 1, c.LineHeight())
}

func TestCanvasWideRunes(t *testing.T) {
	c := NewCanvas(20, 2)
	c.Clear(rgb(0xffffff))
	c.Text(image.Pt(0, 0), "界x", rgb(0x000000))

	require.Equal(t, 2, c.TextWidth("界"))
	require.Equal(t, '界', c.at(0, 0).r)
	require.True(t, c.at(1, 0).cont)
	require.Equal(t, 'x', c.at(2, 0).r)
}

func TestCanvasFillAndView(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Clear(rgb(0xffffff))
	c.FillRect(image.Rect(1, 1, 3, 2), rgb(0xff0000))

	require.Equal(t, rgb(0xff0000), c.at(1, 1).bg)
	require.Equal(t, rgb(0xff0000), c.at(2, 1).bg)
	require.Equal(t, rgb(0xffffff), c.at(3, 1).bg)

	view := c.View()
	require.Equal(t, 2, strings.Count(view, "\n"))
}

func TestKeyRuneTranslation(t *testing.T) {
	for _, tc := range []struct {
		msg  tea.KeyMsg
		want rune
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, 'a'},
		{tea.KeyMsg{Type: tea.KeyEnter}, '\n'},
		{tea.KeyMsg{Type: tea.KeySpace}, ' '},
		{tea.KeyMsg{Type: tea.KeyBackspace}, gadget.KeyBackspace},
		{tea.KeyMsg{Type: tea.KeyEsc}, gadget.KeyEscape},
		{tea.KeyMsg{Type: tea.KeyUp}, gadget.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, gadget.KeyDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, gadget.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, gadget.KeyRight},
		{tea.KeyMsg{Type: tea.KeyHome}, gadget.KeyHome},
		{tea.KeyMsg{Type: tea.KeyEnd}, gadget.KeyEnd},
	} {
		got, ok := keyRune(tc.msg)
		require.True(t, ok)
		require.Equal(t, tc.want, got)
	}

	_, ok := keyRune(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.False(t, ok)
}

func TestModelMouseTranslation(t *testing.T) {
	area := &gadget.TextArea{R: image.Rect(0, 0, 30, 10)}
	m := New(area)

	press := tea.MouseEvent{X: 5, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.handleMouse(press)
	require.Equal(t, gadget.Button1, m.mouse.Buttons)
	require.True(t, area.Focused())

	rel := tea.MouseEvent{X: 5, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m.handleMouse(rel)
	require.Zero(t, m.mouse.Buttons)

	out := tea.MouseEvent{X: 50, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.handleMouse(out)
	require.False(t, area.Focused())
}

func TestFileOverlayFiltering(t *testing.T) {
	o := &fileOverlay{names: []string{"main.go", "readme.md", "go.mod"}}
	o.matches = o.names

	o.query = "go"
	o.filter()
	require.NotEmpty(t, o.matches)
	for _, name := range o.matches {
		require.Contains(t, []string{"main.go", "go.mod"}, name)
	}

	o.query = ""
	o.filter()
	require.Equal(t, o.names, o.matches)
}
