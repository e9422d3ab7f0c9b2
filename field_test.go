package gadget

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func testField() *Field {
	return &Field{R: image.Rect(0, 0, 120, 26)}
}

func TestFieldFocusCommitStateMachine(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	var commits []string
	ui.Commit = func(s string) { commits = append(commits, s) }

	// unfocused: keys ignored
	r := ui.Key(env, 'x')
	require.False(t, r.Consumed)
	require.Equal(t, "", ui.Text())

	// press inside -> focused
	press(env, ui, image.Pt(10, 10))
	require.True(t, ui.Focused())

	ui.Key(env, 'h')
	ui.Key(env, 'i')
	require.Equal(t, "hi", ui.Text())

	// commit key fires Commit once and unfocuses
	r = ui.Key(env, '\n')
	require.True(t, r.Consumed)
	require.False(t, ui.Focused())
	require.Equal(t, []string{"hi"}, commits)

	// unfocused again: keys ignored
	r = ui.Key(env, 'x')
	require.False(t, r.Consumed)
	require.Equal(t, "hi", ui.Text())
}

func TestFieldPressOutsideUnfocusesWithoutCommit(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	commits := 0
	ui.Commit = func(string) { commits++ }

	press(env, ui, image.Pt(10, 10))
	release(env, ui, image.Pt(10, 10))
	require.True(t, ui.Focused())

	press(env, ui, image.Pt(300, 10))
	require.False(t, ui.Focused())
	require.Zero(t, commits)
}

func TestFieldEscapeCancelsWithoutCommit(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	commits := 0
	ui.Commit = func(string) { commits++ }

	press(env, ui, image.Pt(10, 10))
	ui.Key(env, 'a')
	r := ui.Key(env, KeyEscape)
	require.True(t, r.Consumed)
	require.False(t, ui.Focused())
	require.Zero(t, commits)
	// edits stay; Changed already reported them
	require.Equal(t, "a", ui.Text())
}

func TestFieldChangedPerEdit(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	var texts []string
	ui.Changed = func(s string) { texts = append(texts, s) }

	press(env, ui, image.Pt(10, 10))
	ui.Key(env, 'a')
	ui.Key(env, 'b')
	ui.Key(env, KeyBackspace)
	require.Equal(t, []string{"a", "ab", "a"}, texts)

	n := len(texts)
	ui.Key(env, KeyLeft)
	ui.Key(env, KeyEnd)
	require.Len(t, texts, n)
}

func TestFieldNewlineNeverSplits(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	press(env, ui, image.Pt(10, 10))
	ui.Key(env, 'a')
	ui.Key(env, '\n')
	require.Equal(t, 1, ui.buf().Lines())

	press(env, ui, image.Pt(28, 10)) // past the text: cursor at the end
	ui.Key(env, 'b')
	require.Equal(t, "ab", ui.Text())
	require.Equal(t, 1, ui.buf().Lines())
}

func TestFieldVerticalArrowsIgnored(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	press(env, ui, image.Pt(10, 10))

	r := ui.Key(env, KeyUp)
	require.False(t, r.Consumed)
	r = ui.Key(env, KeyDown)
	require.False(t, r.Consumed)
}

func TestFieldClickPlacesCursor(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField()
	ui.SetText("hello")

	// content starts at x=5; 23px into the text is column 2
	press(env, ui, image.Pt(28, 10))
	_, col := ui.buf().Cursor()
	require.Equal(t, 2, col)
}

func TestFieldOffsetFollowsCaret(t *testing.T) {
	env, _ := newTestEnv()
	ui := testField() // content width 110
	ui.SetText("abcdefghijklmnop")

	press(env, ui, image.Pt(10, 10))
	ui.Key(env, KeyEnd)
	// caret at 160px, view 110px wide
	require.Equal(t, 50, ui.offset)

	ui.Key(env, KeyHome)
	require.Equal(t, 0, ui.offset)
}
