package gadget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func measure10(s string) int {
	return 10 * len([]rune(s))
}

func TestColumnAtBoundaries(t *testing.T) {
	line := []rune("hi")
	pad := 5

	// pointer x=12 with 5px padding: still before the first rune's right edge
	require.Equal(t, 0, columnAt(measure10, line, 12-pad))
	// exactly on the boundary advances to the next column
	require.Equal(t, 1, columnAt(measure10, line, 15-pad))
	require.Equal(t, 1, columnAt(measure10, line, 16-pad))

	// past the end of the line stops at line end
	require.Equal(t, 2, columnAt(measure10, line, 99))
	// left of the first rune
	require.Equal(t, 0, columnAt(measure10, line, -3))
	// empty line
	require.Equal(t, 0, columnAt(measure10, nil, 40))
}

func TestRowAtClamps(t *testing.T) {
	require.Equal(t, 0, rowAt(0, 0, 16, 3))
	require.Equal(t, 1, rowAt(17, 0, 16, 3))
	require.Equal(t, 2, rowAt(5, 40, 16, 3))
	require.Equal(t, 2, rowAt(500, 0, 16, 3))
	require.Equal(t, 0, rowAt(-20, 0, 16, 3))
}

func TestClampScrollKeepsCursorRowVisible(t *testing.T) {
	// row above the viewport scrolls up to its top
	require.Equal(t, 32, clampScroll(80, 2, 16, 48))
	// row below scrolls down so its bottom meets the viewport bottom
	require.Equal(t, 32, clampScroll(0, 4, 16, 48))
	// visible row leaves scroll unchanged
	require.Equal(t, 16, clampScroll(16, 2, 16, 48))
	require.Equal(t, 0, clampScroll(0, 0, 16, 48))
}

func TestClampFieldOffsetKeepsCaretVisible(t *testing.T) {
	require.Equal(t, 30, clampFieldOffset(50, 30, 100))
	require.Equal(t, 60, clampFieldOffset(0, 160, 100))
	require.Equal(t, 20, clampFieldOffset(20, 70, 100))
}
