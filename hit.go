package gadget

// columnAt maps an x offset within a line to a column. x is relative to the
// first rune (the caller subtracts padding). Widths accumulate left to right;
// the column advances while the accumulated width fits at or before x, so a
// pointer exactly on a rune's right edge lands after that rune. Pure for a
// pure measure.
func columnAt(measure func(string) int, line []rune, x int) int {
	col, acc := 0, 0
	for _, r := range line {
		w := measure(string(r))
		if acc+w > x {
			break
		}
		acc += w
		col++
	}
	return col
}

// rowAt maps a y offset within the viewport to a row, given the current
// scroll offset in pixels, clamped into [0, nlines-1].
func rowAt(y, scroll, lineHeight, nlines int) int {
	return clamp((y+scroll)/lineHeight, 0, nlines-1)
}

// clampScroll adjusts a vertical scroll offset so the cursor row is visible:
// a row above the viewport is brought to the top, a row below to the bottom,
// anything already visible leaves scroll unchanged.
func clampScroll(scroll, row, lineHeight, viewHeight int) int {
	top := row * lineHeight
	if top < scroll {
		return top
	}
	if bottom := top + lineHeight; bottom > scroll+viewHeight {
		return bottom - viewHeight
	}
	return scroll
}

// clampFieldOffset is the horizontal counterpart for single-line fields:
// it keeps the caret x position within the visible width.
func clampFieldOffset(offset, caretX, viewWidth int) int {
	if caretX < offset {
		return caretX
	}
	if caretX > offset+viewWidth {
		return caretX - viewWidth
	}
	return offset
}
