package gadget

import (
	"strings"
)

// Buffer is the text/cursor model shared by TextArea and Field: an ordered
// sequence of lines (never empty, minimum one possibly empty line) plus a
// (row, col) cursor. Row indexes lines, col indexes rune positions within the
// current line and may equal the line length (cursor after the last rune).
//
// Changed is called with the full joined text exactly once per call that
// changes committed text, after the mutation. Pure cursor movement never
// fires it.
type Buffer struct {
	Changed func(text string)

	lines [][]rune
	row   int
	col   int
}

// NewBuffer returns a buffer holding text, split on newlines, with the cursor
// at the end of the content.
func NewBuffer(text string) *Buffer {
	b := &Buffer{lines: splitLines(text)}
	b.row = len(b.lines) - 1
	b.col = len(b.lines[b.row])
	return b
}

func splitLines(s string) [][]rune {
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// Text returns the buffer contents with lines joined by newlines.
func (b *Buffer) Text() string {
	b.init()
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// SetText replaces the contents and puts the cursor at the end of the new
// content. Changed fires unless the joined text is identical to the current
// contents.
func (b *Buffer) SetText(text string) {
	b.init()
	same := b.Text() == text
	b.lines = splitLines(text)
	b.row = len(b.lines) - 1
	b.col = len(b.lines[b.row])
	if !same {
		b.changed()
	}
}

// Lines returns the number of lines, always at least 1.
func (b *Buffer) Lines() int {
	b.init()
	return len(b.lines)
}

// Line returns line i, clamped into range.
func (b *Buffer) Line(i int) string {
	b.init()
	return string(b.lines[clamp(i, 0, len(b.lines)-1)])
}

// Cursor returns the current (row, col) position.
func (b *Buffer) Cursor() (row, col int) {
	b.init()
	return b.row, b.col
}

// SetCursor moves the cursor, clamping row and col into range.
func (b *Buffer) SetCursor(row, col int) {
	b.init()
	b.row = clamp(row, 0, len(b.lines)-1)
	b.col = clamp(col, 0, len(b.lines[b.row]))
}

// InsertRune splices r into the current line at the cursor and advances the
// cursor past it.
func (b *Buffer) InsertRune(r rune) {
	b.init()
	line := b.lines[b.row]
	line = append(line[:b.col:b.col], append([]rune{r}, line[b.col:]...)...)
	b.lines[b.row] = line
	b.col++
	b.changed()
}

// InsertNewline splits the current line at the cursor; the remainder becomes
// a new line below and the cursor moves to its start.
func (b *Buffer) InsertNewline() {
	b.init()
	line := b.lines[b.row]
	rest := append([]rune{}, line[b.col:]...)
	b.lines[b.row] = line[:b.col:b.col]
	b.lines = append(b.lines[:b.row+1], append([][]rune{rest}, b.lines[b.row+1:]...)...)
	b.row++
	b.col = 0
	b.changed()
}

// DeleteBackward removes the rune left of the cursor. At the start of a line
// it joins the line onto the previous one, placing the cursor at the join
// point. At the start of the buffer it does nothing and does not fire Changed.
func (b *Buffer) DeleteBackward() {
	b.init()
	switch {
	case b.col > 0:
		line := b.lines[b.row]
		b.lines[b.row] = append(line[:b.col-1], line[b.col:]...)
		b.col--
	case b.row > 0:
		prev := b.lines[b.row-1]
		b.col = len(prev)
		b.lines[b.row-1] = append(prev, b.lines[b.row]...)
		b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
		b.row--
	default:
		return
	}
	b.changed()
}

// DeleteForward removes the rune under the cursor. At the end of a line it
// joins the next line onto this one, cursor unchanged. At the end of the
// buffer it does nothing and does not fire Changed.
func (b *Buffer) DeleteForward() {
	b.init()
	line := b.lines[b.row]
	switch {
	case b.col < len(line):
		b.lines[b.row] = append(line[:b.col], line[b.col+1:]...)
	case b.row < len(b.lines)-1:
		b.lines[b.row] = append(line, b.lines[b.row+1]...)
		b.lines = append(b.lines[:b.row+1], b.lines[b.row+2:]...)
	default:
		return
	}
	b.changed()
}

// MoveLeft moves the cursor one position left, wrapping to the end of the
// previous line. No-op at the start of the buffer.
func (b *Buffer) MoveLeft() {
	b.init()
	switch {
	case b.col > 0:
		b.col--
	case b.row > 0:
		b.row--
		b.col = len(b.lines[b.row])
	}
}

// MoveRight moves the cursor one position right, wrapping to the start of the
// next line. No-op at the end of the buffer.
func (b *Buffer) MoveRight() {
	b.init()
	switch {
	case b.col < len(b.lines[b.row]):
		b.col++
	case b.row < len(b.lines)-1:
		b.row++
		b.col = 0
	}
}

// MoveUp moves to the previous line, clamping the column to that line's
// length. The original column is not remembered across the clamp.
func (b *Buffer) MoveUp() {
	b.init()
	if b.row == 0 {
		return
	}
	b.row--
	b.col = min(b.col, len(b.lines[b.row]))
}

// MoveDown moves to the next line, clamping the column like MoveUp.
func (b *Buffer) MoveDown() {
	b.init()
	if b.row == len(b.lines)-1 {
		return
	}
	b.row++
	b.col = min(b.col, len(b.lines[b.row]))
}

// MoveLineStart moves the cursor to column 0.
func (b *Buffer) MoveLineStart() {
	b.init()
	b.col = 0
}

// MoveLineEnd moves the cursor past the last rune of the current line.
func (b *Buffer) MoveLineEnd() {
	b.init()
	b.col = len(b.lines[b.row])
}

func (b *Buffer) init() {
	if b.lines == nil {
		b.lines = [][]rune{{}}
	}
}

func (b *Buffer) changed() {
	if b.Changed != nil {
		b.Changed(b.Text())
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
