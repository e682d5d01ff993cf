// Package cursor provides the character buffer the grammar engine consumes.
//
// The buffer is a flat rune sequence with a single advancing position.
// Runes rather than bytes: titles and summary labels are free text, and the
// diagnostic formatter counts columns in characters.
package cursor

import "unicode"

// Cursor wraps source text as a random-accessible rune sequence plus an
// advancing position.
type Cursor struct {
	src []rune
	pos int
}

// New returns a Cursor over the given source text. The text is copied into
// a rune slice; the cursor keeps no reference to the input string.
func New(input string) *Cursor {
	return &Cursor{src: []rune(input)}
}

// Pos returns the current position. It can exceed Len after advancing past
// the end; the monotonically increasing value is what error placement uses.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of runes in the source.
func (c *Cursor) Len() int {
	return len(c.src)
}

// Source returns the underlying rune sequence. The diagnostic formatter
// replays it to derive line and column.
func (c *Cursor) Source() []rune {
	return c.src
}

// Advance returns the rune at the current position and increments the
// position unconditionally, even past the end. Past the end it returns
// ok=false.
func (c *Cursor) Advance() (rune, bool) {
	if c.pos >= len(c.src) {
		c.pos++
		return 0, false
	}
	r := c.src[c.pos]
	c.pos++
	return r, true
}

// Peek returns the rune n positions ahead without moving the cursor.
// Peek(1) is the next unconsumed rune. Past the end it returns ok=false.
func (c *Cursor) Peek(n int) (rune, bool) {
	idx := c.pos + n - 1
	if idx >= len(c.src) {
		return 0, false
	}
	return c.src[idx], true
}

// Rewind moves the position back by n, stopping at zero. The grammar engine
// uses it to point a diagnostic at the offending character rather than past
// it, and to un-consume an overflowing digit run.
func (c *Cursor) Rewind(n int) {
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}

// SkipSpaces advances past consecutive spaces and tabs, stopping before the
// first other character.
func (c *Cursor) SkipSpaces() {
	for {
		r, ok := c.Peek(1)
		if !ok || !isSpace(r) {
			return
		}
		c.Advance()
	}
}

// SkipSpacesAndNewlines advances past spaces, tabs, newlines and other
// control characters, stopping before the first printable character.
func (c *Cursor) SkipSpacesAndNewlines() {
	for {
		r, ok := c.Peek(1)
		if !ok || !isSpaceOrNewline(r) {
			return
		}
		c.Advance()
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isSpaceOrNewline(r rune) bool {
	return isSpace(r) || r == '\n' || r == '\r' || unicode.IsControl(r)
}
