package lexer

// Cursor is a position inside one block of text.
type Cursor struct {
	Text []rune
	Off  int
}

// NewCursor creates a cursor at the beginning of text.
func NewCursor(text []rune) Cursor {
	return Cursor{Text: text}
}

// EOF reports whether the cursor is past the last rune.
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Text)
}

// Peek returns the current rune, or 0 at EOF.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.Text[c.Off]
}

// Peek2 returns the current and next rune; ok is false when fewer than two
// runes remain.
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.Off+1 >= len(c.Text) {
		return 0, 0, false
	}
	return c.Text[c.Off], c.Text[c.Off+1], true
}

// Prev returns the rune just before the cursor, or 0 at the start.
func (c *Cursor) Prev() rune {
	if c.Off <= 0 || c.Off > len(c.Text) {
		return 0
	}
	return c.Text[c.Off-1]
}

// Bump advances by one rune and returns the rune it stepped over.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.Text[c.Off]
	c.Off++
	return r
}

// Eat consumes the current rune if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Text[c.Off] == r {
		c.Off++
		return true
	}
	return false
}

// SkipToEnd moves the cursor past the last rune.
func (c *Cursor) SkipToEnd() {
	c.Off = len(c.Text)
}

// Mark is a saved cursor offset.
type Mark int

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = int(m)
}

// Len returns the number of runes between m and the cursor.
func (c *Cursor) Len(m Mark) int {
	return c.Off - int(m)
}
