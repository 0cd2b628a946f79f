package document

import (
	"jsedit/internal/lexer"
	"jsedit/internal/token"
)

// Block is one line of a document together with its highlight state.
type Block struct {
	Text     []rune
	CarryIn  lexer.State
	CarryOut lexer.State
	Tokens   []token.Range // from the lexer, ordered and disjoint
	Marks    []token.Range // from the mark overlay
}

// String returns the block text.
func (b *Block) String() string { return string(b.Text) }

// Ranges returns token ranges followed by marker ranges. Painting them in
// order lets markers win over token styles.
func (b *Block) Ranges() []token.Range {
	out := make([]token.Range, 0, len(b.Tokens)+len(b.Marks))
	out = append(out, b.Tokens...)
	return append(out, b.Marks...)
}

func (b *Block) clone() Block {
	c := *b
	c.Text = append([]rune(nil), b.Text...)
	c.Tokens = append([]token.Range(nil), b.Tokens...)
	c.Marks = append([]token.Range(nil), b.Marks...)
	return c
}
