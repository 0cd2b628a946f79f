// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"jsedit/internal/document"
	"jsedit/internal/lexer"
	"jsedit/internal/token"
)

// CheckTokenInvariants checks lexer output for a block of n runes:
// 1) every range is non-empty and inside [0, n)
// 2) ranges are ordered and do not overlap
func CheckTokenInvariants(ranges []token.Range, n int) error {
	prevEnd := 0
	for i, r := range ranges {
		if r.Length <= 0 {
			return fmt.Errorf("range %d %v is empty", i, r)
		}
		if r.Offset < 0 || r.End() > n {
			return fmt.Errorf("range %d %v outside block of %d runes", i, r, n)
		}
		if r.Offset < prevEnd {
			return fmt.Errorf("range %d %v overlaps previous end %d", i, r, prevEnd)
		}
		prevEnd = r.End()
	}
	return nil
}

// CheckMarkInvariants checks marker ranges for a block of n runes. Markers
// may overlap each other; they must be in bounds, ascending by offset and
// of the Marker kind.
func CheckMarkInvariants(marks []token.Range, n int) error {
	prev := -1
	for i, r := range marks {
		if r.Kind != token.Marker {
			return fmt.Errorf("mark %d has kind %s", i, r.Kind)
		}
		if r.Length <= 0 || r.Offset < 0 || r.End() > n {
			return fmt.Errorf("mark %d %v outside block of %d runes", i, r, n)
		}
		if r.Offset <= prev {
			return fmt.Errorf("mark %d %v not after offset %d", i, r, prev)
		}
		prev = r.Offset
	}
	return nil
}

// CheckDocumentInvariants runs the block checks over a whole document and
// verifies the state chain:
// 1) the first block starts in Start
// 2) every other block's carry-in is its predecessor's carry-out
// 3) carry-outs are Start or Comment
func CheckDocumentInvariants(doc *document.Document) error {
	prevOut := lexer.Start
	for i := 0; i < doc.Len(); i++ {
		b, err := doc.Block(i)
		if err != nil {
			return err
		}
		if b.CarryIn != prevOut {
			return fmt.Errorf("line %d: carry-in %v, previous carry-out %v", i+1, b.CarryIn, prevOut)
		}
		if b.CarryOut != lexer.Start && b.CarryOut != lexer.Comment {
			return fmt.Errorf("line %d: carry-out %v", i+1, b.CarryOut)
		}
		if err := CheckTokenInvariants(b.Tokens, len(b.Text)); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := CheckMarkInvariants(b.Marks, len(b.Text)); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		prevOut = b.CarryOut
	}
	return nil
}
