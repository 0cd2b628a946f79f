package document

import (
	"fmt"
	"strings"

	"jsedit/internal/lexer"
	"jsedit/internal/token"
	"jsedit/internal/trace"
)

// BlockState is the persisted part of a block: what the lexer produced for it.
type BlockState struct {
	CarryOut lexer.State   `msgpack:"s"`
	Tokens   []token.Range `msgpack:"t"`
}

// Snapshot returns the lexer output of every block.
func (d *Document) Snapshot() []BlockState {
	out := make([]BlockState, len(d.blocks))
	for i := range d.blocks {
		out[i] = BlockState{
			CarryOut: d.blocks[i].CarryOut,
			Tokens:   append([]token.Range(nil), d.blocks[i].Tokens...),
		}
	}
	return out
}

// Restore installs text together with previously saved lexer output instead
// of lexing it. The states must come from a Snapshot of the same text under
// the same symbol sets; a state list that cannot belong to text is rejected
// with ErrSnapshotMismatch and the document is left unchanged. Markers are
// recomputed for the current query.
func (d *Document) Restore(text string, states []BlockState) error {
	lines := strings.Split(text, "\n")
	if len(lines) != len(states) {
		return fmt.Errorf("%w: %d lines, %d states", ErrSnapshotMismatch, len(lines), len(states))
	}

	blocks := make([]Block, len(lines))
	in := lexer.Start
	for i, line := range lines {
		st := states[i]
		b := Block{Text: []rune(line), CarryIn: in, CarryOut: st.CarryOut}
		if err := validTokens(st.Tokens, len(b.Text)); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrSnapshotMismatch, i+1, err)
		}
		if st.CarryOut != lexer.Start && st.CarryOut != lexer.Comment {
			return fmt.Errorf("%w: line %d: carry-out %v", ErrSnapshotMismatch, i+1, st.CarryOut)
		}
		b.Tokens = append([]token.Range(nil), st.Tokens...)
		blocks[i] = b
		in = st.CarryOut
	}

	d.blocks = blocks
	n := d.remarkAll()
	trace.Point(d.tracer, d.parent, trace.Event{
		Scope:  trace.ScopeDocument,
		Name:   "restore",
		File:   d.path,
		Blocks: n,
	})
	return nil
}

func validTokens(ranges []token.Range, n int) error {
	prevEnd := 0
	for _, r := range ranges {
		if r.Length <= 0 || r.Offset < prevEnd || r.End() > n {
			return fmt.Errorf("range %v does not fit block of %d runes", r, n)
		}
		prevEnd = r.End()
	}
	return nil
}
