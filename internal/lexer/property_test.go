package lexer_test

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"jsedit/internal/lexer"
)

// alphabet is biased towards the characters that drive state changes.
var alphabet = []rune("ab_1 9/*'\"\\=+;(){}[]\tπé٣\u00a0")

func drawBlock(t *rapid.T, label string) []rune {
	return rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 40).Draw(t, label)
}

func drawState(t *rapid.T) lexer.State {
	return rapid.SampledFrom([]lexer.State{
		lexer.Start, lexer.Comment, lexer.String, lexer.Regex, lexer.State(7),
	}).Draw(t, "carryIn")
}

func TestRangesStayInsideBlock(t *testing.T) {
	lx := newTestLexer()
	rapid.Check(t, func(rt *rapid.T) {
		text := drawBlock(rt, "text")
		res := lx.Lex(text, drawState(rt))

		prevEnd := 0
		for _, r := range res.Ranges {
			if r.Length <= 0 {
				rt.Fatalf("empty range %v in %q", r, string(text))
			}
			if r.Offset < prevEnd {
				rt.Fatalf("range %v overlaps or precedes previous end %d in %q", r, prevEnd, string(text))
			}
			if r.End() > len(text) {
				rt.Fatalf("range %v exceeds block length %d in %q", r, len(text), string(text))
			}
			prevEnd = r.End()
		}
	})
}

func TestCarryOutIsStartOrComment(t *testing.T) {
	lx := newTestLexer()
	rapid.Check(t, func(rt *rapid.T) {
		res := lx.Lex(drawBlock(rt, "text"), drawState(rt))
		if res.CarryOut != lexer.Start && res.CarryOut != lexer.Comment {
			rt.Fatalf("carry-out = %v", res.CarryOut)
		}
	})
}

func TestLexIsPure(t *testing.T) {
	lx := newTestLexer()
	rapid.Check(t, func(rt *rapid.T) {
		text := drawBlock(rt, "text")
		in := drawState(rt)
		a := lx.Lex(text, in)
		b := lx.Lex(text, in)
		if !reflect.DeepEqual(a, b) {
			rt.Fatalf("lexing %q twice differs: %v vs %v", string(text), a, b)
		}
	})
}

func TestInvalidCarryInActsAsStart(t *testing.T) {
	lx := newTestLexer()
	rapid.Check(t, func(rt *rapid.T) {
		text := drawBlock(rt, "text")
		bogus := lexer.State(rapid.Int8Range(-128, 127).Filter(func(v int8) bool {
			return lexer.State(v) != lexer.Comment
		}).Draw(rt, "state"))
		if !reflect.DeepEqual(lx.Lex(text, bogus), lx.Lex(text, lexer.Start)) {
			rt.Fatalf("carry-in %v differs from start for %q", bogus, string(text))
		}
	})
}
