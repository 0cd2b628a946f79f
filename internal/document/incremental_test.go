package document

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var lineGen = rapid.SampledFrom([]string{
	"", "var a = 1;", "/* open", "close */", "x /* y */ z", "'str", "// c /*",
	"*/ var", "a / b", "push(\"s\")",
})

// TestIncrementalMatchesFullLex checks that any sequence of edits leaves the
// document in the state a fresh lex of its text would produce.
func TestIncrementalMatchesFullLex(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := New(Config{})
		d.SetText(strings.Join(rapid.SliceOfN(lineGen, 1, 6).Draw(rt, "initial"), "\n"))

		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for s := 0; s < steps; s++ {
			line := lineGen.Draw(rt, "line")
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				_, _ = d.SetLine(rapid.IntRange(0, d.Len()-1).Draw(rt, "at"), line)
			case 1:
				_, _ = d.InsertLine(rapid.IntRange(0, d.Len()).Draw(rt, "at"), line)
			case 2:
				_, _ = d.DeleteLine(rapid.IntRange(0, d.Len()-1).Draw(rt, "at"))
			}
		}

		fresh := New(Config{})
		fresh.SetText(d.Text())
		if !reflect.DeepEqual(d.States(), fresh.States()) {
			rt.Fatalf("states %v, fresh lex %v for %q", d.States(), fresh.States(), d.Text())
		}
		for i := 0; i < d.Len(); i++ {
			got, _ := d.Block(i)
			want, _ := fresh.Block(i)
			if !reflect.DeepEqual(got.Tokens, want.Tokens) || got.CarryIn != want.CarryIn {
				rt.Fatalf("block %d differs: %v vs %v", i, got, want)
			}
		}
	})
}

// TestSyncMatchesFullLex checks that syncing to any text gives the document
// a fresh lex of that text would produce.
func TestSyncMatchesFullLex(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := New(Config{})
		d.SetText(strings.Join(rapid.SliceOfN(lineGen, 1, 8).Draw(rt, "before"), "\n"))
		after := strings.Join(rapid.SliceOfN(lineGen, 1, 8).Draw(rt, "after"), "\n")

		if _, err := d.Sync(after); err != nil {
			rt.Fatalf("sync: %v", err)
		}
		if d.Text() != after {
			rt.Fatalf("text %q, want %q", d.Text(), after)
		}
		fresh := New(Config{})
		fresh.SetText(after)
		for i := 0; i < d.Len(); i++ {
			got, _ := d.Block(i)
			want, _ := fresh.Block(i)
			if !reflect.DeepEqual(got.Tokens, want.Tokens) || got.CarryIn != want.CarryIn || got.CarryOut != want.CarryOut {
				rt.Fatalf("block %d differs: %v vs %v", i, got, want)
			}
		}
	})
}
