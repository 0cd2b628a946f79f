// Package mark finds every occurrence of a search query inside a block and
// reports them as Marker ranges. It runs after tokenization and knows nothing
// about token kinds.
package mark

import (
	"unicode"

	"jsedit/internal/token"
)

// Query is the text to mark. The zero Query marks nothing.
type Query struct {
	Text          string `toml:"query"`
	CaseSensitive bool   `toml:"case_sensitive"`
}

// Empty reports whether the query marks nothing.
func (q Query) Empty() bool { return q.Text == "" }

// Find returns a Marker range for each match of q in text, overlapping
// matches included: after a match at p the search resumes at p+1, so "aa"
// in "aaa" matches at 0 and 1.
func Find(text []rune, q Query) []token.Range {
	if q.Empty() {
		return nil
	}
	needle := []rune(q.Text)
	var out []token.Range
	for pos := 0; ; pos++ {
		pos = index(text, needle, pos, q.CaseSensitive)
		if pos < 0 {
			return out
		}
		out = append(out, token.Range{Offset: pos, Length: len(needle), Kind: token.Marker})
	}
}

// FindString is Find over a string.
func FindString(text string, q Query) []token.Range {
	return Find([]rune(text), q)
}

// index returns the first match of needle in text at or after from, or -1.
func index(text, needle []rune, from int, caseSensitive bool) int {
	last := len(text) - len(needle)
	for i := from; i <= last; i++ {
		if matchAt(text[i:], needle, caseSensitive) {
			return i
		}
	}
	return -1
}

func matchAt(text, needle []rune, caseSensitive bool) bool {
	for j, r := range needle {
		c := text[j]
		if c == r {
			continue
		}
		if caseSensitive || fold(c) != fold(r) {
			return false
		}
	}
	return true
}

// fold maps r to the smallest rune of its simple case-folding orbit, so two
// runes match case-insensitively iff their folds are equal. Folding is rune
// for rune: "ß" does not match "ss".
func fold(r rune) rune {
	min := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < min {
			min = f
		}
	}
	return min
}
