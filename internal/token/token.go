package token

import "fmt"

// Range is a styled run of a block: Length runes starting at rune Offset.
// It annotates the text and never copies it.
type Range struct {
	Offset int  `json:"offset" msgpack:"o"`
	Length int  `json:"length" msgpack:"l"`
	Kind   Kind `json:"kind" msgpack:"k"`
}

// End returns the exclusive end offset.
func (r Range) End() int { return r.Offset + r.Length }

// Empty reports whether the range covers no runes.
func (r Range) Empty() bool { return r.Length <= 0 }

// Contains reports whether rune offset i lies inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Offset && i < r.End()
}

// Clip trims the range to [0, n). The result may be empty.
func (r Range) Clip(n int) Range {
	if r.Offset < 0 {
		r.Length += r.Offset
		r.Offset = 0
	}
	if r.End() > n {
		r.Length = n - r.Offset
	}
	if r.Length < 0 {
		r.Length = 0
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("%s[%d,%d)", r.Kind, r.Offset, r.End())
}
