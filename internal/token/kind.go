package token

import (
	"fmt"
	"strings"
)

// Kind represents the visual category of a highlighted range.
type Kind uint8

const (
	// Normal is plain text; the lexer never emits it, it is the default colour.
	Normal Kind = iota
	// Comment covers line and block comments including delimiters.
	Comment
	// Number is a contiguous run of digits.
	Number
	// String covers quoted strings and regex literals.
	String
	// Operator is a single non-bracket punctuation character.
	Operator
	// Identifier is a plain identifier. Not emitted by the lexer (left Normal).
	Identifier
	// Keyword is a reserved word or literal (var, true, null).
	Keyword
	// BuiltIn is a well-known library name (push, Math, parseInt).
	BuiltIn
	// Marker is a search match painted over token styles.
	Marker
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{Normal, Comment, Number, String, Operator, Identifier, Keyword, BuiltIn, Marker}

var kindNames = [...]string{
	Normal:     "normal",
	Comment:    "comment",
	Number:     "number",
	String:     "string",
	Operator:   "operator",
	Identifier: "identifier",
	Keyword:    "keyword",
	BuiltIn:    "builtin",
	Marker:     "marker",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a name produced by String back to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Normal, fmt.Errorf("unknown token kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so kinds show up by name in
// JSON and TOML.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
