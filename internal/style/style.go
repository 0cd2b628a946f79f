// Package style maps token kinds to colours and renders highlighted blocks
// for the terminal.
package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"jsedit/internal/token"
)

// ErrUnknownTheme is returned for a theme name that is neither built in nor
// a chroma style.
var ErrUnknownTheme = errors.New("unknown theme")

// Style is a colour pair. Empty fields inherit the terminal default. Colours
// are "#rrggbb" or an ANSI index such as "6".
type Style struct {
	Foreground string `toml:"fg" json:"fg,omitempty"`
	Background string `toml:"bg" json:"bg,omitempty"`
}

// IsZero reports whether the style changes nothing.
func (s Style) IsZero() bool { return s.Foreground == "" && s.Background == "" }

// Map assigns a Style to every token kind. Changing it never requires
// re-lexing: classification does not depend on colours.
type Map struct {
	styles map[token.Kind]Style
}

// Get returns the style of kind k.
func (m *Map) Get(k token.Kind) Style {
	return m.styles[k]
}

// Set changes the style of kind k.
func (m *Map) Set(k token.Kind, s Style) {
	if m.styles == nil {
		m.styles = make(map[token.Kind]Style, len(token.Kinds))
	}
	m.styles[k] = s
}

// Apply overlays per-kind styles keyed by kind name ("keyword", "marker").
// Empty fields of an override keep the current value.
func (m *Map) Apply(overrides map[string]Style) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k, err := token.ParseKind(name)
		if err != nil {
			return fmt.Errorf("theme override: %w", err)
		}
		cur := m.Get(k)
		o := overrides[name]
		if o.Foreground != "" {
			cur.Foreground = o.Foreground
		}
		if o.Background != "" {
			cur.Background = o.Background
		}
		m.Set(k, cur)
	}
	return nil
}

// Default returns the classic scheme, meant for a light background.
func Default() *Map {
	m := &Map{}
	m.Set(token.Normal, Style{Foreground: "#000000"})
	m.Set(token.Comment, Style{Foreground: "#808080"})
	m.Set(token.Number, Style{Foreground: "#008000"})
	m.Set(token.String, Style{Foreground: "#800000"})
	m.Set(token.Operator, Style{Foreground: "#808000"})
	m.Set(token.Identifier, Style{Foreground: "#000020"})
	m.Set(token.Keyword, Style{Foreground: "#000080"})
	m.Set(token.BuiltIn, Style{Foreground: "#008080"})
	m.Set(token.Marker, Style{Foreground: "#000000", Background: "#ffff00"})
	return m
}

// Terminal returns a scheme built from the 16 ANSI colours so that it reads
// on light and dark terminals alike. Plain text keeps the terminal colours.
func Terminal() *Map {
	m := &Map{}
	m.Set(token.Comment, Style{Foreground: "8"})
	m.Set(token.Number, Style{Foreground: "2"})
	m.Set(token.String, Style{Foreground: "1"})
	m.Set(token.Operator, Style{Foreground: "3"})
	m.Set(token.Keyword, Style{Foreground: "4"})
	m.Set(token.BuiltIn, Style{Foreground: "6"})
	m.Set(token.Marker, Style{Foreground: "0", Background: "11"})
	return m
}

var chromaTypes = map[token.Kind]chroma.TokenType{
	token.Normal:     chroma.Text,
	token.Comment:    chroma.Comment,
	token.Number:     chroma.LiteralNumber,
	token.String:     chroma.LiteralString,
	token.Operator:   chroma.Operator,
	token.Identifier: chroma.Name,
	token.Keyword:    chroma.Keyword,
	token.BuiltIn:    chroma.NameBuiltin,
}

// FromChroma derives a map from a named chroma style ("monokai",
// "github"...). Kinds the style leaves uncoloured inherit the terminal
// default; markers use the style's line highlight colour.
func FromChroma(name string) (*Map, error) {
	cs, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	m := &Map{}
	for k, tt := range chromaTypes {
		entry := cs.Get(tt)
		s := Style{}
		if entry.Colour.IsSet() {
			s.Foreground = entry.Colour.String()
		}
		m.Set(k, s)
	}
	marker := Style{Foreground: m.Get(token.Normal).Foreground, Background: "#ffff00"}
	if hl := cs.Get(chroma.LineHighlight); hl.Background.IsSet() {
		marker.Background = hl.Background.String()
	}
	m.Set(token.Marker, marker)
	return m, nil
}

// DefaultTheme is used when neither --theme nor [theme] name is set. The
// ANSI palette follows the terminal's own colours, so plain text stays
// readable on dark backgrounds where the classic black would vanish.
const DefaultTheme = "terminal"

// Theme resolves a theme name: "terminal" (also for ""), "classic" (the
// light-background scheme of Default), or any chroma style name.
func Theme(name string) (*Map, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Default(), nil
	case "", DefaultTheme:
		return Terminal(), nil
	default:
		return FromChroma(name)
	}
}

// ThemeNames lists every name Theme accepts.
func ThemeNames() []string {
	return append([]string{DefaultTheme, "classic"}, styles.Names()...)
}
