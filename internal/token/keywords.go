package token

import "sort"

// SymbolSet is an immutable set of case-sensitive words.
type SymbolSet struct {
	words map[string]struct{}
}

// NewSymbolSet builds a set from the given words. Duplicates collapse.
func NewSymbolSet(words ...string) SymbolSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return SymbolSet{words: m}
}

// Contains reports whether word is in the set. Lookup is exact.
func (s SymbolSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s SymbolSet) Len() int { return len(s.words) }

// Union returns a new set holding the words of s plus extra.
func (s SymbolSet) Union(extra ...string) SymbolSet {
	words := s.Words()
	return NewSymbolSet(append(words, extra...)...)
}

// Words returns the members in sorted order.
func (s SymbolSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Reserved words and literals.
var keywords = []string{
	"break", "case", "catch", "continue", "default", "delete", "do", "else",
	"finally", "for", "function", "if", "in", "instanceof", "new", "return",
	"switch", "this", "throw", "try", "typeof", "var", "void", "while", "with",

	"true", "false", "null",
}

// Built-in objects and their popular properties.
var builtins = []string{
	// Object
	"Object", "prototype", "create", "defineProperty", "defineProperties",
	"getOwnPropertyDescriptor", "keys", "getOwnPropertyNames", "constructor",
	"__parent__", "__proto__", "__defineGetter__", "__defineSetter__", "eval",
	"hasOwnProperty", "isPrototypeOf", "__lookupGetter__", "__lookupSetter__",
	"__noSuchMethod__", "propertyIsEnumerable", "toSource", "toLocaleString",
	"toString", "unwatch", "valueOf", "watch",

	// Function
	"Function", "arguments", "arity", "caller", "length", "name", "apply",
	"bind", "call",

	// String
	"String", "fromCharCode", "charAt", "charCodeAt", "concat", "indexOf",
	"lastIndexOf", "localCompare", "match", "quote", "replace", "search",
	"slice", "split", "substr", "substring", "toLocaleLowerCase",
	"toLocaleUpperCase", "toLowerCase", "toUpperCase", "trim", "trimLeft",
	"trimRight",

	// Array
	"Array", "isArray", "index", "input", "pop", "push", "reverse", "shift",
	"sort", "splice", "unshift", "join", "filter", "forEach", "every", "map",
	"some", "reduce", "reduceRight",

	// RegExp
	"RegExp", "global", "ignoreCase", "lastIndex", "multiline", "source",
	"exec", "test",

	// JSON
	"JSON", "parse", "stringify",

	// global functions and values
	"decodeURI", "decodeURIComponent", "encodeURI", "encodeURIComponent",
	"isFinite", "isNaN", "parseFloat", "parseInt", "Infinity", "NaN",
	"undefined",

	// Math
	"Math", "E", "LN2", "LN10", "LOG2E", "LOG10E", "PI", "SQRT1_2", "SQRT2",
	"abs", "acos", "asin", "atan", "atan2", "ceil", "cos", "exp", "floor",
	"log", "max", "min", "pow", "random", "round", "sin", "sqrt", "tan",

	// browser
	"document", "window", "navigator", "userAgent",
}

// DefaultKeywords returns the reserved keyword set.
func DefaultKeywords() SymbolSet { return NewSymbolSet(keywords...) }

// DefaultBuiltIns returns the builtin identifier set.
func DefaultBuiltIns() SymbolSet { return NewSymbolSet(builtins...) }
