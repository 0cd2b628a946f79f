// Package token defines highlight token kinds, styled ranges and the symbol
// tables used to classify identifiers.
// Invariants:
//   - Range offsets and lengths count runes of the block text, not bytes.
//   - Kind is an output classification; it is independent of the lexer's
//     scanning state (a regex literal is reported as String).
//   - SymbolSet lookups are exact and case-sensitive.
package token
