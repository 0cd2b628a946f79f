// Package document stores the per-block highlight state of one script and
// keeps it current as lines change.
//
// Every block remembers the carry-out state its last lex produced. Editing a
// block re-lexes it with the carry-out of the block above, and the cascade
// continues downwards only while carry-outs keep changing, so typing inside
// an ordinary line touches one block and opening a "/*" touches every block
// down to the matching "*/".
//
// The mark overlay is kept separately from token ranges: changing the query
// recomputes markers for every block without lexing anything.
//
// A Document is not safe for concurrent use.
package document
