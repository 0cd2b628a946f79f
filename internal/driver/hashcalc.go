package driver

import (
	"crypto/sha256"

	"jsedit/internal/lexer"
)

// Digest is a SHA-256 value.
type Digest = [32]byte

// combineDigest: H(content || part1 || part2 ...).
func combineDigest(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// symbolsDigest identifies the keyword and builtin sets. Lexer output depends
// on them, so cached states are only valid under the same digest.
func symbolsDigest(opts lexer.Options) Digest {
	h := sha256.New()
	for _, w := range opts.Keywords.Words() {
		_, _ = h.Write([]byte(w))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{1})
	for _, w := range opts.BuiltIns.Words() {
		_, _ = h.Write([]byte(w))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey addresses the cache entry of a file's content under a symbol set.
func cacheKey(content, symbols Digest) Digest {
	return combineDigest(content, symbols)
}
