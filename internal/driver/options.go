// Package driver highlights script files and directories, optionally reusing
// lexer states stored in the on-disk cache.
package driver

import (
	"jsedit/internal/lexer"
	"jsedit/internal/mark"
	"jsedit/internal/trace"
)

// Options controls HighlightFile and HighlightDir.
type Options struct {
	// Lexer is shared by every file; nil means the default symbol sets.
	Lexer *lexer.Lexer
	// Mark is applied to every document.
	Mark mark.Query
	// Cache stores lexer states between runs; nil disables it.
	Cache *DiskCache
	// Tracer overrides the tracer carried by the context.
	Tracer trace.Tracer
	// Jobs limits concurrent files in HighlightDir; <= 0 means GOMAXPROCS.
	Jobs int
	// Exts lists the file extensions HighlightDir picks up.
	Exts []string
	// Events receives per-file progress from HighlightDir when set. The
	// channel is not closed by the driver.
	Events chan<- Event
}

// DefaultExts are the extensions HighlightDir scans when Options.Exts is empty.
var DefaultExts = []string{".js"}

func (o *Options) lexer() *lexer.Lexer {
	if o.Lexer == nil {
		o.Lexer = lexer.New(lexer.DefaultOptions())
	}
	return o.Lexer
}
