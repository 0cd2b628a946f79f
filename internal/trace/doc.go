// Package trace records what the highlighter does: which files were loaded
// or served from the cache, how many blocks an edit re-lexed, which state
// each block started and ended in.
//
//	jsedit highlight --trace=- --trace-level=detail app.js
//
// Levels gate scopes: LevelPhase emits driver and file events, LevelDetail
// adds document operations, LevelDebug adds one event per lexed block.
//
// The tracer and the current span travel through context, so files
// highlighted under a directory run nest below it:
//
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "highlight-file", trace.SpanFromContext(ctx))
//	defer span.File(path).End("")
package trace
