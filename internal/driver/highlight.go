package driver

import (
	"context"
	"fmt"
	"strconv"

	"jsedit/internal/document"
	"jsedit/internal/observ"
	"jsedit/internal/source"
	"jsedit/internal/trace"
)

// FileResult is one highlighted file.
type FileResult struct {
	Path   string
	File   *source.File
	Doc    *document.Document
	Cached bool // states came from the disk cache
	Timing observ.Report
	Err    error // set by HighlightDir for files that failed to load
}

// HighlightFile loads path and highlights it.
func HighlightFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	timer := observ.NewTimer()
	idx := timer.Begin("load")
	f, err := source.Load(path)
	if err != nil {
		timer.End(idx, "failed")
		return nil, err
	}
	timer.End(idx, "")
	return highlight(ctx, f, opts, timer)
}

// HighlightSource highlights an already loaded file, e.g. one read from stdin.
func HighlightSource(ctx context.Context, f *source.File, opts Options) (*FileResult, error) {
	return highlight(ctx, f, opts, observ.NewTimer())
}

func highlight(ctx context.Context, f *source.File, opts Options, timer *observ.Timer) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	span := trace.Begin(tracer, trace.ScopeFile, "highlight-file", trace.SpanFromContext(ctx)).File(f.Path)

	lx := opts.lexer()
	doc := document.New(document.Config{
		Lexer:  lx,
		Mark:   opts.Mark,
		Tracer: tracer,
		Path:   f.Path,
		Parent: span,
	})
	res := &FileResult{Path: f.Path, File: f, Doc: doc}

	symbols := symbolsDigest(lx.Options())
	key := cacheKey(f.Hash, symbols)
	cacheable := opts.Cache != nil && f.Flags&source.FileVirtual == 0

	if cacheable {
		idx := timer.Begin("cache-read")
		res.Cached = restoreFromCache(opts.Cache, key, f, symbols, doc, tracer, span)
		timer.End(idx, strconv.FormatBool(res.Cached))
	}

	if !res.Cached {
		idx := timer.Begin("lex")
		n := doc.SetText(f.Text())
		timer.End(idx, fmt.Sprintf("%d blocks", n))

		if cacheable {
			idx = timer.Begin("cache-write")
			payload, err := docToDiskPayload(f.Path, f.Hash, symbols, doc)
			if err == nil {
				err = opts.Cache.Put(key, payload)
			}
			if err != nil {
				// кеш не критичен: файл уже подсвечен
				filePoint(tracer, span, "cache-write-failed", f.Path, err.Error())
			}
			timer.End(idx, "")
		}
	}

	res.Timing = timer.Report()
	span.Blocks(doc.Len()).End(cacheDetail(res.Cached))
	return res, nil
}

func cacheDetail(cached bool) string {
	if cached {
		return "cached"
	}
	return ""
}

func filePoint(t trace.Tracer, parent *trace.Span, name, path, detail string) {
	trace.Point(t, parent, trace.Event{Scope: trace.ScopeFile, Name: name, File: path, Detail: detail})
}

func restoreFromCache(c *DiskCache, key Digest, f *source.File, symbols Digest, doc *document.Document, tracer trace.Tracer, parent *trace.Span) bool {
	var payload DiskPayload
	ok, err := c.Get(key, &payload)
	switch {
	case err != nil:
		filePoint(tracer, parent, "cache-read-failed", f.Path, err.Error())
		return false
	case !ok:
		filePoint(tracer, parent, "cache-miss", f.Path, "")
		return false
	case !usablePayload(&payload, f.Hash, symbols):
		filePoint(tracer, parent, "cache-stale", f.Path, "")
		return false
	}
	if err := doc.Restore(f.Text(), payload.States); err != nil {
		filePoint(tracer, parent, "cache-rejected", f.Path, err.Error())
		return false
	}
	filePoint(tracer, parent, "cache-hit", f.Path, "")
	return true
}
