package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsedit/internal/trace"
)

// ListFiles returns the files HighlightDir would process, sorted.
func ListFiles(dir string, exts []string) ([]string, error) {
	return listScriptFiles(dir, exts)
}

// listScriptFiles возвращает отсортированный список файлов с нужными
// расширениями в директории
func listScriptFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExts
	}
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// HighlightDir highlights every script file under dir in parallel. Blocks of a
// file are still lexed in order; only files run concurrently. A file that
// fails to load yields a result with Err set and does not stop the others.
func HighlightDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	files, err := listScriptFiles(dir, opts.Exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	opts.Tracer = tracer
	opts.lexer()
	span := trace.Begin(tracer, trace.ScopeDriver, "highlight-dir", trace.SpanFromContext(ctx)).File(dir)
	defer span.End(strconv.Itoa(len(files)) + " files")
	ctx = trace.WithSpan(ctx, span)

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))
	for _, path := range files {
		opts.emit(Event{File: path, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			opts.emit(Event{File: path, Status: StatusWorking})
			res, err := HighlightFile(gctx, path, opts)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				results[i] = FileResult{Path: path, Err: err}
				opts.emit(Event{File: path, Status: StatusError, Err: err})
				return nil
			}
			results[i] = *res
			opts.emit(Event{File: path, Status: StatusDone, Cached: res.Cached})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
