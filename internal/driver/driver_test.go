package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsedit/internal/lexer"
	"jsedit/internal/mark"
	"jsedit/internal/style"
	"jsedit/internal/token"
)

const sample = "/* header\n   still comment */\nvar x = Math.max(1, 22); // tail\nvar s = \"done\";\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestHighlightFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", sample)
	res, err := HighlightFile(context.Background(), path, Options{Mark: mark.Query{Text: "x"}})
	require.NoError(t, err)

	assert.False(t, res.Cached)
	require.Equal(t, 5, res.Doc.Len())
	assert.Equal(t, []lexer.State{lexer.Comment, lexer.Start, lexer.Start, lexer.Start, lexer.Start}, res.Doc.States())

	b, err := res.Doc.Block(2)
	require.NoError(t, err)
	kinds := style.Kinds(len(b.Text), b.Ranges())
	assert.Equal(t, token.Keyword, kinds[0])
	assert.Equal(t, token.BuiltIn, kinds[8])
	assert.Equal(t, token.Marker, kinds[4])
	assert.NotEmpty(t, res.Timing.Phases)
}

func TestHighlightFileMissing(t *testing.T) {
	_, err := HighlightFile(context.Background(), filepath.Join(t.TempDir(), "nope.js"), Options{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHighlightFileCancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", sample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := HighlightFile(ctx, path, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCacheRoundTrip(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", sample)
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)
	opts := Options{Cache: cache}

	first, err := HighlightFile(context.Background(), path, opts)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := HighlightFile(context.Background(), path, opts)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Doc.Snapshot(), second.Doc.Snapshot())
	assert.Equal(t, first.Doc.States(), second.Doc.States())

	// другой набор ключевых слов: старые состояния не подходят
	kw := lexer.DefaultOptions()
	kw.Keywords = kw.Keywords.Union("x")
	third, err := HighlightFile(context.Background(), path, Options{Cache: cache, Lexer: lexer.New(kw)})
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestCacheIgnoresStalePayload(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", sample)
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	res, err := HighlightFile(context.Background(), path, Options{Cache: cache})
	require.NoError(t, err)

	symbols := symbolsDigest(lexer.DefaultOptions())
	key := cacheKey(res.File.Hash, symbols)
	var payload DiskPayload
	ok, err := cache.Get(key, &payload)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, usablePayload(&payload, res.File.Hash, symbols))

	payload.Schema++
	require.NoError(t, cache.Put(key, &payload))
	again, err := HighlightFile(context.Background(), path, Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, again.Cached)

	// the rewrite above replaced the stale entry
	again, err = HighlightFile(context.Background(), path, Options{Cache: cache})
	require.NoError(t, err)
	assert.True(t, again.Cached)
}

func TestDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "c"))
	require.NoError(t, err)
	key := Digest{1}
	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}))
	require.NoError(t, cache.Put(Digest{2}, &DiskPayload{Schema: diskCacheSchemaVersion}))

	n, err := cache.DropAll()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var out DiskPayload
	ok, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// пустой кеш: нечего удалять, но и ошибки нет
	n, err = cache.DropAll()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}))
	ok, err = cache.Get(key, &out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNilCache(t *testing.T) {
	var c *DiskCache
	require.NoError(t, c.Put(Digest{}, &DiskPayload{}))
	ok, err := c.Get(Digest{}, &DiskPayload{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHighlightDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.js", "var b = 2;\n")
	writeFile(t, dir, "a.js", "/* open\n")
	writeFile(t, dir, "sub/c.js", "x\n")
	writeFile(t, dir, "notes.txt", "var\n")
	writeFile(t, dir, ".hidden/d.js", "var\n")

	results, err := HighlightDir(context.Background(), dir, Options{Jobs: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	names := make([]string, len(results))
	for i, r := range results {
		require.NoError(t, r.Err)
		rel, err := filepath.Rel(dir, r.Path)
		require.NoError(t, err)
		names[i] = filepath.ToSlash(rel)
	}
	assert.Equal(t, []string{"a.js", "b.js", "sub/c.js"}, names)
	assert.Equal(t, lexer.Comment, results[0].Doc.States()[0])
}

func TestHighlightDirEmpty(t *testing.T) {
	results, err := HighlightDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSymbolsDigestDistinguishesSets(t *testing.T) {
	a := lexer.DefaultOptions()
	b := lexer.DefaultOptions()
	assert.Equal(t, symbolsDigest(a), symbolsDigest(b))

	// same words, different set
	b.Keywords, b.BuiltIns = b.BuiltIns, b.Keywords
	assert.NotEqual(t, symbolsDigest(a), symbolsDigest(b))
}

func TestHighlightDirEvents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var a;\n")
	writeFile(t, dir, "b.js", "var b;\n")

	events := make(chan Event, 16)
	_, err := HighlightDir(context.Background(), dir, Options{Events: events})
	require.NoError(t, err)
	close(events)

	counts := map[Status]int{}
	for ev := range events {
		counts[ev.Status]++
	}
	assert.Equal(t, map[Status]int{StatusQueued: 2, StatusWorking: 2, StatusDone: 2}, counts)

	files, err := ListFiles(dir, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
