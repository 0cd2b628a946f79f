package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) <-chan struct{} {
	t.Helper()
	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	ch, err := w.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return ch
}

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(path, []byte("var a;"), 0o600))
	ch := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("var b;"), 0o600))
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(path, []byte("var a;"), 0o600))
	ch := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.js"), []byte("var b;"), 0o600))
	select {
	case <-ch:
		t.Fatal("unexpected signal for another file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	ch := startWatcher(t, path)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o600))
	}
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal")
	}
	select {
	case <-ch:
		t.Fatal("burst produced more than one signal")
	case <-time.After(300 * time.Millisecond):
	}
}
