package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"jsedit/internal/document"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит состояния лексера по хешу содержимого файла на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached lexer output of one file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path string

	// Hashes for validation
	ContentHash Digest // sha256 of the normalized content
	SymbolsHash Digest // keyword and builtin sets the states were lexed with

	Lines  uint32
	States []document.BlockState
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не держать тысячи файлов рядом
	return filepath.Join(c.dir, "states", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (ok bool, err error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every cached snapshot and returns how many there were.
func (c *DiskCache) DropAll() (int, error) {
	if c == nil {
		return 0, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	states := filepath.Join(c.dir, "states")
	err := filepath.WalkDir(states, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(d.Name()) == ".mp" {
			n++
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}

	// переименовываем и удаляем, чтобы параллельный Get не увидел полкаталога
	old := states + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(states, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	if err := os.RemoveAll(old); err != nil {
		return n, err
	}
	return n, nil
}

// docToDiskPayload captures the lexer output of doc for caching.
func docToDiskPayload(path string, content, symbols Digest, doc *document.Document) (*DiskPayload, error) {
	lines, err := safecast.Conv[uint32](doc.Len())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: content,
		SymbolsHash: symbols,
		Lines:       lines,
		States:      doc.Snapshot(),
	}, nil
}

// usablePayload reports whether payload was produced for this content and
// symbol set by the current schema.
func usablePayload(payload *DiskPayload, content, symbols Digest) bool {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return false
	}
	if payload.ContentHash != content || payload.SymbolsHash != symbols {
		return false
	}
	return int(payload.Lines) == len(payload.States)
}
