// Package config loads jsedit.toml, the per-project highlighter settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"jsedit/internal/lexer"
	"jsedit/internal/mark"
	"jsedit/internal/style"
	"jsedit/internal/token"
)

// FileName is the name looked up by Find.
const FileName = "jsedit.toml"

// Config mirrors jsedit.toml.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Symbols SymbolsConfig `toml:"symbols"`
	Mark    mark.Query    `toml:"mark"`
	Cache   CacheConfig   `toml:"cache"`
}

// ThemeConfig selects a named theme and overrides single kinds on top of it.
//
//	[theme]
//	name = "monokai"
//	[theme.kinds]
//	keyword = { fg = "#ff8800" }
type ThemeConfig struct {
	Name  string                 `toml:"name"`
	Kinds map[string]style.Style `toml:"kinds"`
}

// SymbolsConfig extends (or with Replace, replaces) the built-in sets.
type SymbolsConfig struct {
	Keywords []string `toml:"keywords"`
	BuiltIns []string `toml:"builtins"`
	Replace  bool     `toml:"replace"`
}

// CacheConfig controls the on-disk cache of lexer states.
type CacheConfig struct {
	Enabled *bool  `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Manifest is a loaded jsedit.toml with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the settings used when no jsedit.toml exists.
func Default() Config {
	return Config{}
}

// Find walks up from startDir to locate jsedit.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest jsedit.toml. ok is false when none
// exists; that is not an error.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Load parses one config file.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name := range c.Theme.Kinds {
		if _, err := token.ParseKind(name); err != nil {
			return fmt.Errorf("[theme.kinds]: %w", err)
		}
	}
	for _, w := range append(append([]string(nil), c.Symbols.Keywords...), c.Symbols.BuiltIns...) {
		if strings.TrimSpace(w) == "" || strings.ContainsAny(w, " \t") {
			return fmt.Errorf("[symbols]: invalid word %q", w)
		}
	}
	return nil
}

// CacheEnabled reports whether the state cache is on; it is on by default.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// Styles resolves the theme. An explicit name (from a flag) takes precedence
// over the configured one.
func (c *Config) Styles(name string) (*style.Map, error) {
	if name == "" {
		name = c.Theme.Name
	}
	m, err := style.Theme(name)
	if err != nil {
		return nil, err
	}
	if err := m.Apply(c.Theme.Kinds); err != nil {
		return nil, err
	}
	return m, nil
}

// LexerOptions builds lexer options from the symbol settings.
func (c *Config) LexerOptions() lexer.Options {
	opts := lexer.DefaultOptions()
	if c.Symbols.Replace {
		opts.Keywords = token.NewSymbolSet(c.Symbols.Keywords...)
		opts.BuiltIns = token.NewSymbolSet(c.Symbols.BuiltIns...)
		return opts
	}
	opts.Keywords = opts.Keywords.Union(c.Symbols.Keywords...)
	opts.BuiltIns = opts.BuiltIns.Union(c.Symbols.BuiltIns...)
	return opts
}
