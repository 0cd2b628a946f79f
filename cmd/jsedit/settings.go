package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsedit/internal/config"
	"jsedit/internal/driver"
	"jsedit/internal/lexer"
	"jsedit/internal/mark"
	"jsedit/internal/style"
)

const cacheApp = "jsedit"

// settings is everything a command needs, resolved from jsedit.toml and flags.
type settings struct {
	cfg     config.Config
	styles  *style.Map
	lexer   *lexer.Lexer
	mark    mark.Query
	cache   *driver.DiskCache
	timings bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	themeName, err := flags.GetString("theme")
	if err != nil {
		return nil, fmt.Errorf("failed to get theme flag: %w", err)
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	s := &settings{timings: timings}
	if s.cfg, _, err = loadConfig(cmd); err != nil {
		return nil, err
	}

	if s.styles, err = s.cfg.Styles(themeName); err != nil {
		return nil, err
	}
	s.lexer = lexer.New(s.cfg.LexerOptions())
	s.mark = s.cfg.Mark

	if !noCache && s.cfg.CacheEnabled() {
		if s.cache, err = openStateCache(s.cfg); err != nil {
			// без кеша работаем медленнее, но работаем
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: state cache disabled: %v\n", err)
			s.cache = nil
		}
	}
	return s, nil
}

// loadConfig reads --config, or the nearest jsedit.toml above the working
// directory, or falls back to defaults. The second result is the file used.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, "", err
		}
		return cfg, configPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", err
	}
	m, ok, err := config.Discover(wd)
	if err != nil {
		return config.Config{}, "", err
	}
	if !ok {
		return config.Default(), "", nil
	}
	return m.Config, m.Path, nil
}

// openStateCache opens [cache] dir, or the per-user cache directory.
func openStateCache(cfg config.Config) (*driver.DiskCache, error) {
	if cfg.Cache.Dir != "" {
		return driver.OpenDiskCacheAt(cfg.Cache.Dir)
	}
	return driver.OpenDiskCache(cacheApp)
}

// applyMarkFlags lets --mark and --case-sensitive override the configured
// query.
func (s *settings) applyMarkFlags(cmd *cobra.Command) error {
	if cmd.Flags().Changed("mark") {
		text, err := cmd.Flags().GetString("mark")
		if err != nil {
			return fmt.Errorf("failed to get mark flag: %w", err)
		}
		s.mark.Text = text
	}
	if cmd.Flags().Changed("case-sensitive") {
		cs, err := cmd.Flags().GetBool("case-sensitive")
		if err != nil {
			return fmt.Errorf("failed to get case-sensitive flag: %w", err)
		}
		s.mark.CaseSensitive = cs
	}
	return nil
}

func (s *settings) driverOptions(jobs int) driver.Options {
	return driver.Options{
		Lexer: s.lexer,
		Mark:  s.mark,
		Cache: s.cache,
		Jobs:  jobs,
	}
}
