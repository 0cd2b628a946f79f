package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the lexer state cache",
	Long: `Highlighted files leave their per-line lexer state in a cache keyed by
content, so unchanged files are not lexed again. The cache lives in [cache]
dir of jsedit.toml or in $XDG_CACHE_HOME/jsedit.`,
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached lexer state",
	Args:  cobra.NoArgs,
	RunE:  runCacheClean,
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cache, err := openStateCache(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
		return err
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	cacheCmd.AddCommand(cacheDirCmd)
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cache, err := openStateCache(cfg)
	if err != nil {
		return err
	}
	n, err := cache.DropAll()
	if err != nil {
		return fmt.Errorf("failed to clean %q: %w", cache.Dir(), err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached files from %s\n", n, cache.Dir())
	return nil
}
