package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsedit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsedit",
	Short: "Incremental JavaScript syntax highlighter",
	Long: `jsedit highlights JavaScript line by line. Every line is lexed from the
state the previous line left behind, so edits only re-lex what changed.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupCommand,
	PersistentPostRunE: teardownCommand,
}

func init() {
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.String("config", "", "path to jsedit.toml (default: nearest one above the working directory)")
	pf.String("theme", "", "colour theme: terminal (default), classic or a chroma style name")
	pf.Bool("no-cache", false, "do not read or write the lexer state cache")
	pf.String("trace", "", "write trace events to a file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")
}

// main executes the root command. A failing command exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when the command fails
	_ = teardownCommand(nil, nil)
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
