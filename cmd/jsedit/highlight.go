package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jsedit/internal/diag"
	"jsedit/internal/driver"
	"jsedit/internal/observ"
	"jsedit/internal/source"
	"jsedit/internal/style"
	"jsedit/internal/ui"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] path...",
	Short: "Print highlighted JavaScript",
	Long: `Highlight prints files with ANSI colours, or dumps their ranges with
--format pretty|json. A directory is scanned for *.js files; "-" reads stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(cmd, args, formatANSI)
	},
}

var rangesCmd = &cobra.Command{
	Use:   "ranges [flags] path...",
	Short: "Dump token and marker ranges",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(cmd, args, formatPretty)
	},
}

func init() {
	for _, c := range []*cobra.Command{highlightCmd, rangesCmd} {
		c.Flags().String("format", "", "output format (ansi|pretty|json)")
		c.Flags().String("mark", "", "highlight every occurrence of this text")
		c.Flags().Bool("case-sensitive", false, "match --mark case-sensitively")
		c.Flags().Int("jobs", 0, "max parallel files when highlighting a directory (0=auto)")
		c.Flags().String("ui", "auto", "show directory progress (auto|on|off)")
		c.Flags().Bool("warnings", false, "report unterminated strings, regexes and comments on stderr and exit non-zero")
		c.Flags().Int("max-diagnostics", 100, "maximum number of warnings per file")
	}
}

func runHighlight(cmd *cobra.Command, args []string, defaultFormat outputFormat) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format := defaultFormat
	if formatFlag != "" {
		if format, err = readOutputFormat(formatFlag); err != nil {
			return err
		}
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	warnings, err := cmd.Flags().GetBool("warnings")
	if err != nil {
		return fmt.Errorf("failed to get warnings flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := s.applyMarkFlags(cmd); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := s.driverOptions(jobs)

	var results []driver.FileResult
	for _, arg := range args {
		rs, err := collect(ctx, cmd, arg, opts, mode)
		if err != nil {
			return err
		}
		results = append(results, rs...)
	}

	out := cmd.OutOrStdout()
	failed := 0
	var reports []observ.Report
	var files []jsonFile
	diags := diag.NewBag(0)
	sources := make(map[string]*source.File)
	renderer := style.NewRenderer(s.styles, nil)
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
			continue
		}
		reports = append(reports, res.Timing)
		if warnings {
			diags.Merge(diag.Collect(res.Path, res.Doc, s.lexer.Options(), maxDiagnostics))
			sources[res.Path] = res.File
		}
		switch format {
		case formatANSI:
			if len(results) > 1 {
				fmt.Fprintf(out, "==> %s <==\n", displayPath(res))
			}
			err = writeANSI(out, res.Doc, renderer)
		case formatPretty:
			err = writePretty(out, res.Path, res.Cached, res.Doc)
		case formatJSON:
			var f jsonFile
			if f, err = toJSONFile(res.Path, res.Cached, res.Doc); err == nil {
				files = append(files, f)
			}
		}
		if err != nil {
			return err
		}
	}
	if format == formatJSON && len(files) > 0 {
		if err := writeJSON(out, files); err != nil {
			return err
		}
	}

	if diags.Len() > 0 {
		diags.Sort()
		if err := diag.WritePretty(cmd.ErrOrStderr(), diags, sources); err != nil {
			return err
		}
	}
	if s.timings && len(reports) > 0 {
		observ.Merge(reports...).WriteSummary(cmd.ErrOrStderr(), "")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	if diags.HasWarnings() {
		return fmt.Errorf("%w: %d", errWarnings, diags.Len())
	}
	return nil
}

// errWarnings makes `highlight --warnings` exit non-zero when something was
// reported, so scripts can gate on it.
var errWarnings = errors.New("warnings reported")

// displayPath shortens paths below the working directory for headers. Files
// read from stdin keep their placeholder name.
func displayPath(res *driver.FileResult) string {
	if res.File != nil && res.File.Flags&source.FileVirtual != 0 {
		return res.Path
	}
	wd, err := os.Getwd()
	if err != nil {
		return res.Path
	}
	rel, err := source.RelativePath(res.Path, wd)
	if err != nil {
		return res.Path
	}
	return rel
}

// collect highlights one argument: "-" for stdin, a directory, or a file.
func collect(ctx context.Context, cmd *cobra.Command, arg string, opts driver.Options, mode uiMode) ([]driver.FileResult, error) {
	if arg == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		f, err := source.Virtual("<stdin>", content)
		if err != nil {
			return nil, err
		}
		res, err := driver.HighlightSource(ctx, f, opts)
		if err != nil {
			return nil, err
		}
		return []driver.FileResult{*res}, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		res, err := driver.HighlightFile(ctx, arg, opts)
		if err != nil {
			return nil, err
		}
		return []driver.FileResult{*res}, nil
	}

	if !shouldUseTUI(mode, os.Stderr) {
		return driver.HighlightDir(ctx, arg, opts)
	}
	return highlightDirWithProgress(ctx, arg, opts)
}

func highlightDirWithProgress(ctx context.Context, dir string, opts driver.Options) ([]driver.FileResult, error) {
	files, err := driver.ListFiles(dir, opts.Exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}

	events := make(chan driver.Event, len(files)*3)
	opts.Events = events

	type outcome struct {
		results []driver.FileResult
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		rs, err := driver.HighlightDir(ctx, dir, opts)
		close(events)
		done <- outcome{rs, err}
	}()

	model := ui.NewProgressModel(fmt.Sprintf("highlighting %s", dir), files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	if _, err := program.Run(); err != nil {
		return nil, err
	}
	res := <-done
	return res.results, res.err
}
