package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jsedit/internal/driver"
	"jsedit/internal/source"
	"jsedit/internal/ui"
	"jsedit/internal/watch"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file.js",
	Short: "Browse a highlighted file interactively",
	Long: `View opens a full-screen viewer. Press / to set the mark, c to toggle
case sensitivity, n and N to jump between matches, q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("mark", "", "initial mark")
	viewCmd.Flags().Bool("case-sensitive", false, "match the mark case-sensitively")
	viewCmd.Flags().Bool("watch", false, "reload the file when it changes on disk")
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	watchFlag, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
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
	res, err := driver.HighlightFile(ctx, path, s.driverOptions(1))
	if err != nil {
		return err
	}

	var reloads chan ui.ReloadMsg
	if watchFlag {
		w, err := watch.New(watch.DefaultConfig(path))
		if err != nil {
			return err
		}
		changes, err := w.Start()
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		reloads = make(chan ui.ReloadMsg, 1)
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go forwardReloads(wctx, path, changes, w.Errors(), reloads)
	}

	model := ui.NewViewerModel(res.Path, res.Doc, s.styles, reloads)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// forwardReloads turns change signals into reloaded file contents.
func forwardReloads(ctx context.Context, path string, changes <-chan struct{}, errs <-chan error, out chan<- ui.ReloadMsg) {
	for {
		var msg ui.ReloadMsg
		select {
		case <-ctx.Done():
			return
		case err := <-errs:
			msg.Err = err
		case <-changes:
			f, err := source.Load(path)
			if err != nil {
				msg.Err = err
			} else {
				msg.Text = f.Text()
			}
		}
		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}
	}
}
