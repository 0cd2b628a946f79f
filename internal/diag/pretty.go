package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsedit/internal/source"
)

// WritePretty prints one diagnostic per line. When files holds the file a
// diagnostic points into, the offending line follows with a caret under the
// column. Colour follows color.NoColor.
func WritePretty(w io.Writer, bag *Bag, files map[string]*source.File) error {
	warn := color.New(color.FgYellow, color.Bold)
	info := color.New(color.FgCyan)
	loc := color.New(color.Bold)
	caret := color.New(color.FgGreen, color.Bold)
	for _, d := range bag.Items() {
		sev := info
		if d.Severity >= SevWarning {
			sev = warn
		}
		if _, err := fmt.Fprintf(w, "%s %s %s [%s]\n",
			loc.Sprintf("%s:%d:%d:", d.Path, d.Line, d.Col),
			sev.Sprintf("%s:", d.Severity),
			d.Message, d.Code); err != nil {
			return err
		}
		f, ok := files[d.Path]
		if !ok || d.Line < 1 || d.Line > f.LineCount() {
			continue
		}
		line := f.GetLine(d.Line)
		if _, err := fmt.Fprintf(w, "    %s\n    %s%s\n", line, caretIndent(line, d.Col), caret.Sprint("^")); err != nil {
			return err
		}
	}
	return nil
}

// caretIndent returns the padding that puts a caret under rune column col
// (1-based). Tabs are kept so the caret lines up however the terminal
// expands them; wide runes take two cells.
func caretIndent(line string, col int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	return sb.String()
}
