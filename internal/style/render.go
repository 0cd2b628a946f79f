package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jsedit/internal/token"
)

// Renderer paints blocks with lipgloss.
type Renderer struct {
	styles map[token.Kind]lipgloss.Style
	plain  lipgloss.Style
}

// NewRenderer builds lipgloss styles for m. A nil r uses the default
// lipgloss renderer, which detects the colour profile of stdout.
func NewRenderer(m *Map, r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	out := &Renderer{
		styles: make(map[token.Kind]lipgloss.Style, len(token.Kinds)),
		plain:  r.NewStyle().TabWidth(lipgloss.NoTabConversion),
	}
	for _, k := range token.Kinds {
		s := m.Get(k)
		ls := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
		if s.Foreground != "" {
			ls = ls.Foreground(lipgloss.Color(s.Foreground))
		}
		if s.Background != "" {
			ls = ls.Background(lipgloss.Color(s.Background))
		}
		out.styles[k] = ls
	}
	return out
}

// Kinds paints ranges in order over a block of n runes and returns the kind
// of every rune. Later ranges win, so markers listed after tokens are drawn
// over them. Ranges are clipped to the block.
func Kinds(n int, ranges []token.Range) []token.Kind {
	kinds := make([]token.Kind, n)
	for _, r := range ranges {
		r = r.Clip(n)
		for i := r.Offset; i < r.End(); i++ {
			kinds[i] = r.Kind
		}
	}
	return kinds
}

// Render returns text with each run of equally styled runes wrapped in its
// style.
func (r *Renderer) Render(text []rune, ranges []token.Range) string {
	kinds := Kinds(len(text), ranges)
	var b strings.Builder
	for start := 0; start < len(text); {
		end := start + 1
		for end < len(text) && kinds[end] == kinds[start] {
			end++
		}
		b.WriteString(r.styles[kinds[start]].Render(string(text[start:end])))
		start = end
	}
	return b.String()
}

// Style returns the lipgloss style used for kind k.
func (r *Renderer) Style(k token.Kind) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	return r.plain
}
