package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"jsedit/internal/document"
	"jsedit/internal/mark"
	"jsedit/internal/style"
	"jsedit/internal/token"
)

// ReloadMsg replaces the viewed text, e.g. after the file changed on disk.
type ReloadMsg struct {
	Text string
	Err  error
}

type reloadClosedMsg struct{}

var (
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ViewerModel shows a highlighted document. "/" edits the mark, "c" toggles
// its case sensitivity, "n" and "N" jump between lines with matches.
type ViewerModel struct {
	title    string
	doc      *document.Document
	renderer *style.Renderer
	reloads  <-chan ReloadMsg

	viewport  viewport.Model
	input     textinput.Model
	searching bool
	ready     bool
	width     int
	height    int
	message   string
}

// NewViewerModel builds a viewer over doc. reloads may be nil.
func NewViewerModel(title string, doc *document.Document, styles *style.Map, reloads <-chan ReloadMsg) *ViewerModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "mark"
	ti.SetValue(doc.Mark().Text)

	return &ViewerModel{
		title:    title,
		doc:      doc,
		renderer: style.NewRenderer(styles, nil),
		reloads:  reloads,
		viewport: viewport.New(80, 20),
		input:    ti,
		width:    80,
		height:   22,
	}
}

// Document returns the viewed document.
func (m *ViewerModel) Document() *document.Document { return m.doc }

func (m *ViewerModel) Init() tea.Cmd {
	m.refresh()
	return m.listenForReload()
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case ReloadMsg:
		if msg.Err != nil {
			m.message = msg.Err.Error()
		} else if n, err := m.doc.Sync(msg.Text); err != nil {
			m.message = err.Error()
		} else {
			m.message = fmt.Sprintf("reloaded, %d lines lexed", n)
			m.refresh()
		}
		return m, m.listenForReload()

	case reloadClosedMsg:
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.searching = true
			m.input.SetValue(m.doc.Mark().Text)
			m.input.CursorEnd()
			return m, m.input.Focus()
		case "c":
			q := m.doc.Mark()
			q.CaseSensitive = !q.CaseSensitive
			m.setMark(q)
			return m, nil
		case "n":
			m.jump(1)
			return m, nil
		case "N":
			m.jump(-1)
			return m, nil
		case "esc":
			m.setMark(mark.Query{CaseSensitive: m.doc.Mark().CaseSensitive})
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ViewerModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.searching = false
		m.input.Blur()
		m.setMark(mark.Query{Text: m.input.Value(), CaseSensitive: m.doc.Mark().CaseSensitive})
		m.jump(0)
		return m, nil
	case "esc":
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ViewerModel) setMark(q mark.Query) {
	m.doc.SetMark(q)
	m.message = ""
	m.refresh()
}

// jump scrolls to the next (dir > 0), previous (dir < 0) or first at or
// below the top (dir == 0) line holding a marker.
func (m *ViewerModel) jump(dir int) {
	n := m.doc.Len()
	if n == 0 || m.doc.Mark().Empty() {
		return
	}
	start := m.viewport.YOffset
	step := 1
	switch {
	case dir > 0:
		start++
	case dir < 0:
		start--
		step = -1
	}
	for k := 0; k < n; k++ {
		i := ((start+k*step)%n + n) % n
		b, err := m.doc.Block(i)
		if err != nil {
			return
		}
		if len(b.Marks) > 0 {
			m.viewport.SetYOffset(i)
			return
		}
	}
	m.message = "no matches"
}

func (m *ViewerModel) listenForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-m.reloads
		if !ok {
			return reloadClosedMsg{}
		}
		return msg
	}
}

// refresh re-renders every line into the viewport, keeping the scroll
// position.
func (m *ViewerModel) refresh() {
	y := m.viewport.YOffset
	m.viewport.SetContent(m.renderLines())
	m.viewport.SetYOffset(y)
}

func (m *ViewerModel) renderLines() string {
	n := m.doc.Len()
	numWidth := len(strconv.Itoa(n))
	textWidth := max(m.width-numWidth-3, 1)

	var b strings.Builder
	for i := 0; i < n; i++ {
		blk, err := m.doc.Block(i)
		if err != nil {
			break
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d │ ", numWidth, i+1)))
		text := visible(blk.Text, textWidth)
		b.WriteString(m.renderer.Render(text, blk.Ranges()))
	}
	return b.String()
}

// visible cuts text to at most width terminal cells. Tabs and control runes
// become single spaces so that rune offsets of the ranges still line up.
func visible(text []rune, width int) []rune {
	out := make([]rune, 0, len(text))
	cells := 0
	for _, r := range text {
		if r == '\t' || r < ' ' {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if cells+w > width {
			break
		}
		cells += w
		out = append(out, r)
	}
	return out
}

func (m *ViewerModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	if m.searching {
		b.WriteString(m.input.View())
	} else if m.message != "" {
		b.WriteString(errorStyle.Render(truncate(m.message, m.width)))
	}
	return b.String()
}

func (m *ViewerModel) statusLine() string {
	q := m.doc.Mark()
	matches := MarkerCount(m.doc)
	mode := "Aa"
	if !q.CaseSensitive {
		mode = "aa"
	}
	right := fmt.Sprintf("%d lines  %s  %q %d", m.doc.Len(), mode, q.Text, matches)
	left := truncate(m.title, max(m.width-runewidth.StringWidth(right)-2, 0))
	pad := max(m.width-runewidth.StringWidth(left)-runewidth.StringWidth(right), 1)
	return statusStyle.Render(left + strings.Repeat(" ", pad) + right)
}

// MarkerCount returns the number of marker ranges in the document.
func MarkerCount(doc *document.Document) int {
	n := 0
	for i := 0; i < doc.Len(); i++ {
		rs, err := doc.Ranges(i)
		if err != nil {
			continue
		}
		for _, r := range rs {
			if r.Kind == token.Marker {
				n++
			}
		}
	}
	return n
}
