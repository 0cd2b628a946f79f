package document

import (
	"fmt"
	"strings"

	"jsedit/internal/lexer"
	"jsedit/internal/mark"
	"jsedit/internal/token"
	"jsedit/internal/trace"
)

// Config configures a Document.
type Config struct {
	Lexer  *lexer.Lexer // nil means the default keyword and builtin sets
	Mark   mark.Query
	Tracer trace.Tracer // may be nil
	// Path and Parent only label trace events: the file the text came from
	// and the span the document was created under.
	Path   string
	Parent *trace.Span
}

// Stats counts the work a document has done since it was created.
type Stats struct {
	Lexed  int // block lex calls
	Marked int // block mark passes
}

// Document is an ordered list of blocks with their highlight state. It always
// holds at least one (possibly empty) block.
type Document struct {
	lx     *lexer.Lexer
	query  mark.Query
	tracer trace.Tracer
	path   string
	parent *trace.Span
	blocks []Block
	stats  Stats
}

// New returns a document holding a single empty block.
func New(cfg Config) *Document {
	lx := cfg.Lexer
	if lx == nil {
		lx = lexer.New(lexer.DefaultOptions())
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	d := &Document{
		lx:     lx,
		query:  cfg.Mark,
		tracer: tracer,
		path:   cfg.Path,
		parent: cfg.Parent,
		blocks: []Block{{}},
	}
	d.lexBlock(0)
	d.markBlock(0)
	return d
}

// SetText replaces the whole content, splitting it into blocks on '\n', and
// lexes every block. It returns the number of blocks lexed.
func (d *Document) SetText(text string) int {
	span := d.begin("set-text")
	lines := strings.Split(text, "\n")
	d.blocks = make([]Block, len(lines))
	for i, line := range lines {
		d.blocks[i].Text = []rune(line)
	}
	n := d.relexAll()
	d.remarkAll()
	span.Blocks(n).End("")
	return n
}

// SetLine replaces the text of block i and re-lexes it plus every following
// block whose carry-in changed as a result. It returns the number of blocks
// lexed.
func (d *Document) SetLine(i int, text string) (int, error) {
	if err := d.check(i, len(d.blocks)-1); err != nil {
		return 0, err
	}
	span := d.begin("set-line").Line(i + 1)
	d.blocks[i].Text = []rune(text)
	d.markBlock(i)
	d.lexBlock(i)
	n := 1 + d.settle(i+1)
	span.Blocks(n).End("")
	return n, nil
}

// InsertLine inserts a block before index i (i == Len appends).
func (d *Document) InsertLine(i int, text string) (int, error) {
	if err := d.check(i, len(d.blocks)); err != nil {
		return 0, err
	}
	span := d.begin("insert-line").Line(i + 1)
	d.blocks = append(d.blocks, Block{})
	copy(d.blocks[i+1:], d.blocks[i:])
	d.blocks[i] = Block{Text: []rune(text)}
	d.markBlock(i)
	d.lexBlock(i)
	n := 1 + d.settle(i+1)
	span.Blocks(n).End("")
	return n, nil
}

// DeleteLine removes block i. Deleting the only block leaves one empty block.
func (d *Document) DeleteLine(i int) (int, error) {
	if err := d.check(i, len(d.blocks)-1); err != nil {
		return 0, err
	}
	if len(d.blocks) == 1 {
		return d.SetLine(0, "")
	}
	span := d.begin("delete-line").Line(i + 1)
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	n := d.settle(i)
	span.Blocks(n).End("")
	return n, nil
}

// SetMark replaces the mark query and recomputes the overlay of every block.
// Token ranges are left alone. It returns the number of blocks re-marked.
func (d *Document) SetMark(q mark.Query) int {
	d.query = q
	n := d.remarkAll()
	trace.Point(d.tracer, d.parent, trace.Event{
		Scope:  trace.ScopeDocument,
		Name:   "set-mark",
		File:   d.path,
		Blocks: n,
		Detail: fmt.Sprintf("%q case-sensitive=%v", q.Text, q.CaseSensitive),
	})
	return n
}

// Mark returns the current mark query.
func (d *Document) Mark() mark.Query { return d.query }

// SetLexer swaps the lexer (for example after the symbol sets changed) and
// re-lexes every block.
func (d *Document) SetLexer(lx *lexer.Lexer) int {
	d.lx = lx
	span := d.begin("set-lexer")
	n := d.relexAll()
	span.Blocks(n).End("")
	return n
}

// SetSymbols replaces the keyword and builtin sets and re-lexes every block.
func (d *Document) SetSymbols(keywords, builtins token.SymbolSet) int {
	opts := d.lx.Options()
	opts.Keywords = keywords
	opts.BuiltIns = builtins
	return d.SetLexer(lexer.New(opts))
}

// Len returns the number of blocks.
func (d *Document) Len() int { return len(d.blocks) }

// Block returns a copy of block i.
func (d *Document) Block(i int) (Block, error) {
	if err := d.check(i, len(d.blocks)-1); err != nil {
		return Block{}, err
	}
	return d.blocks[i].clone(), nil
}

// Ranges returns the token ranges of block i followed by its markers.
func (d *Document) Ranges(i int) ([]token.Range, error) {
	if err := d.check(i, len(d.blocks)-1); err != nil {
		return nil, err
	}
	return d.blocks[i].Ranges(), nil
}

// Line returns the text of block i, or "" when out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.blocks) {
		return ""
	}
	return string(d.blocks[i].Text)
}

// Text returns the document content with blocks joined by '\n'.
func (d *Document) Text() string {
	lines := make([]string, len(d.blocks))
	for i := range d.blocks {
		lines[i] = string(d.blocks[i].Text)
	}
	return strings.Join(lines, "\n")
}

// States returns the carry-out state of every block.
func (d *Document) States() []lexer.State {
	out := make([]lexer.State, len(d.blocks))
	for i := range d.blocks {
		out[i] = d.blocks[i].CarryOut
	}
	return out
}

// Stats returns the work counters.
func (d *Document) Stats() Stats { return d.stats }

func (d *Document) begin(name string) *trace.Span {
	return trace.Begin(d.tracer, trace.ScopeDocument, name, d.parent).File(d.path)
}

func (d *Document) check(i, maxIdx int) error {
	if i < 0 || i > maxIdx {
		return fmt.Errorf("%w: %d (document has %d lines)", ErrLineOutOfRange, i, len(d.blocks))
	}
	return nil
}

// carryIn is the state block i starts in: Start for the first block, the
// previous block's carry-out otherwise.
func (d *Document) carryIn(i int) lexer.State {
	if i == 0 {
		return lexer.Start
	}
	return d.blocks[i-1].CarryOut
}

func (d *Document) lexBlock(i int) {
	b := &d.blocks[i]
	in := d.carryIn(i)
	res := d.lx.Lex(b.Text, in)
	b.CarryIn = in
	b.CarryOut = res.CarryOut
	b.Tokens = res.Ranges
	d.stats.Lexed++
	if trace.Emits(d.tracer, trace.ScopeBlock) {
		trace.Point(d.tracer, d.parent, trace.Event{
			Scope:    trace.ScopeBlock,
			Name:     "lex",
			File:     d.path,
			Line:     i + 1,
			CarryIn:  in.String(),
			CarryOut: res.CarryOut.String(),
		})
	}
}

func (d *Document) markBlock(i int) {
	d.blocks[i].Marks = mark.Find(d.blocks[i].Text, d.query)
	d.stats.Marked++
}

// settle re-lexes blocks from index i on until one is found whose stored
// carry-in still matches its predecessor's carry-out.
func (d *Document) settle(i int) int {
	n := 0
	for ; i < len(d.blocks); i++ {
		if d.blocks[i].CarryIn == d.carryIn(i) {
			break
		}
		d.lexBlock(i)
		n++
	}
	return n
}

func (d *Document) relexAll() int {
	for i := range d.blocks {
		d.lexBlock(i)
	}
	return len(d.blocks)
}

func (d *Document) remarkAll() int {
	for i := range d.blocks {
		d.markBlock(i)
	}
	return len(d.blocks)
}
