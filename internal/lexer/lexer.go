package lexer

import (
	"jsedit/internal/token"
)

// Lexer highlights one block at a time. It holds only configuration, so a
// single Lexer may be shared by goroutines lexing different documents.
type Lexer struct {
	opts Options
}

// Result is the outcome of lexing one block.
type Result struct {
	Ranges   []token.Range // ordered, non-overlapping
	CarryOut State         // Start or Comment
}

// New creates a lexer with the given options.
func New(opts Options) *Lexer {
	return &Lexer{opts: opts}
}

// Options returns the lexer configuration.
func (lx *Lexer) Options() Options {
	return lx.opts
}

// scanner is the per-call state of one Lex invocation.
type scanner struct {
	opts   *Options
	cursor Cursor
	ranges []token.Range
}

// Lex scans text given the carry-out state of the previous block and returns
// the styled ranges plus the state to hand to the next block. It is a pure
// function of (carryIn, text) and the lexer's symbol sets.
func (lx *Lexer) Lex(text []rune, carryIn State) Result {
	s := &scanner{
		opts:   &lx.opts,
		cursor: NewCursor(text),
	}
	state := Start

	// Блок начинается внутри комментария, открытого выше
	if Normalize(carryIn) == Comment {
		if !s.scanBlockCommentBody(s.cursor.Mark()) {
			return Result{Ranges: s.ranges, CarryOut: Comment}
		}
	}

	for !s.cursor.EOF() {
		ch := s.cursor.Peek()
		b0, b1, ok := s.cursor.Peek2()

		switch {
		case isSpace(ch):
			s.cursor.Bump()

		case isDigit(ch):
			s.scanNumber()

		case isIdentStart(ch):
			s.scanIdent()

		case ch == '\'' || ch == '"':
			s.scanQuoted(token.String, ReportUnterminatedString)

		case ok && b0 == '/' && b1 == '*':
			if !s.scanBlockComment() {
				state = Comment
			}

		case ok && b0 == '/' && b1 == '/':
			s.scanLineComment()

		case ch == '/':
			// Деление и regex неразличимы без грамматики: любой одиночный '/'
			// открывает regex-литерал.
			s.scanQuoted(token.String, ReportUnterminatedRegex)

		default:
			s.scanOperator()
		}
	}

	return Result{Ranges: s.ranges, CarryOut: state}
}

// LexString is Lex over a string.
func (lx *Lexer) LexString(text string, carryIn State) Result {
	return lx.Lex([]rune(text), carryIn)
}

func (s *scanner) emit(start Mark, kind token.Kind) {
	if n := s.cursor.Len(start); n > 0 {
		s.ranges = append(s.ranges, token.Range{Offset: int(start), Length: n, Kind: kind})
	}
}
