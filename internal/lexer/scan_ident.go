package lexer

import "jsedit/internal/token"

// scanIdent consumes [letter_][letter digit _]* and styles it when it is a
// keyword or builtin. Plain identifiers stay unstyled.
func (s *scanner) scanIdent() {
	start := s.cursor.Mark()
	s.cursor.Bump()
	for !s.cursor.EOF() && isIdentContinue(s.cursor.Peek()) {
		s.cursor.Bump()
	}

	word := string(s.cursor.Text[start:s.cursor.Off])
	switch {
	case s.opts.Keywords.Contains(word):
		s.emit(start, token.Keyword)
	case s.opts.BuiltIns.Contains(word):
		s.emit(start, token.BuiltIn)
	}
}
