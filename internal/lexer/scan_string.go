package lexer

import "jsedit/internal/token"

// scanQuoted consumes a literal opened by the current rune and closed by the
// same rune when it is not immediately preceded by a backslash. Strings use
// ' or ", regex literals use /. On success the whole literal, both
// delimiters included, is styled as kind.
//
// A literal still open at block end gets no style and does not carry over:
// the next block starts fresh.
func (s *scanner) scanQuoted(kind token.Kind, unterminated string) {
	start := s.cursor.Mark()
	delim := s.cursor.Bump()
	for !s.cursor.EOF() {
		if s.cursor.Prev() != '\\' && s.cursor.Eat(delim) {
			s.emit(start, kind)
			return
		}
		s.cursor.Bump()
	}
	s.report(unterminated, int(start), "literal not closed before end of block")
}
