package lexer

import "jsedit/internal/token"

// scanNumber consumes a run of digits. Decimal points, exponents and hex
// prefixes are not recognised: "0x1F" is Number("0") followed by an
// identifier.
func (s *scanner) scanNumber() {
	start := s.cursor.Mark()
	for isDigit(s.cursor.Peek()) && !s.cursor.EOF() {
		s.cursor.Bump()
	}
	s.emit(start, token.Number)
}
