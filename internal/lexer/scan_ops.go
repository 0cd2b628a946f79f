package lexer

import "jsedit/internal/token"

// scanOperator styles any single rune that reached this point as an
// operator, except brackets which stay unstyled.
func (s *scanner) scanOperator() {
	start := s.cursor.Mark()
	ch := s.cursor.Bump()
	if !isBracket(ch) {
		s.emit(start, token.Operator)
	}
}
