package lexer

import "jsedit/internal/token"

// scanLineComment styles everything from // to the end of the block.
// Line comments never carry over.
func (s *scanner) scanLineComment() {
	start := s.cursor.Mark()
	s.cursor.SkipToEnd()
	s.emit(start, token.Comment)
}

// scanBlockComment consumes "/*" and the comment body. It reports false when
// the block ended before "*/".
func (s *scanner) scanBlockComment() bool {
	start := s.cursor.Mark()
	s.cursor.Bump()
	s.cursor.Bump()
	return s.scanBlockCommentBody(start)
}

// scanBlockCommentBody scans up to and including "*/" and styles [start, ..).
// Without a terminator the rest of the block is styled and false is returned
// so the caller carries Comment into the next block.
func (s *scanner) scanBlockCommentBody(start Mark) bool {
	for !s.cursor.EOF() {
		if b0, b1, ok := s.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			s.cursor.Bump()
			s.cursor.Bump()
			s.emit(start, token.Comment)
			return true
		}
		s.cursor.Bump()
	}
	s.emit(start, token.Comment)
	s.report(ReportOpenComment, int(start), "block comment continues in the next block")
	return false
}
