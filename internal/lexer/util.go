package lexer

import "unicode"

// ===== Классификаторы =====

// ASCII fast-path; the rest goes through package unicode so that letters and
// digits of any script behave alike.
func isSpace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || (r >= '\t' && r <= '\r')
	}
	return unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	if r < 0x80 {
		return r >= '0' && r <= '9'
	}
	return unicode.IsDigit(r)
}

func isLetter(r rune) bool {
	if r < 0x80 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicode.IsLetter(r)
}

func isIdentStart(r rune) bool {
	return r == '_' || isLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isBracket(r rune) bool {
	switch r {
	case '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}
