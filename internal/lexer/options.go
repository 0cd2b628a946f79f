package lexer

import "jsedit/internal/token"

// Reporter receives notes about degraded outcomes (an unterminated string,
// a comment left open at block end). The lexer only calls it; reports never
// change the produced ranges or carry-out state.
type Reporter interface {
	Report(kind string, offset int, msg string)
}

// Options configures a Lexer.
type Options struct {
	Keywords token.SymbolSet
	BuiltIns token.SymbolSet
	Reporter Reporter // may be nil
}

// DefaultOptions returns options with the stock keyword and builtin sets.
func DefaultOptions() Options {
	return Options{
		Keywords: token.DefaultKeywords(),
		BuiltIns: token.DefaultBuiltIns(),
	}
}

const (
	// ReportUnterminatedString is reported for a quote left open at block end.
	ReportUnterminatedString = "unterminated-string"
	// ReportUnterminatedRegex is reported for a regex literal left open at block end.
	ReportUnterminatedRegex = "unterminated-regex"
	// ReportOpenComment is reported when a block comment runs into the next block.
	ReportOpenComment = "open-comment"
)

func (s *scanner) report(kind string, offset int, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(kind, offset, msg)
	}
}
