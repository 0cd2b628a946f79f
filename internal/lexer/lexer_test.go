package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"jsedit/internal/lexer"
	"jsedit/internal/token"
)

// recordingReporter собирает все уведомления лексера
type recordingReporter struct {
	kinds   []string
	offsets []int
}

func (r *recordingReporter) Report(kind string, offset int, msg string) {
	r.kinds = append(r.kinds, kind)
	r.offsets = append(r.offsets, offset)
}

func newTestLexer() *lexer.Lexer {
	return lexer.New(lexer.DefaultOptions())
}

func rng(kind token.Kind, offset, length int) token.Range {
	return token.Range{Offset: offset, Length: length, Kind: kind}
}

func rangesToString(ranges []token.Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectLex проверяет диапазоны и состояние на выходе блока
func expectLex(t *testing.T, input string, carryIn lexer.State, want []token.Range, wantOut lexer.State) {
	t.Helper()
	res := newTestLexer().LexString(input, carryIn)
	if len(res.Ranges) != len(want) {
		t.Fatalf("input %q: got %d ranges %s, want %d %s",
			input, len(res.Ranges), rangesToString(res.Ranges), len(want), rangesToString(want))
	}
	for i := range want {
		if res.Ranges[i] != want[i] {
			t.Errorf("input %q: range %d = %v, want %v", input, i, res.Ranges[i], want[i])
		}
	}
	if res.CarryOut != wantOut {
		t.Errorf("input %q: carry-out = %v, want %v", input, res.CarryOut, wantOut)
	}
}

func TestIdentifierClassification(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Range
	}{
		{"var", []token.Range{rng(token.Keyword, 0, 3)}},
		{"null", []token.Range{rng(token.Keyword, 0, 4)}},
		{"push", []token.Range{rng(token.BuiltIn, 0, 4)}},
		{"Math", []token.Range{rng(token.BuiltIn, 0, 4)}},
		{"myVar123", nil},
		{"_private", nil},
		{"Var", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectLex(t, tt.input, lexer.Start, tt.want, lexer.Start)
		})
	}
}

func TestAssignment(t *testing.T) {
	expectLex(t, "x = 5", lexer.Start, []token.Range{
		rng(token.Operator, 2, 1),
		rng(token.Number, 4, 1),
	}, lexer.Start)
}

func TestMemberAccess(t *testing.T) {
	expectLex(t, "return x.length;", lexer.Start, []token.Range{
		rng(token.Keyword, 0, 6),
		rng(token.Operator, 8, 1),
		rng(token.BuiltIn, 9, 6),
		rng(token.Operator, 15, 1),
	}, lexer.Start)
}

func TestNumbers(t *testing.T) {
	// числа не валидируются: точка и буквы режут токен
	expectLex(t, "123abc", lexer.Start, []token.Range{rng(token.Number, 0, 3)}, lexer.Start)
	expectLex(t, "3.14", lexer.Start, []token.Range{
		rng(token.Number, 0, 1),
		rng(token.Operator, 1, 1),
		rng(token.Number, 2, 2),
	}, lexer.Start)
	expectLex(t, "0x1F", lexer.Start, []token.Range{rng(token.Number, 0, 1)}, lexer.Start)
}

func TestBracketsAreUnstyled(t *testing.T) {
	expectLex(t, "foo(bar)[0]{}", lexer.Start, []token.Range{rng(token.Number, 9, 1)}, lexer.Start)
}

func TestLineComment(t *testing.T) {
	expectLex(t, "// comment to end", lexer.Start, []token.Range{rng(token.Comment, 0, 17)}, lexer.Start)
	expectLex(t, "x; // trailing /* not a block", lexer.Start, []token.Range{
		rng(token.Operator, 1, 1),
		rng(token.Comment, 3, 26),
	}, lexer.Start)
}

func TestBlockCommentSpansBlocks(t *testing.T) {
	lx := newTestLexer()

	first := lx.LexString("/* open", lexer.Start)
	if got := rangesToString(first.Ranges); got != rangesToString([]token.Range{rng(token.Comment, 0, 7)}) {
		t.Fatalf("first block ranges = %s", got)
	}
	if first.CarryOut != lexer.Comment {
		t.Fatalf("first block carry-out = %v, want comment", first.CarryOut)
	}

	expectLex(t, "still inside", first.CarryOut, []token.Range{rng(token.Comment, 0, 12)}, lexer.Comment)
	expectLex(t, "close */ var x", first.CarryOut, []token.Range{
		rng(token.Comment, 0, 8),
		rng(token.Keyword, 9, 3),
	}, lexer.Start)
}

func TestBlockCommentSingleLine(t *testing.T) {
	expectLex(t, "a /* b */ 1", lexer.Start, []token.Range{
		rng(token.Comment, 2, 7),
		rng(token.Number, 10, 1),
	}, lexer.Start)
	// "/*/" не закрывает комментарий
	expectLex(t, "/*/ */", lexer.Start, []token.Range{rng(token.Comment, 0, 6)}, lexer.Start)
	expectLex(t, "a/*b", lexer.Start, []token.Range{rng(token.Comment, 1, 3)}, lexer.Comment)
}

func TestSlashStarAlwaysStartsComment(t *testing.T) {
	// even where a grammar would read a division followed by a dereference
	expectLex(t, "a = b /*c", lexer.Start, []token.Range{
		rng(token.Operator, 2, 1),
		rng(token.Comment, 6, 3),
	}, lexer.Comment)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Range
	}{
		{"double", `"hello"`, []token.Range{rng(token.String, 0, 7)}},
		{"single", `'hi' + 1`, []token.Range{rng(token.String, 0, 4), rng(token.Operator, 5, 1), rng(token.Number, 7, 1)}},
		{"escaped quote", `'don\'t stop'`, []token.Range{rng(token.String, 0, 13)}},
		{"other quote inside", `"it's"`, []token.Range{rng(token.String, 0, 6)}},
		{"comment inside", `"/* no */"`, []token.Range{rng(token.String, 0, 10)}},
		// a backslash right before the quote always escapes it, even when the
		// backslash is itself escaped
		{"escaped backslash", `"a\\" b"`, []token.Range{rng(token.String, 0, 8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectLex(t, tt.input, lexer.Start, tt.want, lexer.Start)
		})
	}
}

func TestUnterminatedStringDoesNotCarry(t *testing.T) {
	rep := &recordingReporter{}
	lx := lexer.New(lexer.Options{
		Keywords: token.DefaultKeywords(),
		BuiltIns: token.DefaultBuiltIns(),
		Reporter: rep,
	})
	res := lx.LexString(`x = "open string`, lexer.Start)
	if got := rangesToString(res.Ranges); got != rangesToString([]token.Range{rng(token.Operator, 2, 1)}) {
		t.Fatalf("ranges = %s", got)
	}
	if res.CarryOut != lexer.Start {
		t.Fatalf("carry-out = %v, want start", res.CarryOut)
	}
	if len(rep.kinds) != 1 || rep.kinds[0] != lexer.ReportUnterminatedString || rep.offsets[0] != 4 {
		t.Fatalf("reports = %v at %v", rep.kinds, rep.offsets)
	}

	// the next block is not inside the string
	expectLex(t, `var s"`, res.CarryOut, []token.Range{rng(token.Keyword, 0, 3)}, lexer.Start)
}

func TestRegexLiteral(t *testing.T) {
	expectLex(t, "x = /ab+c/g;", lexer.Start, []token.Range{
		rng(token.Operator, 2, 1),
		rng(token.String, 4, 6),
		rng(token.Operator, 11, 1),
	}, lexer.Start)
	expectLex(t, `/a\/b/`, lexer.Start, []token.Range{rng(token.String, 0, 6)}, lexer.Start)
}

func TestDivisionReadsAsRegex(t *testing.T) {
	// known approximation: division opens a regex literal
	expectLex(t, "a / b / c", lexer.Start, []token.Range{rng(token.String, 2, 5)}, lexer.Start)
	// an unclosed one styles nothing and does not carry
	expectLex(t, "a / b", lexer.Start, nil, lexer.Start)
}

func TestUnicodeOffsetsAreRunes(t *testing.T) {
	expectLex(t, "'héllo' + 1", lexer.Start, []token.Range{
		rng(token.String, 0, 7),
		rng(token.Operator, 8, 1),
		rng(token.Number, 10, 1),
	}, lexer.Start)
	expectLex(t, "π = 3", lexer.Start, []token.Range{
		rng(token.Operator, 2, 1),
		rng(token.Number, 4, 1),
	}, lexer.Start)
}

func TestEmptyBlock(t *testing.T) {
	expectLex(t, "", lexer.Start, nil, lexer.Start)
	expectLex(t, "", lexer.Comment, nil, lexer.Comment)
	expectLex(t, "   \t", lexer.Start, nil, lexer.Start)
}

func TestCarryInNormalization(t *testing.T) {
	for _, in := range []lexer.State{lexer.String, lexer.Regex, lexer.Number, lexer.Identifier, lexer.State(0), lexer.State(42)} {
		t.Run(fmt.Sprint(in), func(t *testing.T) {
			// "*/" closes nothing: the block did not start inside a comment
			expectLex(t, "var */", in, []token.Range{
				rng(token.Keyword, 0, 3),
				rng(token.Operator, 4, 1),
			}, lexer.Start)
		})
	}
}

func TestCustomSymbolSets(t *testing.T) {
	lx := lexer.New(lexer.Options{
		Keywords: token.NewSymbolSet("let"),
		BuiltIns: token.NewSymbolSet("console"),
	})
	res := lx.LexString("let var = console", lexer.Start)
	want := []token.Range{rng(token.Keyword, 0, 3), rng(token.Operator, 8, 1), rng(token.BuiltIn, 10, 7)}
	if rangesToString(res.Ranges) != rangesToString(want) {
		t.Fatalf("ranges = %s, want %s", rangesToString(res.Ranges), rangesToString(want))
	}
}
