package diag

import (
	"jsedit/internal/document"
	"jsedit/internal/lexer"
)

type report struct {
	kind   string
	offset int
	msg    string
}

// blockReporter records what the lexer reports for one block.
type blockReporter struct {
	reports []report
}

func (r *blockReporter) Report(kind string, offset int, msg string) {
	r.reports = append(r.reports, report{kind: kind, offset: offset, msg: msg})
}

// Collect re-lexes every block of doc with a reporter attached and returns
// the reports as diagnostics for path. A comment that merely continues on
// the next line is normal; only one still open at the end of the document
// is reported, at its opening line.
func Collect(path string, doc *document.Document, opts lexer.Options, max int) *Bag {
	bag := NewBag(max)
	n := doc.Len()

	openFrom := n
	for i := n - 1; i >= 0; i-- {
		b, err := doc.Block(i)
		if err != nil || b.CarryOut != lexer.Comment {
			break
		}
		openFrom = i
	}

	rep := &blockReporter{}
	opts.Reporter = rep
	lx := lexer.New(opts)
	for i := 0; i < n; i++ {
		b, err := doc.Block(i)
		if err != nil {
			break
		}
		rep.reports = rep.reports[:0]
		lx.Lex(b.Text, b.CarryIn)
		for _, r := range rep.reports {
			d := Diagnostic{
				Severity: SevWarning,
				Code:     r.kind,
				Path:     path,
				Line:     i + 1,
				Col:      r.offset + 1,
				Message:  r.msg,
			}
			if r.kind == lexer.ReportOpenComment {
				if i != openFrom {
					continue
				}
				d.Message = "comment is not closed before end of file"
			}
			if !bag.Add(d) {
				return bag
			}
		}
	}
	return bag
}
