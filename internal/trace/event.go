package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event. Lower values are coarser.
type Scope uint8

const (
	// ScopeDriver covers a whole directory run.
	ScopeDriver Scope = iota + 1
	// ScopeFile covers loading, cache lookups and highlighting of one file.
	ScopeFile
	// ScopeDocument covers edits, re-lex cascades and mark changes.
	ScopeDocument
	// ScopeBlock covers single block lex calls.
	ScopeBlock
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopeFile:
		return "file"
	case ScopeDocument:
		return "document"
	case ScopeBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Event is one thing the highlighter did. Fields that do not apply stay zero.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	Name     string // "highlight-file", "set-line", "lex", "cache-hit", ...

	File     string // path of the file the document was loaded from
	Line     int    // 1-based block number
	Blocks   int    // blocks lexed or re-marked by the operation
	CarryIn  string // block events: state the block started in
	CarryOut string // block events: state handed to the next block
	Detail   string
}
