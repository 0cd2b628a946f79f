package lexer

import "fmt"

// State is the scanner state. Only Comment survives a block boundary; the
// value stored per block is always Start or Comment.
type State int8

const (
	// Start is both the initial carry-in and the reset state at block end.
	Start State = -1
	// Number is inside a digit run.
	Number State = 1
	// Identifier is inside an identifier run.
	Identifier State = 2
	// String is inside a quoted string.
	String State = 3
	// Comment is inside a /* */ comment.
	Comment State = 4
	// Regex is inside a /.../ literal.
	Regex State = 5
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Regex:
		return "regex"
	default:
		return fmt.Sprintf("state(%d)", int8(s))
	}
}

// Normalize maps a host-supplied carry-in onto the states a block can start
// in. Anything but Comment (including values outside the enumeration) is
// Start.
func Normalize(s State) State {
	if s == Comment {
		return Comment
	}
	return Start
}
