package document

import "errors"

var (
	// ErrLineOutOfRange is returned for a line index outside the document.
	ErrLineOutOfRange = errors.New("line out of range")
	// ErrSnapshotMismatch is returned when restored state does not fit the text.
	ErrSnapshotMismatch = errors.New("snapshot does not match document")
)
