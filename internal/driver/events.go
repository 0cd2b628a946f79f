package driver

// Status is the progress of one file in HighlightDir.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

// Event reports a file changing status. Cached is set on StatusDone when the
// lexer states came from the disk cache.
type Event struct {
	File   string
	Status Status
	Cached bool
	Err    error
}

func (o *Options) emit(ev Event) {
	if o.Events != nil {
		o.Events <- ev
	}
}
