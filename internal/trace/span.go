package trace

import (
	"sync/atomic"
	"time"
)

var (
	seq   atomic.Uint64
	spans atomic.Uint64
)

// Span tracks one operation from Begin to End. A nil *Span is valid and
// does nothing, so callers never have to check whether tracing is on.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	end     Event
}

// Begin starts a span under parent (nil for a root span). It returns nil
// when t does not emit scope.
func Begin(t Tracer, scope Scope, name string, parent *Span) *Span {
	if !emits(t, scope) {
		return nil
	}
	s := &Span{
		tracer:  t,
		id:      spans.Add(1),
		parent:  parent.ID(),
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(&Event{
		Time:     s.started,
		Seq:      seq.Add(1),
		Kind:     KindBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     name,
	})
	return s
}

// File records the file the span is about.
func (s *Span) File(path string) *Span {
	if s != nil {
		s.end.File = path
	}
	return s
}

// Line records the 1-based block the span started at.
func (s *Span) Line(n int) *Span {
	if s != nil {
		s.end.Line = n
	}
	return s
}

// Blocks records how many blocks the operation lexed or re-marked.
func (s *Span) Blocks(n int) *Span {
	if s != nil {
		s.end.Blocks = n
	}
	return s
}

// End emits the end event carrying the recorded fields and returns the
// span's duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil {
		return 0
	}
	dur := time.Since(s.started)
	ev := s.end
	ev.Time = time.Now()
	ev.Seq = seq.Add(1)
	ev.Kind = KindEnd
	ev.Scope = s.scope
	ev.SpanID = s.id
	ev.ParentID = s.parent
	ev.Name = s.name
	ev.Detail = detail
	s.tracer.Emit(&ev)
	return dur
}

// ID returns the span ID, 0 for a nil span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits ev as an instant event under parent. Time, Seq, Kind and
// ParentID are filled in.
func Point(t Tracer, parent *Span, ev Event) {
	if !emits(t, ev.Scope) {
		return
	}
	ev.Time = time.Now()
	ev.Seq = seq.Add(1)
	ev.Kind = KindPoint
	ev.ParentID = parent.ID()
	t.Emit(&ev)
}

// Emits reports whether t records events of scope. Callers use it to skip
// building expensive details.
func Emits(t Tracer, scope Scope) bool { return emits(t, scope) }

func emits(t Tracer, scope Scope) bool {
	return t != nil && t.Level().ShouldEmit(scope)
}
