package sums

// Flow is the short-circuit protocol contract: a computation step either
// continues with a payload or breaks with a stop payload that the enclosing
// computation must propagate unchanged.
//
// Generated types with the Try feature expose a Branch method returning a
// Flow, and a FromBreak constructor that rebuilds the generated type from the
// stop payload. The zero value continues with C's zero value.
type Flow[C, B any] struct {
	cont    C
	brk     B
	isBreak bool
}

// Continue returns a Flow that continues with c.
func Continue[C, B any](c C) Flow[C, B] {
	return Flow[C, B]{cont: c}
}

// Break returns a Flow that stops with b.
func Break[C, B any](b B) Flow[C, B] {
	return Flow[C, B]{brk: b, isBreak: true}
}

// IsContinue reports whether f continues.
func (f Flow[C, B]) IsContinue() bool { return !f.isBreak }

// IsBreak reports whether f stops.
func (f Flow[C, B]) IsBreak() bool { return f.isBreak }

// Get returns the continue payload and whether f continues.
func (f Flow[C, B]) Get() (C, bool) { return f.cont, !f.isBreak }

// GetBreak returns the stop payload and whether f stops.
func (f Flow[C, B]) GetBreak() (B, bool) { return f.brk, f.isBreak }
