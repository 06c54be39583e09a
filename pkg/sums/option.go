// Package sums provides the canonical sum-type shapes that enumizer-generated
// types convert to and from: [Option] for nullable values, [Result] for
// fallible values, [Either] for binary unions without a privileged side, and
// [Flow] for the short-circuit protocol.
//
// Every generated type shares the storage layout of its canonical shape here,
// so conversions are total and lossless and sizes are identical.
package sums

// Option is a value that is either empty or carries exactly one payload.
// The zero value is empty.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option carrying v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o carries a payload.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// MustGet returns the payload. It panics if o is empty.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("sums: called MustGet on an empty Option")
	}
	return o.value
}

// GetOr returns the payload, or def if o is empty.
func (o Option[T]) GetOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Map applies f to the payload of o if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}
