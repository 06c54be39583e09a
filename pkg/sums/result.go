package sums

// Result is a value that is either a success payload or a failure payload.
// The zero value is a failure carrying E's zero value.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok returns a successful Result carrying v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: v, isOk: true}
}

// Err returns a failed Result carrying e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool { return r.isOk }

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool { return !r.isOk }

// Get returns the success payload and whether r is a success.
func (r Result[T, E]) Get() (T, bool) { return r.ok, r.isOk }

// GetErr returns the failure payload and whether r is a failure.
func (r Result[T, E]) GetErr() (E, bool) { return r.err, !r.isOk }

// MustGet returns the success payload. It panics if r is a failure.
func (r Result[T, E]) MustGet() T {
	if !r.isOk {
		panic("sums: called MustGet on a failed Result")
	}
	return r.ok
}

// GetOr returns the success payload, or def if r is a failure.
func (r Result[T, E]) GetOr(def T) T {
	if !r.isOk {
		return def
	}
	return r.ok
}

// MapOk applies f to the success payload of r if present.
func MapOk[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.isOk {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.ok))
}

// MapErr applies f to the failure payload of r if present.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.ok)
	}
	return Err[T, F](f(r.err))
}
