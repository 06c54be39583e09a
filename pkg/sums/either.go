package sums

// Either is a value with two independently meaningful payload types and no
// privileged side. The zero value is a right carrying R's zero value.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left returns an Either carrying the left payload v.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, isLeft: true}
}

// Right returns an Either carrying the right payload v.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v}
}

// IsLeft reports whether e carries the left payload.
func (e Either[L, R]) IsLeft() bool { return e.isLeft }

// IsRight reports whether e carries the right payload.
func (e Either[L, R]) IsRight() bool { return !e.isLeft }

// GetLeft returns the left payload and whether it is present.
func (e Either[L, R]) GetLeft() (L, bool) { return e.left, e.isLeft }

// GetRight returns the right payload and whether it is present.
func (e Either[L, R]) GetRight() (R, bool) { return e.right, !e.isLeft }

// MapLeft applies f to the left payload of e if present.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if !e.isLeft {
		return Right[T](e.right)
	}
	return Left[T, R](f(e.left))
}

// MapRight applies f to the right payload of e if present.
func MapRight[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.isLeft {
		return Left[L, T](e.left)
	}
	return Right[L](f(e.right))
}
