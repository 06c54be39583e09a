package sums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nihohit/enumizer/pkg/sums"
)

func TestOption(t *testing.T) {
	some := sums.Some(42)
	none := sums.None[int]()

	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	assert.True(t, none.IsNone())

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = none.Get()
	assert.False(t, ok)

	assert.Equal(t, 42, some.GetOr(0))
	assert.Equal(t, 0, none.GetOr(0))

	assert.Equal(t, 42, some.MustGet())
	assert.Panics(t, func() { none.MustGet() })
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var o sums.Option[string]
	assert.True(t, o.IsNone())
}

func TestOptionMap(t *testing.T) {
	some := sums.Map(sums.Some(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, some.MustGet())

	none := sums.Map(sums.None[int](), func(v int) string { return "x" })
	assert.True(t, none.IsNone())
}

func TestResult(t *testing.T) {
	ok := sums.Ok[int, string](5)
	err := sums.Err[int]("boom")

	assert.True(t, ok.IsOk())
	assert.True(t, err.IsErr())

	v, isOk := ok.Get()
	assert.True(t, isOk)
	assert.Equal(t, 5, v)

	e, isErr := err.GetErr()
	assert.True(t, isErr)
	assert.Equal(t, "boom", e)

	assert.Equal(t, 5, ok.GetOr(0))
	assert.Equal(t, 0, err.GetOr(0))

	assert.Equal(t, 5, ok.MustGet())
	assert.Panics(t, func() { err.MustGet() })
}

func TestResultMap(t *testing.T) {
	ok := sums.MapOk(sums.Ok[int, string](5), func(v int) int { return v + 1 })
	assert.Equal(t, 6, ok.MustGet())

	err := sums.MapErr(sums.Err[int]("boom"), func(e string) string { return e + "!" })
	e, _ := err.GetErr()
	assert.Equal(t, "boom!", e)

	// Mapping the untagged side leaves the value unchanged.
	same := sums.MapOk(sums.Err[int]("boom"), func(v int) int { return v + 1 })
	e, _ = same.GetErr()
	assert.Equal(t, "boom", e)
}

func TestEither(t *testing.T) {
	left := sums.Left[int, string](42)
	right := sums.Right[int]("text")

	assert.True(t, left.IsLeft())
	assert.False(t, left.IsRight())
	assert.True(t, right.IsRight())

	l, ok := left.GetLeft()
	assert.True(t, ok)
	assert.Equal(t, 42, l)

	r, ok := right.GetRight()
	assert.True(t, ok)
	assert.Equal(t, "text", r)

	_, ok = left.GetRight()
	assert.False(t, ok)
}

func TestEitherMap(t *testing.T) {
	left := sums.MapLeft(sums.Left[int, string](10), func(v int) int { return v * 2 })
	l, _ := left.GetLeft()
	assert.Equal(t, 20, l)

	kept := sums.MapLeft(sums.Right[int]("text"), func(v int) int { return v * 2 })
	r, _ := kept.GetRight()
	assert.Equal(t, "text", r)
}

func TestFlow(t *testing.T) {
	cont := sums.Continue[int, string](10)
	brk := sums.Break[int]("stop")

	assert.True(t, cont.IsContinue())
	assert.False(t, cont.IsBreak())
	assert.True(t, brk.IsBreak())

	c, ok := cont.Get()
	assert.True(t, ok)
	assert.Equal(t, 10, c)

	b, ok := brk.GetBreak()
	assert.True(t, ok)
	assert.Equal(t, "stop", b)

	_, ok = brk.Get()
	assert.False(t, ok)
}
