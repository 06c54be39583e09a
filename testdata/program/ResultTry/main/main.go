//go:build enumizer

package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Result("Parsed", "Val", "Bad", enumizer.Try())

// add sums two parsed values, short-circuiting on the first failure.
func add(a, b Parsed[int, string]) Parsed[int, string] {
	x, ok := a.Branch().Get()
	if !ok {
		e, _ := a.Branch().GetBreak()
		return ParsedFromBreak[int](e)
	}

	y, ok := b.Branch().Get()
	if !ok {
		e, _ := b.Branch().GetBreak()
		return ParsedFromBreak[int](e)
	}

	return ParsedVal[int, string](x + y)
}

func main() {
	fmt.Println(add(ParsedVal[int, string](10), ParsedVal[int, string](20)).Unwrap())
	fmt.Println(add(ParsedVal[int, string](10), ParsedBad[int]("nope")).UnwrapBad())
	fmt.Println(add(ParsedBad[int]("first"), ParsedBad[int]("second")).UnwrapBad())
}
