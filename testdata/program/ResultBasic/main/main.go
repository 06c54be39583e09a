//go:build enumizer

package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Result("Response", "Ok", "Fail")

func main() {
	ok := ResponseOk[int, string](5)
	bad := ResponseFail[int]("boom")

	fmt.Println(ok.UnwrapOr(0), bad.UnwrapOr(0))
	fmt.Println(bad.IsFail(), bad.UnwrapFail())
	fmt.Println(ok.UnwrapOrElse(func(e string) int { return len(e) }), bad.UnwrapOrElse(func(e string) int { return len(e) }))
	fmt.Println(ok.Map(func(v int) int { return v * 10 }).Unwrap())
	fmt.Println(bad.MapFail(func(e string) string { return e + "!" }).UnwrapFail())

	// Round-trip through the canonical shape.
	fmt.Println(ResponseFromResult(ok.Result()).Unwrap())
	fmt.Println(ok.Compare(bad), bad.Compare(ok), ok.Compare(ok))
}
