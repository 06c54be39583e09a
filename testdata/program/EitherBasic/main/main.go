//go:build enumizer

package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Either("Choice", "Primary", "Secondary")

func main() {
	c := ChoicePrimary[int, string](7)
	fmt.Println(c.IsPrimary(), c.UnwrapPrimary())

	c2 := ChoiceSecondary[int]("s")
	fmt.Println(c2.MapSecondary(func(v string) string { return v + "!" }).UnwrapSecondary())

	// Round-trip through the canonical shape.
	fmt.Println(ChoiceFromEither(c.Either()).IsPrimary())
	fmt.Println(ChoiceFromEither(c2.Either()).IsSecondary())

	fmt.Println(c.Compare(c2), c2.Compare(c), c.Compare(c))
}
