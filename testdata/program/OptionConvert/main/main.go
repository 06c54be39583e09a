//go:build enumizer

package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Option("Box", "Empty", "Item")

func main() {
	b := BoxItem("hi")
	b = b.Map(func(v string) string { return v + "!" })

	// Round-trip through the canonical shape.
	b2 := BoxFromOption(b.Option())
	v, ok := b2.AsItem()
	fmt.Println(v, ok)

	p := b2.AsItemMut()
	*p = "changed"
	fmt.Println(b2.Unwrap())

	empty := BoxEmpty[string]()
	fmt.Println(empty.AsItemMut() == nil)
	fmt.Println(BoxFromOption(empty.Option()).IsEmpty())
}
