//go:build enumizer

package main

import (
	"fmt"
	"unsafe"

	"github.com/nihohit/enumizer"
	"github.com/nihohit/enumizer/pkg/sums"
)

var _ = enumizer.Option("Maybe", "Nothing", "Just", enumizer.Derive("eq", "clone"))

func main() {
	// Generated structs mirror the canonical layout exactly.
	fmt.Println(unsafe.Sizeof(Maybe[int]{}) == unsafe.Sizeof(sums.Option[int]{}))
	fmt.Println(unsafe.Sizeof(Maybe[*int]{}) == unsafe.Sizeof(sums.Option[*int]{}))
	fmt.Println(unsafe.Sizeof(Maybe[[8]byte]{}) == unsafe.Sizeof(sums.Option[[8]byte]{}))
}
