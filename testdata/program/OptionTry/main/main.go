//go:build enumizer

package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Option("Slot", "Vacant", "Filled", enumizer.Try())

// double doubles the held value, short-circuiting on a vacant slot.
func double(s Slot[int]) Slot[int] {
	flow := s.Branch()
	v, ok := flow.Get()
	if !ok {
		br, _ := flow.GetBreak()
		return SlotFromBreak[int](br)
	}
	return SlotFilled(v * 2)
}

func main() {
	fmt.Println(double(SlotFilled(21)).Unwrap())
	fmt.Println(double(SlotVacant[int]()).IsVacant())
}
