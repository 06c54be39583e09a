//go:build enumizer

package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Option("Sampler", "Leader", "Receiver")

func main() {
	s := SamplerReceiver(42)
	fmt.Println(s.IsReceiver(), s.IsLeader())
	fmt.Println(s.Unwrap())
	fmt.Println(s.UnwrapOr(7), SamplerLeader[int]().UnwrapOr(7))
	fmt.Println(SamplerLeader[int]().UnwrapOrElse(func() int { return 3 }))
	fmt.Println(s.IsReceiverAnd(func(v int) bool { return v > 40 }))
	fmt.Println(SamplerLeader[int]().IsLeaderOr(func(v int) bool { return false }))
}
