//go:build enumizer

package main

import "github.com/nihohit/enumizer"

var _ = enumizer.Result("Pair")

func main() {}
