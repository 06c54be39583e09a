//go:build enumizer

// Command enumizerexample declares two sum types and drives their generated
// API. Regenerate enumizer_gen.go with:
//
//	go run github.com/nihohit/enumizer/cmd/enumizer .
package main

import (
	"fmt"

	"github.com/nihohit/enumizer"
)

// Cached is a nullable cache slot.
var _ = enumizer.Option("Cached", "Miss", "Hit")

// Fetch carries either a fetched document or the reason the fetch failed.
var _ = enumizer.Result("Fetch", "Payload", "Failure",
	enumizer.Derive("eq", "string", "json"),
	enumizer.Try(),
)

// fetchBoth concatenates two fetches, stopping at the first failure.
func fetchBoth(a, b Fetch[string, string]) Fetch[string, string] {
	left, ok := a.Branch().Get()
	if !ok {
		reason, _ := a.Branch().GetBreak()
		return FetchFromBreak[string](reason)
	}
	right, ok := b.Branch().Get()
	if !ok {
		reason, _ := b.Branch().GetBreak()
		return FetchFromBreak[string](reason)
	}
	return FetchPayload[string, string](left + " " + right)
}

func main() {
	fmt.Println(CachedHit("hello").UnwrapOr("fallback"))
	fmt.Println(CachedMiss[string]().UnwrapOr("fallback"))

	fmt.Println(fetchBoth(FetchPayload[string, string]("a"), FetchPayload[string, string]("b")))
	fmt.Println(fetchBoth(FetchPayload[string, string]("a"), FetchFailure[string]("boom")))
}
