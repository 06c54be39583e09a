//go:build enumizer

package main

import (
	"encoding/json"
	"fmt"

	"github.com/nihohit/enumizer"
)

var _ = enumizer.Result("Lookup", "Hit", "Miss", enumizer.Derive("eq", "string", "debug", "json"))

func main() {
	hit := LookupHit[string, int]("value")
	miss := LookupMiss[string, int](404)

	fmt.Println(hit)
	fmt.Printf("%#v\n", miss)

	data, err := json.Marshal(miss)
	fmt.Println(string(data), err)

	var back Lookup[string, int]
	if err := json.Unmarshal(data, &back); err != nil {
		panic(err)
	}
	fmt.Println(back.Equal(miss))
	fmt.Println(back.Equal(hit))
}
