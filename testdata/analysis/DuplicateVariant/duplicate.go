//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var _ = enumizer.Option("Sampler", "Leader", "Leader") // want `variants must be distinct; got "Leader" twice`

var _ = enumizer.Result("Box", "item", "Item") // want `variants "item" and "Item" collide after capitalization`
