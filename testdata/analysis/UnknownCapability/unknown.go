//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var _ = enumizer.Option("Box", "Empty", "Full", enumizer.Derive("eq", "ordr")) // want `unknown capability "ordr"; did you mean "ord"\?`

var _ = enumizer.Result("Lookup", "Hit", "Miss", enumizer.Derive("zzz")) // want `unknown capability "zzz"`
