//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var _ = enumizer.Option("Box", "Empty", "Full", enumizer.Derive("ord", "eq")) // ok

var _ = enumizer.Option("Crate", "Void", "Laden", enumizer.Derive("ord")) // want `capability "ord" requires "eq"`

var _ = enumizer.Result("Lookup", "Hit", "Miss", enumizer.Derive("hash")) // want `capability "hash" requires "eq"`
