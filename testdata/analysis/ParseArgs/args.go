//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var name = "Box"

var _ = enumizer.Option(name, "Empty", "Full") // want `name is not string literal`

var _ = enumizer.Option("Box2", "Empty", "Fu"+"ll") // want `"Fu" \+ "ll" is not string literal`
