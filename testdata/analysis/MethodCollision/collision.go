//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

// Is+OkAnd and Is+Ok+And derive the same method name.
var _ = enumizer.Result("Box", "Ok", "OkAnd") // want `generated methods named IsOkAnd collide; rename a variant`
