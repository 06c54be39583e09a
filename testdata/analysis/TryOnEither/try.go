//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var _ = enumizer.Result("Response", "Ok", "Fail", enumizer.Try()) // ok

var _ = enumizer.Either("Choice", "Primary", "Secondary", enumizer.Try()) // want `cannot use Try with Either; neither variant is a failure`
