//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var (
	_   = enumizer.Option("Box", "Empty", "Full")   // ok
	Bad = enumizer.Option("Crate", "Void", "Laden") // want `Option must be assigned to a package-level blank variable`
)

var _ = enumizer.Derive("eq") // want `cannot use Derive outside a type directive`

func misuse() {
	_ = enumizer.Result("Late", "Yes", "No") // want `Result must be assigned to a package-level blank variable`
}
