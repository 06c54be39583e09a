package testdata

import "github.com/nihohit/enumizer" // want `file must have "//go:build enumizer" constraint when importing enumizer`

var _ = enumizer.Option("Box", "Empty", "Full")
