//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

var _ = enumizer.Option("Sampler", "Leader", "Receiver")

var _ = enumizer.Result("Sampler", "Ok", "Fail") // want `type Sampler already declared at .*`
