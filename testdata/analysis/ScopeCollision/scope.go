//go:build enumizer

package testdata

import "github.com/nihohit/enumizer"

type Sampler struct{}

var _ = enumizer.Option("Sampler", "Leader", "Receiver") // want `generated name Sampler conflicts with an existing declaration`
