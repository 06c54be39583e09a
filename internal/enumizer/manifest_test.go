package enumizerinternal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enumizerinternal "github.com/nihohit/enumizer/internal/enumizer"
)

func TestManifest(t *testing.T) {
	manifest := []byte(`
package: metrics
types:
  - shape: result
    name: sample window
    variants: [filled, empty]
    derive: [eq, json]
  - shape: option
    name: Cursor
    variants: [Done, At]
    try: true
`)

	out, code, err := enumizerinternal.MainManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, "enumizer_gen.go", out)

	src := string(code)
	assert.Contains(t, src, "//go:build !enumizer")
	assert.Contains(t, src, "Code generated by github.com/nihohit/enumizer")
	assert.Contains(t, src, "package metrics")

	// Loose names are squashed into identifiers.
	assert.Contains(t, src, "type sampleWindow[T comparable, E comparable] struct {")
	assert.Contains(t, src, "func sampleWindowFilled[T comparable, E comparable](val T) sampleWindow[T, E] {")
	assert.Contains(t, src, "MarshalJSON")

	assert.Contains(t, src, "func (c Cursor[T]) Branch()")
	assert.Contains(t, src, "func CursorFromBreak[T")
}

func TestManifestOutName(t *testing.T) {
	manifest := []byte(`
package: metrics
out: windows_gen.go
types:
  - shape: either
    name: Window
    variants: [Open, Closed]
`)

	out, code, err := enumizerinternal.MainManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, "windows_gen.go", out)
	assert.Contains(t, string(code), "type Window[L")
}

func TestManifestErrors(t *testing.T) {
	_, _, err := enumizerinternal.MainManifest([]byte("package: ''\ntypes: []"))
	assert.ErrorContains(t, err, "package name")

	_, _, err = enumizerinternal.MainManifest([]byte(`
package: p
types:
  - shape: maybe
    name: X
    variants: [a, b]
`))
	assert.ErrorContains(t, err, `types[0]: unknown shape "maybe"`)

	_, _, err = enumizerinternal.MainManifest([]byte(`
package: p
types:
  - shape: result
    name: X
    variants: [a]
`))
	assert.ErrorContains(t, err, "need 2 variants")

	_, _, err = enumizerinternal.MainManifest([]byte(`
package: p
types:
  - shape: either
    name: X
    variants: [a, b]
    try: true
`))
	assert.ErrorContains(t, err, "cannot use Try with Either")
}

func TestManifestCrossTypeCollision(t *testing.T) {
	// Foo's constructor FooBar spells the second type's name.
	_, _, err := enumizerinternal.MainManifest([]byte(`
package: p
types:
  - shape: result
    name: Foo
    variants: [Bar, Baz]
  - shape: option
    name: FooBar
    variants: [Empty, Full]
`))
	assert.ErrorContains(t, err, "generated name FooBar conflicts")
}

func TestManifestBadYAML(t *testing.T) {
	_, _, err := enumizerinternal.MainManifest([]byte("\t:"))
	assert.ErrorContains(t, err, "failed to parse manifest")
}
