// Package enumizer provides directives for sum type code generation.
//
// Go has no sum types, so code modeling "one of two cases" tends to grow ad
// hoc flag fields and partially filled structs. Enumizer generates small,
// layout-stable sum types with your own domain vocabulary: declare a type
// with two named variants once, and the generator produces the constructors,
// predicates, accessors, and derived capabilities.
//
// To start with enumizer, add a build constraint to files containing
// enumizer directives:
//
//	//go:build enumizer
//
// Three shapes of types can be declared. [Option] declares a type with an
// empty variant and a payload variant, like a nullable value. [Result]
// declares a success variant and a failure variant with separate payloads.
// [Either] declares two symmetric payload variants with no failure meaning:
//
//	// source:
//	var _ = enumizer.Option("Sampler", "Leader", "Receiver")
//
//	// generated: (simplified)
//	type Sampler[T cmp.Ordered] struct { ... }
//	func SamplerLeader[T cmp.Ordered]() Sampler[T]
//	func SamplerReceiver[T cmp.Ordered](val T) Sampler[T]
//	func (s Sampler[T]) IsLeader() bool
//	func (s Sampler[T]) IsReceiver() bool
//	func (s Sampler[T]) AsReceiver() (T, bool)
//	func (s Sampler[T]) Map(fn func(T) T) Sampler[T]
//	func (s Sampler[T]) Unwrap() T
//	func (s Sampler[T]) UnwrapOr(def T) T
//
// After declaring types, run the enumizer command. It will generate
// enumizer_gen.go for your package:
//
//	go run github.com/nihohit/enumizer/cmd/enumizer
//
// Every generated type mirrors the memory layout of its canonical shape in
// [github.com/nihohit/enumizer/pkg/sums], and converts to and from it:
//
//	s.Option()                    // Sampler[T] -> sums.Option[T]
//	SamplerFromOption(canonical)  // sums.Option[T] -> Sampler[T]
//
// # Capabilities
//
// Generated types derive a default capability set: "eq", "ord", "hash",
// "clone", and "debug". [Derive] replaces the set:
//
//	var _ = enumizer.Result("Response", "Ok", "Fail",
//		enumizer.Derive("eq", "string", "json"),
//	)
//
// Capabilities map to methods as follows:
//
//	eq      Equal(other X) bool              requires comparable payloads
//	ord     Compare(other X) int             requires ordered payloads
//	hash    Hash(seed maphash.Seed) uint64   requires comparable payloads
//	clone   Clone() X
//	string  String() string                  fmt.Stringer
//	debug   GoString() string                fmt.GoStringer, constructor form
//	json    MarshalJSON/UnmarshalJSON
//
// The strongest requested capability picks the type parameter constraint:
// "ord" demands cmp.Ordered, "eq" and "hash" demand comparable, anything
// else allows any. "ord" and "hash" both require "eq" to be present so that
// ordering and hashing never disagree with equality.
//
// # Short-circuiting
//
// [Try] additionally generates a Branch method and a FromBreak function
// implementing a short-circuit protocol over [sums.Flow]. A helper that
// performs several fallible steps can stop at the first failure:
//
//	var _ = enumizer.Result("Response", "Ok", "Fail", enumizer.Try())
//
//	// generated: (simplified)
//	func (r Response[T, E]) Branch() sums.Flow[T, E]
//	func ResponseFromBreak[T, E comparable](val E) Response[T, E]
//
// Try is meaningful for Option and Result only; an Either has no failure
// variant to break on, and the directive is rejected.
//
// # Manifests
//
// Packages that prefer configuration over tagged Go files can describe their
// types in a YAML manifest and run the command with -m:
//
//	package: metrics
//	types:
//	  - shape: result
//	    name: sample window
//	    variants: [filled, empty]
//	    derive: [eq, json]
//
// Loose names like "sample window" are squashed into identifiers before
// generation.
package enumizer

// Directive is the opaque result of a type directive. It must be assigned to
// a package-level blank variable in a file constrained by "//go:build
// enumizer"; the variable disappears from the generated output.
type Directive *struct{}

// TypeOption configures a type directive. Use [Derive] or [Try].
type TypeOption *struct{}

// Option declares a sum type with an empty variant and a payload variant.
// The empty variant comes first:
//
//	var _ = enumizer.Option("Sampler", "Leader", "Receiver")
//
// Leader holds nothing; Receiver holds a value of the type parameter.
func Option(name, empty, payload string, opts ...TypeOption) Directive {
	panic("enumizer: not generated")
}

// Result declares a sum type with a success variant and a failure variant,
// each holding its own payload type:
//
//	var _ = enumizer.Result("Response", "Ok", "Fail")
func Result(name, success, failure string, opts ...TypeOption) Directive {
	panic("enumizer: not generated")
}

// Either declares a sum type with two symmetric payload variants. Neither
// variant means failure, so the unwrap-with-default family and [Try] are not
// available:
//
//	var _ = enumizer.Either("Choice", "Primary", "Secondary")
func Either(name, primary, secondary string, opts ...TypeOption) Directive {
	panic("enumizer: not generated")
}

// Derive replaces the default capability set of the directive. Unknown
// capability names are rejected at generation time, with a suggestion when a
// known one is close:
//
//	enumizer.Derive("eq", "ord", "json")
func Derive(caps ...string) TypeOption {
	panic("enumizer: not generated")
}

// Try generates the short-circuit protocol: a Branch method on the type and
// a FromBreak function restoring the failure variant from a break value.
func Try() TypeOption {
	panic("enumizer: not generated")
}
