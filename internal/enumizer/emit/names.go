package emit

import (
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/nihohit/enumizer/internal/codefmt"
	"github.com/nihohit/enumizer/internal/enumizer/parse"
)

// Names is the full set of identifiers derived for one directive. Deriving
// them all up front keeps the emitters dumb and makes collisions checkable
// before any code is written.
//
// Slot indexes follow [parse.Spec.Variants]. A slot entry is empty when the
// shape has no such method for that variant, like As for an empty variant.
type Names struct {
	Type   string
	Params [2]string // type parameter per payload slot; "" for an empty variant
	Recv   string

	Ctor   [2]string
	Is     [2]string
	IsAnd  [2]string
	IsOr   [2]string
	As     [2]string
	AsMut  [2]string
	Map    [2]string
	Unwrap [2]string
	Field  [2]string
	Tag    string

	UnwrapOr     string
	UnwrapOrElse string

	ToCanonical   string
	FromCanonical string

	Branch    string
	FromBreak string
}

// Synthesize derives every generated identifier for the spec. The derivation
// is deterministic: the same spec always yields the same names.
func Synthesize(spec *parse.Spec) Names {
	var n Names
	n.Type = spec.Name
	r, _ := utf8.DecodeRuneInString(spec.Name)
	n.Recv = string(unicode.ToLower(r))

	for i, v := range spec.Variants {
		stem := Exported(v.Name)
		n.Ctor[i] = spec.Name + stem
		n.Is[i] = "Is" + stem
		if v.HasPayload {
			n.IsAnd[i] = "Is" + stem + "And"
			n.As[i] = "As" + stem
			n.AsMut[i] = "As" + stem + "Mut"
			n.Field[i] = fieldName(v.Name)
		}
	}

	switch spec.Shape {
	case parse.OptionShape:
		n.Params[1] = pickParam(&n, "T", "V", "T0")
		n.IsOr[0] = "Is" + Exported(spec.Variants[0].Name) + "Or"
		n.Map[1] = "Map"
		n.Unwrap[1] = "Unwrap"
		n.UnwrapOr = "UnwrapOr"
		n.UnwrapOrElse = "UnwrapOrElse"
		n.Tag = "is" + Exported(spec.Variants[1].Name)
		n.ToCanonical = "Option"

	case parse.ResultShape:
		n.Params[0] = pickParam(&n, "T", "V", "T0")
		n.Params[1] = pickParam(&n, "E", "F", "E0")
		n.Map[0] = "Map"
		n.Map[1] = "Map" + Exported(spec.Variants[1].Name)
		n.Unwrap[0] = "Unwrap"
		n.Unwrap[1] = "Unwrap" + Exported(spec.Variants[1].Name)
		n.UnwrapOr = "UnwrapOr"
		n.UnwrapOrElse = "UnwrapOrElse"
		n.Tag = "is" + Exported(spec.Variants[0].Name)
		n.ToCanonical = "Result"

	case parse.EitherShape:
		n.Params[0] = pickParam(&n, "L", "A", "L0")
		n.Params[1] = pickParam(&n, "R", "B", "R0")
		for i, v := range spec.Variants {
			n.Map[i] = "Map" + Exported(v.Name)
			n.Unwrap[i] = "Unwrap" + Exported(v.Name)
		}
		n.Tag = "is" + Exported(spec.Variants[0].Name)
		n.ToCanonical = "Either"
	}

	n.FromCanonical = spec.Name + "From" + n.ToCanonical

	if spec.Try {
		n.Branch = "Branch"
		n.FromBreak = spec.Name + "FromBreak"
	}

	// A field named like the tag would break the struct. Disambiguate the tag
	// against the payload fields.
	fields := make(codefmt.NS)
	for _, f := range n.Field {
		if f != "" {
			fields.Reserve(f)
		}
	}
	n.Tag = fields.Name(n.Tag)

	return n
}

// TopLevel returns the package-scope identifiers the directive generates.
func (n Names) TopLevel() []string {
	names := []string{n.Type, n.Ctor[0], n.Ctor[1], n.FromCanonical}
	if n.FromBreak != "" {
		names = append(names, n.FromBreak)
	}
	return names
}

// Methods returns every generated method name.
func (n Names) Methods() []string {
	var names []string
	for i := range n.Is {
		for _, name := range []string{n.Is[i], n.IsAnd[i], n.IsOr[i], n.As[i], n.AsMut[i], n.Map[i], n.Unwrap[i]} {
			if name != "" {
				names = append(names, name)
			}
		}
	}
	if n.UnwrapOr != "" {
		names = append(names, n.UnwrapOr, n.UnwrapOrElse)
	}
	names = append(names, n.ToCanonical)
	if n.Branch != "" {
		names = append(names, n.Branch)
	}
	return names
}

// pickParam returns the first candidate that does not collide with an already
// derived identifier. A type parameter shadowing the type name would make the
// generic type unreferencable inside its own methods.
func pickParam(n *Names, candidates ...string) string {
	for _, cand := range candidates {
		if cand == n.Type || cand == n.Ctor[0] || cand == n.Ctor[1] || cand == n.Params[0] {
			continue
		}
		return cand
	}
	panic("unreachable")
}

// Exported capitalizes the first rune to make a method name stem.
func Exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func unexported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// fieldName lowers a variant name into a struct field name, dodging keywords.
func fieldName(name string) string {
	name = unexported(name)
	if token.Lookup(name).IsKeyword() {
		return name + "_"
	}
	return name
}
