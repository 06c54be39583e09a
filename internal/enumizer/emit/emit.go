// Package emit writes the Go source for declared sum types. Each directive
// becomes a struct mirroring the layout of its canonical shape in
// [github.com/nihohit/enumizer/pkg/sums], plus the derived method surface.
package emit

import (
	"github.com/nihohit/enumizer/internal/codefmt"
	"github.com/nihohit/enumizer/internal/enumizer/parse"
)

// SumsPkgPath is the import path of the canonical shapes package.
const SumsPkgPath = "github.com/nihohit/enumizer/pkg/sums"

// Write emits the full declaration for one spec: the type, its constructors,
// the shape methods, and the derived capabilities.
func Write(w *codefmt.Writer, spec *parse.Spec) {
	em := emitter{spec: spec, names: Synthesize(spec)}

	em.writeTypeCode(w)
	switch spec.Shape {
	case parse.OptionShape:
		em.writeOptionCode(w)
	case parse.ResultShape:
		em.writeResultCode(w)
	case parse.EitherShape:
		em.writeEitherCode(w)
	}
	em.writeDeriveCode(w)
	em.writeTryCode(w)
}

type emitter struct {
	spec  *parse.Spec
	names Names
}

// constraint returns the type parameter constraint implied by the capability
// set. Ordering needs cmp.Ordered, equality and hashing need comparable, and
// anything less constrains nothing.
func (em emitter) constraint(w *codefmt.Writer) string {
	switch {
	case em.spec.HasCap(parse.CapOrd):
		cmpName := w.Import("cmp", "cmp")
		return cmpName + ".Ordered"
	case em.spec.HasCap(parse.CapEq) || em.spec.HasCap(parse.CapHash):
		return "comparable"
	}
	return "any"
}

// paramsDecl returns the type parameter list declaration, like
// "[T cmp.Ordered, E cmp.Ordered]".
func (em emitter) paramsDecl(w *codefmt.Writer) string {
	c := em.constraint(w)
	decl := "["
	for _, param := range em.names.Params {
		if param == "" {
			continue
		}
		if decl != "[" {
			decl += ", "
		}
		decl += param + " " + c
	}
	return decl + "]"
}

// paramsUse returns the type argument list, like "[T, E]".
func (em emitter) paramsUse() string {
	use := "["
	for _, param := range em.names.Params {
		if param == "" {
			continue
		}
		if use != "[" {
			use += ", "
		}
		use += param
	}
	return use + "]"
}

// typeRef returns the parameterized type, like "Response[T, E]".
func (em emitter) typeRef() string {
	return em.names.Type + em.paramsUse()
}

// tagTrueSlot is the variant slot the tag field reports as true. It mirrors
// the canonical shape: ok means the present value for Option, the first
// variant otherwise.
func (em emitter) tagTrueSlot() int {
	if em.spec.Shape == parse.OptionShape {
		return 1
	}
	return 0
}

// tag returns the expression that is true when the receiver holds slot.
func (em emitter) tag(slot int) string {
	expr := em.names.Recv + "." + em.names.Tag
	if slot != em.tagTrueSlot() {
		expr = "!" + expr
	}
	return expr
}

func (em emitter) field(slot int) string {
	return em.names.Recv + "." + em.names.Field[slot]
}

// writeTypeCode writes the struct, the constructors, and the predicate and
// accessor methods shared by every shape.
func (em emitter) writeTypeCode(w *codefmt.Writer) {
	n := em.names
	spec := em.spec

	w.Printf("// %s is a sum type in the %s shape, holding %s or %s.\n",
		n.Type, spec.Shape, spec.Variants[0].Name, spec.Variants[1].Name)
	w.Printf("// Its memory layout mirrors the canonical %s shape.\n", spec.Shape)
	w.Printf("type %s%s struct {\n", n.Type, em.paramsDecl(w))
	for i, v := range spec.Variants {
		if v.HasPayload {
			w.Printf("%s %s\n", n.Field[i], n.Params[i])
		}
	}
	w.Printf("%s bool\n", n.Tag)
	w.Printf("}\n\n")

	for i, v := range spec.Variants {
		if !v.HasPayload {
			w.Printf("// %s returns a %s holding nothing.\n", n.Ctor[i], n.Type)
			w.Printf("func %s%s() %s {\n", n.Ctor[i], em.paramsDecl(w), em.typeRef())
			w.Printf("return %s{}\n", em.typeRef())
			w.Printf("}\n\n")
			continue
		}

		w.Printf("// %s returns a %s holding val as %s.\n", n.Ctor[i], n.Type, v.Name)
		w.Printf("func %s%s(val %s) %s {\n", n.Ctor[i], em.paramsDecl(w), n.Params[i], em.typeRef())
		if i == em.tagTrueSlot() {
			w.Printf("return %s{%s: val, %s: true}\n", em.typeRef(), n.Field[i], n.Tag)
		} else {
			w.Printf("return %s{%s: val}\n", em.typeRef(), n.Field[i])
		}
		w.Printf("}\n\n")
	}

	for i, v := range spec.Variants {
		w.Printf("// %s reports whether %s holds %s.\n", n.Is[i], n.Recv, v.Name)
		w.Printf("func (%s %s) %s() bool {\n", n.Recv, em.typeRef(), n.Is[i])
		w.Printf("return %s\n", em.tag(i))
		w.Printf("}\n\n")
	}

	for i := range spec.Variants {
		if n.IsAnd[i] == "" {
			continue
		}
		w.Printf("// %s reports whether %s holds %s and its value satisfies fn.\n",
			n.IsAnd[i], n.Recv, spec.Variants[i].Name)
		w.Printf("func (%s %s) %s(fn func(%s) bool) bool {\n", n.Recv, em.typeRef(), n.IsAnd[i], n.Params[i])
		w.Printf("return %s && fn(%s)\n", em.tag(i), em.field(i))
		w.Printf("}\n\n")
	}

	for i := range spec.Variants {
		if n.As[i] == "" {
			continue
		}
		w.Printf("// %s returns the %s value, if held.\n", n.As[i], spec.Variants[i].Name)
		w.Printf("func (%s %s) %s() (%s, bool) {\n", n.Recv, em.typeRef(), n.As[i], n.Params[i])
		w.Printf("return %s, %s\n", em.field(i), em.tag(i))
		w.Printf("}\n\n")

		w.Printf("// %s returns a pointer to the %s value, or nil when %s holds %s.\n",
			n.AsMut[i], spec.Variants[i].Name, n.Recv, spec.Variants[1-i].Name)
		w.Printf("func (%s *%s) %s() *%s {\n", n.Recv, em.typeRef(), n.AsMut[i], n.Params[i])
		w.Printf("if %s {\n", em.tag(1-i))
		w.Printf("return nil\n")
		w.Printf("}\n")
		w.Printf("return &%s\n", em.field(i))
		w.Printf("}\n\n")
	}
}

// writeMapCode writes an in-place map method for a payload slot.
func (em emitter) writeMapCode(w *codefmt.Writer, slot int) {
	n := em.names
	w.Printf("// %s applies fn to the %s value, if held.\n", n.Map[slot], em.spec.Variants[slot].Name)
	w.Printf("func (%s %s) %s(fn func(%s) %s) %s {\n",
		n.Recv, em.typeRef(), n.Map[slot], n.Params[slot], n.Params[slot], em.typeRef())
	w.Printf("if %s {\n", em.tag(slot))
	w.Printf("%s = fn(%s)\n", em.field(slot), em.field(slot))
	w.Printf("}\n")
	w.Printf("return %s\n", n.Recv)
	w.Printf("}\n\n")
}

// writeUnwrapCode writes an unwrap method for a payload slot, panicking with
// the held variant named when the wrong one is held.
func (em emitter) writeUnwrapCode(w *codefmt.Writer, slot int) {
	n := em.names
	want := em.spec.Variants[slot].Name
	got := em.spec.Variants[1-slot].Name

	w.Printf("// %s returns the %s value, panicking when %s holds %s.\n", n.Unwrap[slot], want, n.Recv, got)
	w.Printf("func (%s %s) %s() %s {\n", n.Recv, em.typeRef(), n.Unwrap[slot], n.Params[slot])
	w.Printf("if %s {\n", em.tag(1-slot))
	w.Printf("panic(\"%s: expected %s, got %s\")\n", n.Type, want, got)
	w.Printf("}\n")
	w.Printf("return %s\n", em.field(slot))
	w.Printf("}\n\n")
}
