package emit

import (
	"github.com/nihohit/enumizer/internal/codefmt"
)

// writeOptionCode writes the methods specific to Option-shaped types: the
// empty-or predicate, map, the unwrap family, and the canonical conversions.
func (em emitter) writeOptionCode(w *codefmt.Writer) {
	n := em.names
	empty := em.spec.Variants[0].Name
	payload := em.spec.Variants[1].Name

	w.Printf("// %s reports whether %s holds %s or its %s value satisfies fn.\n",
		n.IsOr[0], n.Recv, empty, payload)
	w.Printf("func (%s %s) %s(fn func(%s) bool) bool {\n", n.Recv, em.typeRef(), n.IsOr[0], n.Params[1])
	w.Printf("return %s || fn(%s)\n", em.tag(0), em.field(1))
	w.Printf("}\n\n")

	em.writeMapCode(w, 1)
	em.writeUnwrapCode(w, 1)

	w.Printf("// %s returns the %s value, or def when %s holds %s.\n", n.UnwrapOr, payload, n.Recv, empty)
	w.Printf("func (%s %s) %s(def %s) %s {\n", n.Recv, em.typeRef(), n.UnwrapOr, n.Params[1], n.Params[1])
	w.Printf("if %s {\n", em.tag(0))
	w.Printf("return def\n")
	w.Printf("}\n")
	w.Printf("return %s\n", em.field(1))
	w.Printf("}\n\n")

	w.Printf("// %s returns the %s value, or the result of fn when %s holds %s.\n",
		n.UnwrapOrElse, payload, n.Recv, empty)
	w.Printf("func (%s %s) %s(fn func() %s) %s {\n", n.Recv, em.typeRef(), n.UnwrapOrElse, n.Params[1], n.Params[1])
	w.Printf("if %s {\n", em.tag(0))
	w.Printf("return fn()\n")
	w.Printf("}\n")
	w.Printf("return %s\n", em.field(1))
	w.Printf("}\n\n")

	sums := w.Import(SumsPkgPath, "sums")

	w.Printf("// %s converts %s to the canonical shape.\n", n.ToCanonical, n.Recv)
	w.Printf("func (%s %s) %s() %s.Option[%s] {\n", n.Recv, em.typeRef(), n.ToCanonical, sums, n.Params[1])
	w.Printf("if %s {\n", em.tag(0))
	w.Printf("return %s.None[%s]()\n", sums, n.Params[1])
	w.Printf("}\n")
	w.Printf("return %s.Some(%s)\n", sums, em.field(1))
	w.Printf("}\n\n")

	w.Printf("// %s converts a canonical Option into a %s.\n", n.FromCanonical, n.Type)
	w.Printf("func %s%s(c %s.Option[%s]) %s {\n", n.FromCanonical, em.paramsDecl(w), sums, n.Params[1], em.typeRef())
	w.Printf("if val, ok := c.Get(); ok {\n")
	w.Printf("return %s(val)\n", n.Ctor[1])
	w.Printf("}\n")
	w.Printf("return %s%s()\n", n.Ctor[0], em.paramsUse())
	w.Printf("}\n\n")
}
