package emit

import (
	"github.com/nihohit/enumizer/internal/codefmt"
)

// writeResultCode writes the methods specific to Result-shaped types: maps
// for both sides, the unwrap family with error defaults, and the canonical
// conversions.
func (em emitter) writeResultCode(w *codefmt.Writer) {
	n := em.names
	success := em.spec.Variants[0].Name
	failure := em.spec.Variants[1].Name

	em.writeMapCode(w, 0)
	em.writeMapCode(w, 1)
	em.writeUnwrapCode(w, 0)
	em.writeUnwrapCode(w, 1)

	w.Printf("// %s returns the %s value, or def when %s holds %s.\n", n.UnwrapOr, success, n.Recv, failure)
	w.Printf("func (%s %s) %s(def %s) %s {\n", n.Recv, em.typeRef(), n.UnwrapOr, n.Params[0], n.Params[0])
	w.Printf("if %s {\n", em.tag(1))
	w.Printf("return def\n")
	w.Printf("}\n")
	w.Printf("return %s\n", em.field(0))
	w.Printf("}\n\n")

	w.Printf("// %s returns the %s value, or fn applied to the %s value.\n",
		n.UnwrapOrElse, success, failure)
	w.Printf("func (%s %s) %s(fn func(%s) %s) %s {\n",
		n.Recv, em.typeRef(), n.UnwrapOrElse, n.Params[1], n.Params[0], n.Params[0])
	w.Printf("if %s {\n", em.tag(1))
	w.Printf("return fn(%s)\n", em.field(1))
	w.Printf("}\n")
	w.Printf("return %s\n", em.field(0))
	w.Printf("}\n\n")

	sums := w.Import(SumsPkgPath, "sums")

	w.Printf("// %s converts %s to the canonical shape.\n", n.ToCanonical, n.Recv)
	w.Printf("func (%s %s) %s() %s.Result[%s, %s] {\n",
		n.Recv, em.typeRef(), n.ToCanonical, sums, n.Params[0], n.Params[1])
	w.Printf("if %s {\n", em.tag(1))
	w.Printf("return %s.Err[%s](%s)\n", sums, n.Params[0], em.field(1))
	w.Printf("}\n")
	w.Printf("return %s.Ok[%s, %s](%s)\n", sums, n.Params[0], n.Params[1], em.field(0))
	w.Printf("}\n\n")

	w.Printf("// %s converts a canonical Result into a %s.\n", n.FromCanonical, n.Type)
	w.Printf("func %s%s(c %s.Result[%s, %s]) %s {\n",
		n.FromCanonical, em.paramsDecl(w), sums, n.Params[0], n.Params[1], em.typeRef())
	w.Printf("if val, ok := c.Get(); ok {\n")
	w.Printf("return %s%s(val)\n", n.Ctor[0], em.paramsUse())
	w.Printf("}\n")
	w.Printf("val, _ := c.GetErr()\n")
	w.Printf("return %s%s(val)\n", n.Ctor[1], em.paramsUse())
	w.Printf("}\n\n")
}
