package emit

import (
	"github.com/nihohit/enumizer/internal/codefmt"
)

// writeEitherCode writes the methods specific to Either-shaped types. Neither
// variant is a failure, so there is no unwrap-with-default and no branch
// protocol; both sides get symmetric maps and unwraps instead.
func (em emitter) writeEitherCode(w *codefmt.Writer) {
	n := em.names

	em.writeMapCode(w, 0)
	em.writeMapCode(w, 1)
	em.writeUnwrapCode(w, 0)
	em.writeUnwrapCode(w, 1)

	sums := w.Import(SumsPkgPath, "sums")

	w.Printf("// %s converts %s to the canonical shape.\n", n.ToCanonical, n.Recv)
	w.Printf("func (%s %s) %s() %s.Either[%s, %s] {\n",
		n.Recv, em.typeRef(), n.ToCanonical, sums, n.Params[0], n.Params[1])
	w.Printf("if %s {\n", em.tag(1))
	w.Printf("return %s.Right[%s](%s)\n", sums, n.Params[0], em.field(1))
	w.Printf("}\n")
	w.Printf("return %s.Left[%s, %s](%s)\n", sums, n.Params[0], n.Params[1], em.field(0))
	w.Printf("}\n\n")

	w.Printf("// %s converts a canonical Either into a %s.\n", n.FromCanonical, n.Type)
	w.Printf("func %s%s(c %s.Either[%s, %s]) %s {\n",
		n.FromCanonical, em.paramsDecl(w), sums, n.Params[0], n.Params[1], em.typeRef())
	w.Printf("if val, ok := c.GetLeft(); ok {\n")
	w.Printf("return %s%s(val)\n", n.Ctor[0], em.paramsUse())
	w.Printf("}\n")
	w.Printf("val, _ := c.GetRight()\n")
	w.Printf("return %s%s(val)\n", n.Ctor[1], em.paramsUse())
	w.Printf("}\n\n")
}
