package emit

import (
	"github.com/nihohit/enumizer/internal/codefmt"
	"github.com/nihohit/enumizer/internal/enumizer/parse"
)

// writeDeriveCode writes the methods for every derived capability, in the
// canonical capability order regardless of the order in the directive.
func (em emitter) writeDeriveCode(w *codefmt.Writer) {
	for _, c := range parse.AllCaps {
		if !em.spec.HasCap(c) {
			continue
		}
		switch c {
		case parse.CapEq:
			em.writeEqualCode(w)
		case parse.CapOrd:
			em.writeCompareCode(w)
		case parse.CapHash:
			em.writeHashCode(w)
		case parse.CapClone:
			em.writeCloneCode(w)
		case parse.CapString:
			em.writeStringCode(w)
		case parse.CapDebug:
			em.writeGoStringCode(w)
		case parse.CapJSON:
			em.writeJSONCode(w)
		}
	}
}

func (em emitter) writeEqualCode(w *codefmt.Writer) {
	n := em.names
	w.Printf("// Equal reports whether %s and other hold the same variant with equal values.\n", n.Recv)
	w.Printf("func (%s %s) Equal(other %s) bool {\n", n.Recv, em.typeRef(), em.typeRef())
	w.Printf("return %s == other\n", n.Recv)
	w.Printf("}\n\n")
}

func (em emitter) writeCompareCode(w *codefmt.Writer) {
	n := em.names
	cmpName := w.Import("cmp", "cmp")

	w.Printf("// Compare orders %s before %s, then compares held values.\n",
		em.spec.Variants[0].Name, em.spec.Variants[1].Name)
	w.Printf("func (%s %s) Compare(other %s) int {\n", n.Recv, em.typeRef(), em.typeRef())
	w.Printf("if %s.%s != other.%s {\n", n.Recv, n.Tag, n.Tag)
	w.Printf("if %s {\n", em.tag(0))
	w.Printf("return -1\n")
	w.Printf("}\n")
	w.Printf("return 1\n")
	w.Printf("}\n")
	if em.spec.Variants[0].HasPayload {
		w.Printf("if %s {\n", em.tag(0))
		w.Printf("return %s.Compare(%s, other.%s)\n", cmpName, em.field(0), n.Field[0])
		w.Printf("}\n")
	} else {
		w.Printf("if %s {\n", em.tag(0))
		w.Printf("return 0\n")
		w.Printf("}\n")
	}
	w.Printf("return %s.Compare(%s, other.%s)\n", cmpName, em.field(1), n.Field[1])
	w.Printf("}\n\n")
}

func (em emitter) writeHashCode(w *codefmt.Writer) {
	n := em.names
	maphash := w.Import("hash/maphash", "maphash")

	w.Printf("// Hash returns a seed-stable hash of %s.\n", n.Recv)
	w.Printf("func (%s %s) Hash(seed %s.Seed) uint64 {\n", n.Recv, em.typeRef(), maphash)
	w.Printf("return %s.Comparable(seed, %s)\n", maphash, n.Recv)
	w.Printf("}\n\n")
}

func (em emitter) writeCloneCode(w *codefmt.Writer) {
	n := em.names
	w.Printf("// Clone returns a copy of %s.\n", n.Recv)
	w.Printf("func (%s %s) Clone() %s {\n", n.Recv, em.typeRef(), em.typeRef())
	w.Printf("return %s\n", n.Recv)
	w.Printf("}\n\n")
}

func (em emitter) writeStringCode(w *codefmt.Writer) {
	n := em.names
	fmtName := w.Import("fmt", "fmt")

	w.Printf("// String implements fmt.Stringer.\n")
	w.Printf("func (%s %s) String() string {\n", n.Recv, em.typeRef())
	w.Printf("if %s {\n", em.tag(0))
	if em.spec.Variants[0].HasPayload {
		w.Printf("return %s.Sprintf(\"%s(%%v)\", %s)\n", fmtName, em.spec.Variants[0].Name, em.field(0))
	} else {
		w.Printf("return \"%s\"\n", em.spec.Variants[0].Name)
	}
	w.Printf("}\n")
	w.Printf("return %s.Sprintf(\"%s(%%v)\", %s)\n", fmtName, em.spec.Variants[1].Name, em.field(1))
	w.Printf("}\n\n")
}

func (em emitter) writeGoStringCode(w *codefmt.Writer) {
	n := em.names
	fmtName := w.Import("fmt", "fmt")

	w.Printf("// GoString implements fmt.GoStringer, printing the constructor form.\n")
	w.Printf("func (%s %s) GoString() string {\n", n.Recv, em.typeRef())
	w.Printf("if %s {\n", em.tag(0))
	em.writeGoStringReturn(w, fmtName, 0)
	w.Printf("}\n")
	em.writeGoStringReturn(w, fmtName, 1)
	w.Printf("}\n\n")
}

func (em emitter) writeGoStringReturn(w *codefmt.Writer, fmtName string, slot int) {
	n := em.names
	if em.spec.Shape == parse.OptionShape {
		// The single payload pins the type argument either way.
		if slot == 0 {
			w.Printf("return %s.Sprintf(\"%s[%%T]()\", %s)\n", fmtName, n.Ctor[0], em.field(1))
		} else {
			w.Printf("return %s.Sprintf(\"%s(%%#v)\", %s)\n", fmtName, n.Ctor[1], em.field(1))
		}
		return
	}
	// Two payloads: spell both type arguments out, only one is inferable.
	w.Printf("return %s.Sprintf(\"%s[%%T, %%T](%%#v)\", %s, %s, %s)\n",
		fmtName, n.Ctor[slot], em.field(0), em.field(1), em.field(slot))
}

func (em emitter) writeJSONCode(w *codefmt.Writer) {
	if em.spec.Shape == parse.OptionShape {
		em.writeOptionJSONCode(w)
		return
	}
	em.writeKeyedJSONCode(w)
}

// writeOptionJSONCode encodes the empty variant as null and the payload
// directly, like a nullable field.
func (em emitter) writeOptionJSONCode(w *codefmt.Writer) {
	n := em.names
	json := w.Import("encoding/json", "json")

	w.Printf("// MarshalJSON implements json.Marshaler. %s encodes as null.\n", em.spec.Variants[0].Name)
	w.Printf("func (%s %s) MarshalJSON() ([]byte, error) {\n", n.Recv, em.typeRef())
	w.Printf("if %s {\n", em.tag(0))
	w.Printf("return []byte(\"null\"), nil\n")
	w.Printf("}\n")
	w.Printf("return %s.Marshal(%s)\n", json, em.field(1))
	w.Printf("}\n\n")

	w.Printf("// UnmarshalJSON implements json.Unmarshaler.\n")
	w.Printf("func (%s *%s) UnmarshalJSON(data []byte) error {\n", n.Recv, em.typeRef())
	w.Printf("if string(data) == \"null\" {\n")
	w.Printf("*%s = %s{}\n", n.Recv, em.typeRef())
	w.Printf("return nil\n")
	w.Printf("}\n")
	w.Printf("var val %s\n", n.Params[1])
	w.Printf("if err := %s.Unmarshal(data, &val); err != nil {\n", json)
	w.Printf("return err\n")
	w.Printf("}\n")
	w.Printf("*%s = %s%s(val)\n", n.Recv, n.Ctor[1], em.paramsUse())
	w.Printf("return nil\n")
	w.Printf("}\n\n")
}

// writeKeyedJSONCode encodes two-payload shapes as a single-key object, the
// key naming the held variant.
func (em emitter) writeKeyedJSONCode(w *codefmt.Writer) {
	n := em.names
	json := w.Import("encoding/json", "json")
	fmtName := w.Import("fmt", "fmt")

	w.Printf("// MarshalJSON implements json.Marshaler, encoding a single-key object\n")
	w.Printf("// keyed by the held variant.\n")
	w.Printf("func (%s %s) MarshalJSON() ([]byte, error) {\n", n.Recv, em.typeRef())
	w.Printf("if %s {\n", em.tag(0))
	w.Printf("return %s.Marshal(map[string]any{%q: %s})\n", json, em.spec.Variants[0].Name, em.field(0))
	w.Printf("}\n")
	w.Printf("return %s.Marshal(map[string]any{%q: %s})\n", json, em.spec.Variants[1].Name, em.field(1))
	w.Printf("}\n\n")

	w.Printf("// UnmarshalJSON implements json.Unmarshaler.\n")
	w.Printf("func (%s *%s) UnmarshalJSON(data []byte) error {\n", n.Recv, em.typeRef())
	w.Printf("var obj map[string]%s.RawMessage\n", json)
	w.Printf("if err := %s.Unmarshal(data, &obj); err != nil {\n", json)
	w.Printf("return err\n")
	w.Printf("}\n")
	for i, v := range em.spec.Variants {
		w.Printf("if raw, ok := obj[%q]; ok {\n", v.Name)
		w.Printf("var val %s\n", n.Params[i])
		w.Printf("if err := %s.Unmarshal(raw, &val); err != nil {\n", json)
		w.Printf("return err\n")
		w.Printf("}\n")
		w.Printf("*%s = %s%s(val)\n", n.Recv, n.Ctor[i], em.paramsUse())
		w.Printf("return nil\n")
		w.Printf("}\n")
	}
	w.Printf("return %s.Errorf(\"%s: no variant key in %%s\", data)\n", fmtName, n.Type)
	w.Printf("}\n\n")
}

// writeTryCode writes the short-circuit protocol: Branch on the type and a
// FromBreak function restoring the failure variant from a break value.
func (em emitter) writeTryCode(w *codefmt.Writer) {
	if !em.spec.Try {
		return
	}

	n := em.names
	sums := w.Import(SumsPkgPath, "sums")
	success := em.spec.Variants[1-em.breakSlot()].Name
	failure := em.spec.Variants[em.breakSlot()].Name

	w.Printf("// %s exposes %s to the short-circuit protocol: %s continues with its\n", n.Branch, n.Recv, success)
	w.Printf("// value and %s breaks.\n", failure)
	w.Printf("func (%s %s) %s() %s.Flow[%s, %s] {\n",
		n.Recv, em.typeRef(), n.Branch, sums, em.continueType(), em.breakType())
	w.Printf("if %s {\n", em.tag(em.breakSlot()))
	w.Printf("return %s.Break[%s](%s)\n", sums, em.continueType(), em.breakValue())
	w.Printf("}\n")
	w.Printf("return %s.Continue[%s, %s](%s)\n", sums, em.continueType(), em.breakType(), em.field(1-em.breakSlot()))
	w.Printf("}\n\n")

	w.Printf("// %s rebuilds a %s from a break value, restoring %s.\n", n.FromBreak, n.Type, failure)
	if em.spec.Shape == parse.OptionShape {
		w.Printf("func %s%s(_ struct{}) %s {\n", n.FromBreak, em.paramsDecl(w), em.typeRef())
		w.Printf("return %s%s()\n", n.Ctor[0], em.paramsUse())
	} else {
		w.Printf("func %s%s(val %s) %s {\n", n.FromBreak, em.paramsDecl(w), em.breakType(), em.typeRef())
		w.Printf("return %s%s(val)\n", n.Ctor[1], em.paramsUse())
	}
	w.Printf("}\n\n")
}

// breakSlot is the variant slot that short-circuits: the empty variant of an
// Option, the failure variant of a Result.
func (em emitter) breakSlot() int {
	if em.spec.Shape == parse.OptionShape {
		return 0
	}
	return 1
}

func (em emitter) continueType() string {
	return em.names.Params[1-em.breakSlot()]
}

func (em emitter) breakType() string {
	if em.spec.Shape == parse.OptionShape {
		return "struct{}"
	}
	return em.names.Params[em.breakSlot()]
}

func (em emitter) breakValue() string {
	if em.spec.Shape == parse.OptionShape {
		return "struct{}{}"
	}
	return em.field(em.breakSlot())
}
