package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/tools/go/packages"

	"github.com/nihohit/enumizer/internal/codefmt"
	"github.com/nihohit/enumizer/internal/lcs"
)

// Shape identifies which two-variant layout a directive declares.
type Shape int

const (
	OptionShape Shape = iota + 1
	ResultShape
	EitherShape
)

// String returns the directive name declaring the shape.
func (s Shape) String() string {
	switch s {
	case OptionShape:
		return "Option"
	case ResultShape:
		return "Result"
	case EitherShape:
		return "Either"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Cap is a derivable capability such as "eq" or "json".
type Cap string

const (
	CapEq     Cap = "eq"
	CapOrd    Cap = "ord"
	CapHash   Cap = "hash"
	CapClone  Cap = "clone"
	CapString Cap = "string"
	CapDebug  Cap = "debug"
	CapJSON   Cap = "json"
)

// AllCaps lists every known capability in emission order.
var AllCaps = []Cap{CapEq, CapOrd, CapHash, CapClone, CapString, CapDebug, CapJSON}

// DefaultCaps is the capability set used when a directive carries no Derive
// option.
var DefaultCaps = []Cap{CapEq, CapOrd, CapHash, CapClone, CapDebug}

// Variant is one of the two named cases of a declared type. An empty variant
// carries no payload, like the none case of an Option.
type Variant struct {
	Name       string
	HasPayload bool
}

// Spec is a normalized type directive. Variants keep the declaration order:
// for Option the empty variant comes first, for Result the success variant,
// for Either the primary variant.
type Spec struct {
	Shape    Shape
	Name     string
	Variants [2]Variant
	Caps     []Cap
	Try      bool

	pkg      *packages.Package
	pos, end token.Pos
}

func (s *Spec) Pkg() *packages.Package { return s.pkg }
func (s *Spec) Pos() token.Pos         { return s.pos }
func (s *Spec) End() token.Pos         { return s.end }

// ParseSpecs collects and normalizes every type directive declared in
// enumizer-tagged files of the package. It collects all errors instead of
// stopping at the first one.
func (p *Parser) ParseSpecs() ([]*Spec, error) {
	var specs []*Spec
	var errs error

	for _, file := range p.EnumizerGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, s := range gen.Specs {
				val, ok := s.(*ast.ValueSpec)
				if !ok || len(val.Names) != len(val.Values) {
					continue
				}

				for i, name := range val.Names {
					if name.Name != "_" {
						continue
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok {
						continue
					}

					directive, ok := p.GetDirective(call)
					if !ok || !isShapeDirective(directive) {
						continue
					}

					spec, err := p.parseSpec(directive, call)
					if err != nil {
						errs = errors.Join(errs, err)
						continue
					}
					specs = append(specs, spec)
				}
			}
		}
	}

	// The same type name cannot be declared twice, even across files.
	byName := make(map[string]*Spec)
	for _, spec := range specs {
		if prev, ok := byName[spec.Name]; ok {
			err := codefmt.Errorf(p, spec, "type %s already declared at %b", spec.Name, prev)
			errs = errors.Join(errs, err)
			continue
		}
		byName[spec.Name] = spec
	}

	if errs != nil {
		return nil, errs
	}
	return specs, nil
}

func (p *Parser) parseSpec(directive string, call *ast.CallExpr) (*Spec, error) {
	spec := &Spec{pkg: p.pkg, pos: call.Pos(), end: call.End()}
	switch directive {
	case "Option":
		spec.Shape = OptionShape
	case "Result":
		spec.Shape = ResultShape
	case "Either":
		spec.Shape = EitherShape
	default:
		panic("unreachable")
	}

	nameExpr, firstExpr, secondExpr, optExprs, err := needArgsAtLeast3(p, call)
	if err != nil {
		return nil, err
	}

	var errs error

	spec.Name, err = parseArgExpr[string](p, nameExpr)
	errs = errors.Join(errs, err)

	first, err := parseArgExpr[string](p, firstExpr)
	errs = errors.Join(errs, err)

	second, err := parseArgExpr[string](p, secondExpr)
	errs = errors.Join(errs, err)

	// Only the first variant of an Option is empty. Every other variant
	// carries a payload.
	spec.Variants[0] = Variant{Name: first, HasPayload: spec.Shape != OptionShape}
	spec.Variants[1] = Variant{Name: second, HasPayload: true}

	hasDerive := false
	for _, optExpr := range optExprs {
		optCall, ok := ast.Unparen(optExpr).(*ast.CallExpr)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, optExpr, "%c is not an enumizer option", optExpr))
			continue
		}

		optName, ok := p.GetDirective(optCall)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, optExpr, "%c is not an enumizer option", optExpr))
			continue
		}

		switch optName {
		case "Derive":
			hasDerive = true
			for _, capExpr := range optCall.Args {
				name, err := parseArgExpr[string](p, capExpr)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				spec.Caps = append(spec.Caps, Cap(name))
			}

		case "Try":
			errs = errors.Join(errs, needArgs0(p, optCall))
			spec.Try = true

		default:
			errs = errors.Join(errs, codefmt.Errorf(p, optCall, "cannot use %s here", optName))
		}
	}
	if !hasDerive {
		spec.Caps = append([]Cap(nil), DefaultCaps...)
	}
	if errs != nil {
		// Normalizing a half-parsed spec would only cascade errors.
		return nil, errs
	}

	for _, err := range spec.Normalize() {
		errs = errors.Join(errs, codefmt.Errorf(p, spec, "%s", err.Error()))
	}

	if errs != nil {
		return nil, errs
	}
	return spec, nil
}

// Normalize validates the spec and canonicalizes its capability set. It has no
// notion of source positions so it serves both directive and manifest inputs.
// The returned errors carry no position; callers attach one if they have it.
func (s *Spec) Normalize() []error {
	var errs []error

	for _, name := range []string{s.Name, s.Variants[0].Name, s.Variants[1].Name} {
		if !isUsableIdent(name) {
			errs = append(errs, fmt.Errorf("invalid name %q; need an identifier starting with a letter", name))
		}
	}

	if s.Variants[0].Name == s.Variants[1].Name {
		errs = append(errs, fmt.Errorf("variants must be distinct; got %q twice", s.Variants[0].Name))
	} else if capitalize(s.Variants[0].Name) == capitalize(s.Variants[1].Name) {
		errs = append(errs, fmt.Errorf("variants %q and %q collide after capitalization", s.Variants[0].Name, s.Variants[1].Name))
	}
	for _, v := range s.Variants {
		if v.Name == s.Name {
			errs = append(errs, fmt.Errorf("variant %q conflicts with the type name", v.Name))
		}
	}

	// Deduplicate capabilities keeping the first occurrence order.
	set := linkedhashset.New()
	for _, c := range s.Caps {
		if !isKnownCap(c) {
			if closest, ok := lcs.Closest(string(c), capNames()); ok {
				errs = append(errs, fmt.Errorf("unknown capability %q; did you mean %q?", c, closest))
			} else {
				errs = append(errs, fmt.Errorf("unknown capability %q", c))
			}
			continue
		}
		set.Add(c)
	}
	s.Caps = s.Caps[:0]
	set.Each(func(_ int, value any) {
		s.Caps = append(s.Caps, value.(Cap))
	})

	if s.HasCap(CapOrd) && !s.HasCap(CapEq) {
		errs = append(errs, fmt.Errorf(`capability "ord" requires "eq"`))
	}
	if s.HasCap(CapHash) && !s.HasCap(CapEq) {
		errs = append(errs, fmt.Errorf(`capability "hash" requires "eq"`))
	}

	if s.Try && s.Shape == EitherShape {
		errs = append(errs, errors.New("cannot use Try with Either; neither variant is a failure"))
	}

	return errs
}

// HasCap reports whether the capability survived normalization.
func (s *Spec) HasCap(c Cap) bool {
	for _, have := range s.Caps {
		if have == c {
			return true
		}
	}
	return false
}

func isKnownCap(c Cap) bool {
	for _, known := range AllCaps {
		if c == known {
			return true
		}
	}
	return false
}

func capNames() []string {
	names := make([]string, len(AllCaps))
	for i, c := range AllCaps {
		names[i] = string(c)
	}
	return names
}

// isUsableIdent reports whether the name can head generated identifiers.
// Leading underscores are rejected because the first rune becomes a method
// receiver name.
func isUsableIdent(name string) bool {
	if !token.IsIdentifier(name) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLetter(r)
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
