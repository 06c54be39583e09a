package parse

import (
	"errors"
	"go/ast"
	"strings"

	"github.com/nihohit/enumizer/internal/codefmt"
)

// Validate checks for directive usages outside expected paths. It collects all
// errors instead of stopping at the first error.
//
// Most validation rules live in the narrow parsing functions. The rules here
// need to see whole files: the build constraint, and directives sitting
// anywhere other than a package-level blank variable.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectiveUsages(file))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/nihohit/enumizer"
// have a "//go:build enumizer" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find enumizer import
	var enumizerImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsEnumizerImport(strings.Trim(imp.Path.Value, `"`)) {
			enumizerImport = imp
			break
		}
	}
	if enumizerImport == nil {
		return nil // No enumizer import found
	}

	// Check for "//go:build enumizer" constraint
	if hasGoBuildEnumizer(file) {
		return nil // Constraint satisfied
	}

	// This file imports enumizer but has no "//go:build enumizer" constraint
	return codefmt.Errorf(p, enumizerImport, `file must have "//go:build enumizer" constraint when importing enumizer`)
}

// validateDirectiveUsages checks that type directives appear only as values of
// package-level blank variables, and that option directives appear only as
// arguments of type directives.
//
// Directive files are erased at code generation, so a directive result that
// leaks into a named variable or a function body would leave dangling
// references behind.
func (p *Parser) validateDirectiveUsages(file *ast.File) error {
	if !hasGoBuildEnumizer(file) {
		return nil
	}

	// Type directive calls assigned to package-level blank variables are the
	// expected paths, and so are the option calls passed to them.
	allowed := make(map[*ast.CallExpr]struct{})
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
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
				if directive, ok := p.GetDirective(call); ok && isShapeDirective(directive) {
					allowed[call] = struct{}{}
					for _, arg := range call.Args {
						if optCall, ok := ast.Unparen(arg).(*ast.CallExpr); ok {
							if _, ok := p.GetDirective(optCall); ok {
								allowed[optCall] = struct{}{}
							}
						}
					}
				}
			}
		}
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}
		if _, ok := allowed[call]; ok {
			return true
		}

		if isShapeDirective(directive) {
			err := codefmt.Errorf(p, call, "%s must be assigned to a package-level blank variable", directive)
			errs = errors.Join(errs, err)
		} else {
			err := codefmt.Errorf(p, call, "cannot use %s outside a type directive", directive)
			errs = errors.Join(errs, err)
		}
		return false
	})
	return errs
}
