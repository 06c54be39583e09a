// Package enumizerinternal implements the code generation pipeline: parse
// directives, synthesize names, emit sum types, and merge the remaining
// directive-file code into the generated output.
package enumizerinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/nihohit/enumizer/internal/codefmt"
	"github.com/nihohit/enumizer/internal/enumizer/emit"
	"github.com/nihohit/enumizer/internal/enumizer/parse"
)

// Generator generates sum type code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Generator struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	specs []*parse.Spec
}

// New creates a new [Generator] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Generator, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Generator{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing and normalizing directives. All
// potential errors are returned by this method. It must be called before
// [Generate].
func (g *Generator) Build() error {
	specs, err := g.p.ParseSpecs()
	errs := errors.Join(err, g.p.Validate())
	if errs != nil {
		return errs
	}

	g.specs = specs
	if len(specs) == 0 {
		// No directives found
		return nil
	}

	// Reserve every generated package-scope name up front so collisions with
	// existing declarations, or between directives, surface before any code
	// is written.
	for _, spec := range specs {
		names := emit.Synthesize(spec)
		for _, name := range names.TopLevel() {
			if !g.ns.Reserve(name) {
				err := codefmt.Errorf(g.p, spec, "generated name %s conflicts with an existing declaration", name)
				errs = errors.Join(errs, err)
			}
		}

		methods := make(codefmt.NS)
		for _, name := range names.Methods() {
			if !methods.Reserve(name) {
				err := codefmt.Errorf(g.p, spec, "generated methods named %s collide; rename a variant", name)
				errs = errors.Join(errs, err)
			}
		}
	}

	return errs
}

// Generate generates sum type code for the package. It must be called after
// [Build] succeeds. It returns nil when the package has no directives.
func (g *Generator) Generate() []byte {
	if len(g.specs) == 0 {
		return nil
	}

	g.writeTypeCode()
	g.mergeCode()
	return g.frameCode()
}

// writeTypeCode writes declarations for every directive in source order.
func (g *Generator) writeTypeCode() {
	g.w.Printf("// enumizer: declared sum types\n\n")

	specs := slices.Clone(g.specs)
	slices.SortFunc(specs, func(a, b *parse.Spec) int {
		if a.Pos() < b.Pos() {
			return -1
		}
		if a.Pos() > b.Pos() {
			return 1
		}
		return 0
	})

	for _, spec := range specs {
		local := maps.Clone(g.ns)
		w := g.w.WithNS(local)
		emit.Write(w, spec)
		g.w.Printf("\n")
	}
}

// mergeCode copies non-directive code from the source files tagged with
// "//go:build enumizer". It erases the directive variables to remove any
// references to the enumizer package.
func (g *Generator) mergeCode() {
	for _, file := range g.p.EnumizerGoFiles() {
		name := filepath.Base(g.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(g.buf, "// %s:\n\n", name)
				first = false
			}

			// Erase directive variables
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-directive values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						// Grouped consts may not have values
						names = append(names, spec.Names[i])
						continue
					}

					call, isCall := ast.Unparen(spec.Values[i]).(*ast.CallExpr)
					if isCall && g.p.IsDirective(call, "") {
						continue
					}
					names = append(names, spec.Names[i])
					values = append(values, spec.Values[i])
				}

				if len(names) == 0 {
					// Input:  var ( _ = enumizer.Option(...) )
					// Output: var ()
					c.Delete()
				} else if len(names) != len(spec.Names) {
					// Input:  var ( _, b = enumizer.Option(...), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(g.w, decl)

			// Write rewritten declaration code
			printer.Fprint(g.buf, g.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(g.buf, "\n\n")
		}
	}
}

func (g *Generator) frameCode() []byte {
	return frame(g.p.Pkg().Name, g.w, g.buf)
}

// frame prepends the build constraint, the generated-code header, the package
// clause, and the collected imports, then applies gofmt.
func frame(pkgName string, w *codefmt.Writer, body io.Reader) []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !enumizer\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/nihohit/enumizer%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", pkgName)

	if len(w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range w.Imports() {
			// Check for remaining enumizer import
			if parse.IsEnumizerImport(imp.Path()) {
				fmt.Println("enumizer import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, body)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
