// Package enumizeranalysis exposes the directive validation as a go/analysis
// pass, so editors and linters can report directive mistakes without running
// the generator.
package enumizeranalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/nihohit/enumizer/internal/codefmt"
	enumizerinternal "github.com/nihohit/enumizer/internal/enumizer"
)

// Analyzer validates the usage of enumizer in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumizer",
	Doc:  "linter for enumizer usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	gen, err := enumizerinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := gen.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
