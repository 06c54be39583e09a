package parse

import (
	"go/ast"
	"go/constant"
	"go/token"
	"strconv"

	"github.com/nihohit/enumizer/internal/codefmt"
)

type arg interface {
	bool | string
}

func parseArgExpr[T arg](p *Parser, expr ast.Expr) (T, error) {
	var v T
	switch any(v).(type) {
	case bool:
		tv := p.Pkg().TypesInfo.Types[expr]
		if tv.Value == nil || tv.Value.Kind() != constant.Bool {
			return v, codefmt.Errorf(p, expr, "%c is not bool literal", expr)
		}

		x := constant.BoolVal(tv.Value)
		v = any(x).(T)

	case string:
		lit, ok := expr.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return v, codefmt.Errorf(p, expr, "%c is not string literal", expr)
		}

		x, _ := strconv.Unquote(lit.Value)
		v = any(x).(T)

	default:
		panic("unreachable")
	}
	return v, nil
}

func needArgs0(p *Parser, call *ast.CallExpr) error {
	if len(call.Args) != 0 {
		return codefmt.Errorf(p, call, "need no parameters")
	}
	return nil
}

// needArgsAtLeast3 splits the call arguments into the three leading name
// arguments and the trailing option arguments.
func needArgsAtLeast3(p *Parser, call *ast.CallExpr) (ast.Expr, ast.Expr, ast.Expr, []ast.Expr, error) {
	if len(call.Args) < 3 {
		return nil, nil, nil, nil, codefmt.Errorf(p, call, "need at least 3 parameters")
	}
	return call.Args[0], call.Args[1], call.Args[2], call.Args[3:], nil
}
