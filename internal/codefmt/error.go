package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error annotated with the source range it complains about.
// The analysis integration reads the range back to place diagnostics; the
// plain Error string prefixes the position for terminal output.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the message error without position information.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the start of the source range. It is invalid when the error did
// not originate from source code.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the source range. It may be invalid even when Pos is
// valid.
func (e CodeError) End() token.Pos { return e.end }

// Error implements the error interface, prefixing the position when known.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}
	if !e.pos.IsValid() {
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Errorf formats an error pinned to poser's source range. A CodeError is a
// leaf diagnostic: wrapping another error would smuggle a second position into
// the message, so %w is rejected.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	return &CodeError{
		err:  fmt.Errorf(format, f.wrapPrintfArgs(args)...),
		pos:  pos,
		end:  end,
		fset: f.Fset,
	}
}
