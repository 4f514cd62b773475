package lexer

import (
	"taihe/internal/diag"
	"taihe/internal/source"
)

// FirstError keeps the first reported problem as a CompileError. Later
// reports are dropped: a file stops at its first syntax error.
type FirstError struct {
	Files *source.FileSet
	Err   *diag.CompileError
}

func (r *FirstError) Report(code diag.Code, span source.Span, msg string) {
	if r.Err != nil {
		return
	}
	r.Err = diag.New(code, r.Files.Loc(span), msg).AsError()
}
