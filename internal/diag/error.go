package diag

import (
	"errors"
	"fmt"

	"taihe/internal/source"
)

// CompileError is the only error kind that phase boundaries absorb. Any other
// error reaching CaptureError or ForEach is an internal bug and propagates.
type CompileError struct {
	Diag Diagnostic
}

func (e *CompileError) Error() string {
	if loc := e.Diag.Loc.String(); loc != "" {
		return fmt.Sprintf("%s: %s: %s", loc, e.Diag.Level(), e.Diag.Message)
	}
	return fmt.Sprintf("%s: %s", e.Diag.Level(), e.Diag.Message)
}

// WithNote appends a note and returns the same error for chaining.
func (e *CompileError) WithNote(loc source.Loc, msg string) *CompileError {
	e.Diag = e.Diag.WithNote(loc, msg)
	return e
}

// Errorf builds a CompileError with a formatted message.
func Errorf(code Code, loc source.Loc, format string, args ...any) *CompileError {
	return Newf(code, loc, format, args...).AsError()
}

// AsCompileError unwraps err to a CompileError if it is one.
func AsCompileError(err error) (*CompileError, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
