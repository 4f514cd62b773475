package diag

import (
	"fmt"

	"taihe/internal/source"
)

// NoteEntry is a note attached to a diagnostic. Notes render as their own
// "note" header but never raise the manager's max level.
type NoteEntry struct {
	Loc source.Loc
	Msg string
}

// Diagnostic is a single compiler message.
type Diagnostic struct {
	code    Code
	Loc     source.Loc
	Message string
	Notes   []NoteEntry
}

// New builds a diagnostic of the given kind.
func New(code Code, loc source.Loc, msg string) Diagnostic {
	return Diagnostic{code: code, Loc: loc, Message: msg}
}

// Newf is New with a formatted message.
func Newf(code Code, loc source.Loc, format string, args ...any) Diagnostic {
	return New(code, loc, fmt.Sprintf(format, args...))
}

func (d Diagnostic) Code() Code { return d.code }

// Level is derived from the code and cannot be changed.
func (d Diagnostic) Level() Level { return d.code.Level() }

// WithNote returns a copy of d with one more note.
func (d Diagnostic) WithNote(loc source.Loc, msg string) Diagnostic {
	notes := make([]NoteEntry, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, NoteEntry{Loc: loc, Msg: msg})
	return d
}

// AsError wraps the diagnostic so it can travel as an error value.
func (d Diagnostic) AsError() *CompileError {
	return &CompileError{Diag: d}
}
