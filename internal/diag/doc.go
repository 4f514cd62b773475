// Package diag is the diagnostics subsystem of the compiler.
//
// A Diagnostic has a Code (its kind), a source.Loc, a message and optional
// notes. The Level of a diagnostic is fixed by its code: notes are
// informational, warnings never block code generation, errors and fatals do.
//
// Phases report failures by returning a *CompileError. Phase boundaries run
// their work through Manager.CaptureError or ForEach, which emit the carried
// diagnostic and keep going. Errors of any other type are internal bugs and
// are handed back to the caller unchanged.
//
// Rendering format:
//
//	pkg.taihe:3:8: error: `Foo` is not a type
//	    bar: Foo;
//	         ^^^
//
// Colour is decided once per Manager by a ColorDecider (AutoColor checks
// whether the sink is a terminal).
package diag
