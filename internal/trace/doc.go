// Package trace provides a levelled span tracer for the compiler driver.
//
// It records compiler phases and per-file work so slow or stuck runs can be
// diagnosed without a debugger.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	taihec build --trace=- --trace-level=detail idl/
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelPhase: Driver and phase boundaries
//   - LevelDetail: Per-file and per-generator events
//   - LevelDebug: Everything
//
// # Scopes
//
//   - ScopeDriver: One compiler run
//   - ScopePass: SCAN, PARSE, VALIDATE, ATTR, GENERATE
//   - ScopeModule: One source file or one generator
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
