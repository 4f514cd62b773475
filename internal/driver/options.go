package driver

import (
	"taihe/internal/codegen"
	"taihe/internal/env"
)

// Ext is the suffix of IDL source files.
const Ext = ".taihe"

// Options configure one compiler run.
type Options struct {
	// Sources are scanned non-recursively for *.taihe files.
	Sources []string
	// OutputDir receives generated files; empty means analysis only.
	OutputDir string
	// KeepNames publishes every name as written.
	KeepNames bool
	// Generate selects the generators.
	Generate codegen.Config

	Env      env.Environment
	Progress ProgressSink
}
