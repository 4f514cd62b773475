package codegen

import (
	"os"
	"path/filepath"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/source"
)

// runtimeGen copies the runtime headers the generated sources include.
type runtimeGen struct{ dir string }

func (runtimeGen) Name() string { return "runtime" }

func (r runtimeGen) Generate(_ *ast.Graph, out *Output) error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return diag.Errorf(diag.SourceReadError, source.PathLoc(r.dir), "cannot read runtime headers: %v", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, ".h") || strings.HasSuffix(name, ".hpp")) {
			continue
		}
		path := filepath.Join(r.dir, name)
		// #nosec G304 -- path comes from the runtime resource directory
		data, err := os.ReadFile(path)
		if err != nil {
			return diag.Errorf(diag.SourceReadError, source.PathLoc(path), "cannot read runtime header: %v", err)
		}
		if err := out.Put("runtime", "include/taihe/"+name, data); err != nil {
			return err
		}
	}
	return nil
}
