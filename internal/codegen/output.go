package codegen

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"taihe/internal/diag"
	"taihe/internal/source"
)

// Output collects generated files in memory. Generators may write
// concurrently; nothing touches the disk until Flush.
type Output struct {
	mu    sync.Mutex
	files map[string]outFile
}

type outFile struct {
	owner string
	data  []byte
}

// NewOutput returns an empty output set.
func NewOutput() *Output {
	return &Output{files: make(map[string]outFile)}
}

// Put records data under the slash-separated relative path. A path already
// claimed by any generator is an OutputConflictFatal.
func (o *Output) Put(owner, path string, data []byte) error {
	path = filepath.ToSlash(filepath.Clean(path))
	o.mu.Lock()
	defer o.mu.Unlock()
	if prev, ok := o.files[path]; ok {
		return diag.Errorf(diag.OutputConflictFatal, source.PathLoc(path),
			"generator '%s' writes '%s', already written by '%s'", owner, path, prev.owner)
	}
	o.files[path] = outFile{owner: owner, data: data}
	return nil
}

// Paths lists recorded paths in sorted order.
func (o *Output) Paths() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	paths := make([]string, 0, len(o.files))
	for p := range o.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Get returns the contents recorded for path.
func (o *Output) Get(path string) ([]byte, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	f, ok := o.files[path]
	return f.data, ok
}

// Len returns the number of recorded files.
func (o *Output) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.files)
}

// Flush writes every file below dir in sorted path order. The first I/O
// failure stops the flush and is returned as an OutputWriteFatal.
func (o *Output) Flush(dir string) error {
	for _, p := range o.Paths() {
		data, _ := o.Get(p)
		dst := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return writeFatal(dst, err)
		}
		// #nosec G306 -- generated sources are meant to be world-readable
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return writeFatal(dst, err)
		}
	}
	return nil
}

func writeFatal(path string, err error) error {
	return diag.Errorf(diag.OutputWriteFatal, source.PathLoc(path), "cannot write generated file: %v", err)
}
