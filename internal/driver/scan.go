package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"taihe/internal/diag"
	"taihe/internal/source"
	"taihe/internal/trace"
)

// sourceFile is a registered IDL source.
type sourceFile struct {
	path string
	pkg  string
}

// scan lists every source directory and registers the IDL files in it.
// Directories are not descended into.
func (c *Compiler) scan(ctx context.Context) error {
	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	seen := map[string]bool{}

	for _, dir := range c.opts.Sources {
		entries, err := os.ReadDir(dir)
		if err != nil {
			c.diags.Emit(diag.Newf(diag.SourceReadError, source.PathLoc(dir), "cannot read source directory: %v", err))
			continue
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			pkg, ok := c.classify(path, e)
			if !ok {
				trace.Point(tr, trace.ScopeModule, "skip", path, parent)
				continue
			}
			key := path
			if abs, err := filepath.Abs(path); err == nil {
				key = abs
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			c.files = append(c.files, sourceFile{path: path, pkg: pkg})
			c.events.OnEvent(Event{File: path, Stage: StageScan, Status: StatusQueued})
		}
	}
	return nil
}

// classify reports the package name of an entry, or warns and returns
// false when the entry is not a source to compile.
func (c *Compiler) classify(path string, e os.DirEntry) (string, bool) {
	loc := source.PathLoc(path)
	name := e.Name()

	if e.IsDir() {
		c.diags.Emit(diag.Newf(diag.IgnoredDirectoryWarn, loc, "ignoring directory '%s'", name))
		return "", false
	}

	stem, ext := splitExt(name)
	if ext != Ext {
		c.diags.Emit(diag.Newf(diag.IgnoredFileWarn, loc, "ignoring file without the %s extension", Ext).
			WithNote(loc, "rename to '"+stem+Ext+"' if it is an IDL source"))
		return "", false
	}

	if want := PackageName(stem); want != stem {
		c.diags.Emit(diag.Newf(diag.PackageNameWarn, loc, "package name '%s' is not normalized, ignoring file", stem).
			WithNote(loc, "rename to '"+want+Ext+"'"))
		return "", false
	}
	return stem, true
}

// splitExt splits "a.b.taihe" into "a.b" and ".taihe".
func splitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// PackageName normalizes a file stem into a package name: NFC form, dotted
// segments of letters, digits and underscores, none starting with a digit.
func PackageName(stem string) string {
	stem = norm.NFC.String(stem)
	var segs []string
	for _, seg := range strings.Split(stem, ".") {
		if seg == "" {
			continue
		}
		var b strings.Builder
		for i, r := range seg {
			switch {
			case unicode.IsLetter(r) || r == '_':
				b.WriteRune(r)
			case unicode.IsDigit(r):
				if i == 0 {
					b.WriteByte('_')
				}
				b.WriteRune(r)
			default:
				b.WriteByte('_')
			}
		}
		segs = append(segs, b.String())
	}
	if len(segs) == 0 {
		return "_"
	}
	return strings.Join(segs, ".")
}
