package ast

import (
	"taihe/internal/source"
)

// Use is `use a.b;` or `use a.b as c;`.
type Use struct {
	Path  []string
	Alias string
	Loc   source.Loc
}

// Package is the content of one source file. Its name is derived from the
// file name, not written in the file.
type Package struct {
	Name  string
	File  *source.File
	Attrs []*Attr
	Uses  []*Use
	Decls []Decl
}

// Loc points at the whole file.
func (p *Package) Loc() source.Loc {
	return source.Loc{File: p.File}
}

// Lookup returns the first declaration named name.
func (p *Package) Lookup(name string) Decl {
	for _, d := range p.Decls {
		if d.Header().Name == name {
			return d
		}
	}
	return nil
}
