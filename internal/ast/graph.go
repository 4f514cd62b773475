package ast

import (
	"taihe/internal/types"
)

// Graph is the declaration graph of one compiler run. It is appended to
// during PARSE and frozen when VALIDATE starts; after that only the
// resolution cells and attribute flags inside declarations change.
type Graph struct {
	packages []*Package
	byName   map[string]*Package
	decls    *Arena[Decl]
	frozen   bool
}

func NewGraph() *Graph {
	return &Graph{
		byName: make(map[string]*Package),
		decls:  NewArena[Decl](64),
	}
}

// AddPackage registers pkg and assigns declaration IDs. Packages with a
// duplicate name are kept; VALIDATE reports them.
func (g *Graph) AddPackage(pkg *Package) {
	if g.frozen {
		panic("ast: AddPackage on a frozen graph")
	}
	for _, d := range pkg.Decls {
		h := d.Header()
		h.Pkg = pkg
		h.ID = types.DeclID(g.decls.Allocate(d))
	}
	g.packages = append(g.packages, pkg)
	if _, dup := g.byName[pkg.Name]; !dup {
		g.byName[pkg.Name] = pkg
	}
}

func (g *Graph) Freeze()      { g.frozen = true }
func (g *Graph) Frozen() bool { return g.frozen }

// Packages returns the packages in registration order. READONLY.
func (g *Graph) Packages() []*Package { return g.packages }

// Package returns the first package registered under name.
func (g *Graph) Package(name string) *Package { return g.byName[name] }

// Decl returns the declaration for id, or nil.
func (g *Graph) Decl(id types.DeclID) Decl {
	return g.decls.Get(uint32(id))
}

// Decls returns every declaration in ID order. READONLY.
func (g *Graph) Decls() []Decl { return g.decls.Slice() }

// DeclOfType maps a user type back to its declaration.
func (g *Graph) DeclOfType(t types.Type) Decl {
	id, ok := types.DeclOf(t)
	if !ok {
		return nil
	}
	return g.Decl(id)
}
