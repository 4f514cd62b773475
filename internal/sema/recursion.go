package sema

import (
	"fmt"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/types"
)

type edge struct {
	to  types.DeclID
	via *ast.TypeRef
}

// findCycle returns the edges of a path from cur back to target, or nil.
func (c *checker) findCycle(target, cur types.DeclID, edges func(types.DeclID) []edge, visited map[types.DeclID]bool) []edge {
	if visited[cur] {
		return nil
	}
	visited[cur] = true
	for _, e := range edges(cur) {
		if e.to == target {
			return []edge{e}
		}
		if rest := c.findCycle(target, e.to, edges, visited); rest != nil {
			return append([]edge{e}, rest...)
		}
	}
	return nil
}

func cycleError(c *checker, format string, d ast.Decl, path []edge) error {
	h := d.Header()
	err := diag.Errorf(diag.RecursiveInclusionError, h.Loc, format, h.Name)
	for _, e := range path {
		err = err.WithNote(e.via.Loc, fmt.Sprintf("through '%s'", c.graph.Decl(e.to).Header().QualifiedName()))
	}
	return err
}

// valueEdges lists the structs and unions that id contains by value.
// Container types (Array, Optional, Vector, Map, Set) and callbacks break
// the chain.
func (c *checker) valueEdges(id types.DeclID) []edge {
	var refs []*ast.TypeRef
	switch d := c.graph.Decl(id).(type) {
	case *ast.Struct:
		for _, f := range d.Fields {
			refs = append(refs, f.Type)
		}
	case *ast.Union:
		for _, f := range d.Fields {
			if f.Type != nil {
				refs = append(refs, f.Type)
			}
		}
	}
	var out []edge
	for _, ref := range refs {
		t, ok := ref.Resolved()
		if !ok {
			continue
		}
		switch t := t.(type) {
		case types.Struct:
			out = append(out, edge{to: t.Decl, via: ref})
		case types.Union:
			out = append(out, edge{to: t.Decl, via: ref})
		}
	}
	return out
}

// checkRecursion reports every struct or union that contains itself by value.
func (c *checker) checkRecursion() error {
	return c.eachDecl(func(d ast.Decl) error {
		if d.Kind() != ast.DeclStruct && d.Kind() != ast.DeclUnion {
			return nil
		}
		path := c.findCycle(d.Header().ID, d.Header().ID, c.valueEdges, map[types.DeclID]bool{})
		if path == nil {
			return nil
		}
		return cycleError(c, d.Kind().String()+" '%s' contains itself by value", d, path)
	})
}
