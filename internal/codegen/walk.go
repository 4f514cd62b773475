package codegen

import (
	"slices"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/types"
)

// walkType calls fn on t and every type nested in it.
func walkType(t types.Type, fn func(types.Type)) {
	if t == nil {
		return
	}
	fn(t)
	switch t := t.(type) {
	case types.Callback:
		for _, p := range t.Params {
			walkType(p, fn)
		}
		walkType(t.Return, fn)
	case types.Array:
		walkType(t.Elem, fn)
	case types.Optional:
		walkType(t.Elem, fn)
	case types.Vector:
		walkType(t.Elem, fn)
	case types.Map:
		walkType(t.Key, fn)
		walkType(t.Val, fn)
	case types.Set:
		walkType(t.Key, fn)
	}
}

// allRefs lists every type reference of d, including method signatures.
func allRefs(d ast.Decl) []*ast.TypeRef {
	refs := ast.TypeRefs(d)
	if iface, ok := d.(*ast.Iface); ok {
		for _, m := range iface.Methods {
			for _, p := range m.Params {
				refs = append(refs, p.Type)
			}
			if m.Return != nil {
				refs = append(refs, m.Return)
			}
		}
	}
	return refs
}

// deps lists the other packages whose declarations pkg refers to, sorted
// by name.
func deps(g *ast.Graph, pkg *ast.Package) []*ast.Package {
	seen := map[*ast.Package]bool{}
	for _, d := range pkg.Decls {
		for _, ref := range allRefs(d) {
			walkType(resolved(ref), func(t types.Type) {
				if id, ok := types.DeclOf(t); ok {
					if other := g.Decl(id).Header().Pkg; other != pkg {
						seen[other] = true
					}
				}
			})
		}
	}
	out := make([]*ast.Package, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *ast.Package) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// parents returns the direct parent interfaces of iface.
func parents(g *ast.Graph, iface *ast.Iface) []*ast.Iface {
	var out []*ast.Iface
	for _, ref := range iface.Extends {
		if id, ok := types.DeclOf(resolved(ref)); ok {
			if p, ok := g.Decl(id).(*ast.Iface); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// ancestors returns iface followed by every interface it inherits from,
// depth-first, each once.
func ancestors(g *ast.Graph, iface *ast.Iface) []*ast.Iface {
	var out []*ast.Iface
	seen := map[*ast.Iface]bool{}
	var visit func(*ast.Iface)
	visit = func(i *ast.Iface) {
		if seen[i] {
			return
		}
		seen[i] = true
		out = append(out, i)
		for _, p := range parents(g, i) {
			visit(p)
		}
	}
	visit(iface)
	return out
}
