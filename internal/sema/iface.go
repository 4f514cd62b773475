package sema

import (
	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/types"
)

// checkIfaceParents: parents must be interfaces and the inheritance graph
// must be acyclic.
func (c *checker) checkIfaceParents() error {
	if err := c.eachDecl(func(d ast.Decl) error {
		iface, ok := d.(*ast.Iface)
		if !ok {
			return nil
		}
		_, err := diag.Each(c.diags, iface.Extends, func(ref *ast.TypeRef) error {
			t, ok := ref.Resolved()
			if !ok {
				return nil
			}
			if _, isIface := t.(types.Iface); !isIface {
				return diag.Errorf(diag.TypeUsageError, ref.Loc,
					"interface '%s' can only extend interfaces, '%s' is not one", iface.Name, t.Repr())
			}
			return nil
		})
		return err
	}); err != nil {
		return err
	}

	return c.eachDecl(func(d ast.Decl) error {
		iface, ok := d.(*ast.Iface)
		if !ok {
			return nil
		}
		path := c.findCycle(d.Header().ID, d.Header().ID, c.ifaceEdges, map[types.DeclID]bool{})
		if path == nil {
			return nil
		}
		return cycleError(c, "interface '%s' inherits from itself", iface, path)
	})
}

// ifaceEdges lists the resolved interface parents of id.
func (c *checker) ifaceEdges(id types.DeclID) []edge {
	iface, ok := c.graph.Decl(id).(*ast.Iface)
	if !ok {
		return nil
	}
	var out []edge
	for _, ref := range iface.Extends {
		if t, ok := ref.Resolved(); ok {
			if p, ok := t.(types.Iface); ok {
				out = append(out, edge{to: p.Decl, via: ref})
			}
		}
	}
	return out
}
