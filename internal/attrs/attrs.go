// Package attrs annotates a validated graph from its attributes. The pass
// is deterministic and cannot fail: malformed attributes were already
// reported by VALIDATE and are skipped here.
package attrs

import (
	"taihe/internal/ast"
)

// Options control the pass.
type Options struct {
	// KeepNames preserves every published name as written.
	KeepNames bool
}

// Stats counts what the pass changed.
type Stats struct {
	Kept    int
	Renamed int
}

// Apply sets KeepName and Rename on declarations and members.
//
// KeepName holds for a declaration when name preservation is on globally,
// when its package carries @!keep_name, or when it carries @keep_name
// itself. Members inherit it from their declaration and may opt in alone.
func Apply(g *ast.Graph, opts Options) Stats {
	var st Stats
	for _, pkg := range g.Packages() {
		pkgKeep := opts.KeepNames || hasAttr(pkg.Attrs, "keep_name")
		for _, d := range pkg.Decls {
			h := d.Header()
			declKeep := pkgKeep || h.Attr("keep_name") != nil
			st.mark(&h.Named, declKeep)
			for _, m := range ast.Members(d) {
				st.mark(m, declKeep || m.Attr("keep_name") != nil)
			}
			if iface, ok := d.(*ast.Iface); ok {
				for _, m := range iface.Methods {
					for _, p := range m.Params {
						st.mark(&p.Named, declKeep)
					}
				}
			}
		}
	}
	return st
}

func (st *Stats) mark(n *ast.Named, keep bool) {
	if keep && !n.KeepName {
		n.KeepName = true
		st.Kept++
	}
	if a := n.Attr("rename"); a != nil {
		if name, ok := a.StringArg(0); ok && name != "" && n.Rename != name {
			n.Rename = name
			st.Renamed++
		}
	}
}

func hasAttr(attrs []*ast.Attr, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
