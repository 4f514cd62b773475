package sema

import (
	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/source"
)

func duplicate(what, name string, loc, prev source.Loc) *diag.CompileError {
	return diag.Errorf(diag.DuplicateNameError, loc, "duplicate %s '%s'", what, name).
		WithNote(prev, "previously declared here")
}

// checkPackageNames: два файла не могут задавать один пакет.
func (c *checker) checkPackageNames() error {
	seen := make(map[string]*ast.Package)
	_, err := diag.Each(c.diags, c.graph.Packages(), func(p *ast.Package) error {
		if first, ok := seen[p.Name]; ok {
			return duplicate("package", p.Name, p.Loc(), first.Loc())
		}
		seen[p.Name] = p
		return nil
	})
	return err
}

// checkDeclNames reports duplicate declarations inside a package and
// duplicate members inside a declaration.
func (c *checker) checkDeclNames() error {
	for _, p := range c.graph.Packages() {
		seen := make(map[string]ast.Decl)
		if _, err := diag.Each(c.diags, p.Decls, func(d ast.Decl) error {
			h := d.Header()
			if first, ok := seen[h.Name]; ok {
				return duplicate(d.Kind().String(), h.Name, h.Loc, first.Header().Loc)
			}
			seen[h.Name] = d
			return nil
		}); err != nil {
			return err
		}
	}
	return c.eachDecl(func(d ast.Decl) error {
		what := d.Kind().String() + " member"
		if d.Kind() == ast.DeclFunc {
			what = "parameter"
		}
		if err := uniqueNames(what, ast.Members(d)); err != nil {
			return err
		}
		if iface, ok := d.(*ast.Iface); ok {
			for _, m := range iface.Methods {
				if err := uniqueNames("parameter", paramNames(m.Params)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func paramNames(params []*ast.Param) []*ast.Named {
	out := make([]*ast.Named, len(params))
	for i, p := range params {
		out[i] = &p.Named
	}
	return out
}

func uniqueNames(what string, names []*ast.Named) error {
	seen := make(map[string]*ast.Named, len(names))
	for _, n := range names {
		if first, ok := seen[n.Name]; ok {
			return duplicate(what, n.Name, n.Loc, first.Loc)
		}
		seen[n.Name] = n
	}
	return nil
}
