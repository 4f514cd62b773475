package sema

import (
	"strings"

	"taihe/internal/ast"
	"taihe/internal/diag"
)

// scope is what a package can name: its own declarations and the packages
// it uses, under their alias or full dotted path.
type scope struct {
	pkg     *ast.Package
	aliases map[string]*ast.Package
}

func (c *checker) buildScopes() error {
	for _, p := range c.graph.Packages() {
		sc := &scope{pkg: p, aliases: make(map[string]*ast.Package)}
		c.scopes[p] = sc
		if _, err := diag.Each(c.diags, p.Uses, func(u *ast.Use) error {
			path := strings.Join(u.Path, ".")
			target := c.graph.Package(path)
			if target == nil {
				return diag.Errorf(diag.PackageNotExistError, u.Loc, "package '%s' does not exist", path)
			}
			name := u.Alias
			if name == "" {
				name = path
			}
			sc.aliases[name] = target
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

// lookupPackage resolves a dotted prefix: an alias first, then any package
// of the graph by its full name.
func (c *checker) lookupPackage(sc *scope, prefix string) *ast.Package {
	if p, ok := sc.aliases[prefix]; ok {
		return p
	}
	return c.graph.Package(prefix)
}
