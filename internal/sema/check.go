// Package sema validates the declaration graph: names, type references,
// inheritance, by-value recursion, enum values and attributes.
//
// Every check reports through the diagnostics manager and isolates failures
// per declaration, so one broken declaration never hides the others. Type
// references that fail to resolve stay unresolved in the graph.
package sema

import (
	"taihe/internal/ast"
	"taihe/internal/diag"
)

type checker struct {
	graph  *ast.Graph
	diags  *diag.Manager
	scopes map[*ast.Package]*scope
}

// Check freezes g and validates it. The returned error is non-nil only for
// internal failures; user errors are emitted to m.
func Check(g *ast.Graph, m *diag.Manager) error {
	g.Freeze()
	c := &checker{
		graph:  g,
		diags:  m,
		scopes: make(map[*ast.Package]*scope),
	}
	steps := []func() error{
		c.checkPackageNames,
		c.buildScopes,
		c.checkDeclNames,
		c.resolveTypes,
		c.checkEnums,
		c.checkIfaceParents,
		c.checkRecursion,
		c.checkAttrs,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// eachDecl runs fn for every declaration with per-declaration isolation.
func (c *checker) eachDecl(fn func(d ast.Decl) error) error {
	_, err := diag.Each(c.diags, c.graph.Decls(), fn)
	return err
}
