package sema

import (
	"fmt"

	"taihe/internal/ast"
	"taihe/internal/diag"
)

func declTarget(d ast.Decl) ast.AttrTargetMask {
	switch d.Kind() {
	case ast.DeclStruct:
		return ast.AttrTargetStruct
	case ast.DeclEnum:
		return ast.AttrTargetEnum
	case ast.DeclUnion:
		return ast.AttrTargetUnion
	case ast.DeclIface:
		return ast.AttrTargetIface
	case ast.DeclFunc:
		return ast.AttrTargetFunc
	}
	return ast.AttrTargetNone
}

func targetName(t ast.AttrTargetMask) string {
	switch t {
	case ast.AttrTargetStruct:
		return "a struct"
	case ast.AttrTargetEnum:
		return "an enum"
	case ast.AttrTargetUnion:
		return "a union"
	case ast.AttrTargetIface:
		return "an interface"
	case ast.AttrTargetFunc:
		return "a function"
	case ast.AttrTargetMember:
		return "a member"
	case ast.AttrTargetPackage:
		return "a package"
	}
	return "this"
}

// checkAttrs validates package, declaration and member attributes against
// the catalog. Unknown names only warn.
func (c *checker) checkAttrs() error {
	for _, p := range c.graph.Packages() {
		if _, err := diag.Each(c.diags, p.Attrs, func(a *ast.Attr) error {
			return c.checkAttr(a, ast.AttrTargetPackage)
		}); err != nil {
			return err
		}
	}
	return c.eachDecl(func(d ast.Decl) error {
		if _, err := diag.Each(c.diags, d.Header().Attrs, func(a *ast.Attr) error {
			return c.checkAttr(a, declTarget(d))
		}); err != nil {
			return err
		}
		for _, m := range ast.Members(d) {
			if _, err := diag.Each(c.diags, m.Attrs, func(a *ast.Attr) error {
				return c.checkAttr(a, ast.AttrTargetMember)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *checker) checkAttr(a *ast.Attr, target ast.AttrTargetMask) error {
	spec, ok := ast.LookupAttr(a.Name)
	if !ok {
		c.diags.Emit(diag.Newf(diag.UnknownAttributeWarn, a.Loc, "unknown attribute '@%s' is ignored", a.Name))
		return nil
	}
	if !spec.Allows(target) {
		return diag.Errorf(diag.AttributeArgsError, a.Loc, "attribute '@%s' cannot be applied to %s", a.Name, targetName(target))
	}
	if n := len(a.Args); n < spec.MinArgs || n > spec.MaxArgs {
		return diag.Errorf(diag.AttributeArgsError, a.Loc, "attribute '@%s' takes %s, got %d", a.Name, argCount(spec), n)
	}
	for i := range a.Args {
		if _, ok := a.StringArg(i); !ok {
			return diag.Errorf(diag.AttributeArgsError, a.Args[i].Loc, "argument %d of '@%s' must be a string", i+1, a.Name)
		}
	}
	return nil
}

func argCount(spec ast.AttrSpec) string {
	switch {
	case spec.MaxArgs == 0:
		return "no arguments"
	case spec.MinArgs == spec.MaxArgs:
		return fmt.Sprintf("exactly %d argument(s)", spec.MaxArgs)
	}
	return fmt.Sprintf("%d to %d argument(s)", spec.MinArgs, spec.MaxArgs)
}
