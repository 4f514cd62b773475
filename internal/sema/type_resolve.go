package sema

import (
	"errors"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/types"
)

// resolveTypes resolves every TypeRef of every declaration. A failing
// reference is reported and left unresolved; its siblings still resolve.
func (c *checker) resolveTypes() error {
	return c.eachDecl(func(d ast.Decl) error {
		sc := c.scopes[d.Header().Pkg]
		_, err := diag.Each(c.diags, ast.TypeRefs(d), func(ref *ast.TypeRef) error {
			return c.resolve(sc, ref)
		})
		return err
	})
}

// resolve fills ref and every nested reference it owns.
func (c *checker) resolve(sc *scope, ref *ast.TypeRef) error {
	t, err := c.resolveExpr(sc, ref)
	if err != nil {
		ref.Invalidate()
		return err
	}
	ref.Resolve(t)
	return nil
}

func (c *checker) resolveExpr(sc *scope, ref *ast.TypeRef) (types.Type, error) {
	switch e := ref.Expr.(type) {
	case *ast.NameExpr:
		return c.resolveName(sc, ref, e)

	case *ast.GenericExpr:
		gen, ok := types.LookupGeneric(e.Name)
		if !ok {
			return nil, diag.Errorf(diag.NotATypeError, ref.Loc, "'%s' is not a generic type", e.Name)
		}
		args := make([]types.Type, len(e.Args))
		for i, a := range e.Args {
			if err := c.resolve(sc, a); err != nil {
				return nil, err
			}
			args[i], _ = a.Resolved()
		}
		t, err := gen.Instantiate(args)
		var arity *types.ArityError
		if errors.As(err, &arity) {
			return nil, diag.Errorf(diag.GenericArgumentsError, ref.Loc, "%s", arity.Error())
		}
		return t, err

	case *ast.CallbackExpr:
		cb := types.Callback{Params: make([]types.Type, len(e.Params))}
		for i, p := range e.Params {
			if err := c.resolve(sc, p.Type); err != nil {
				return nil, err
			}
			cb.Params[i], _ = p.Type.Resolved()
		}
		if e.Return != nil {
			if err := c.resolve(sc, e.Return); err != nil {
				return nil, err
			}
			cb.Return, _ = e.Return.Resolved()
		}
		return cb, nil
	}
	return nil, errors.New("sema: unknown type expression")
}

// resolveName: built-in, then the current package, then a qualified name.
func (c *checker) resolveName(sc *scope, ref *ast.TypeRef, e *ast.NameExpr) (types.Type, error) {
	last := e.Parts[len(e.Parts)-1]
	if len(e.Parts) == 1 {
		if t, ok := types.LookupBuiltin(last); ok {
			return t, nil
		}
		if gen, ok := types.LookupGeneric(last); ok {
			return nil, diag.Errorf(diag.GenericArgumentsError, ref.Loc,
				"%s expects %d type argument(s), got 0", gen.Name, gen.Arity)
		}
		return c.declType(sc.pkg, ref, last)
	}

	prefix := strings.Join(e.Parts[:len(e.Parts)-1], ".")
	pkg := c.lookupPackage(sc, prefix)
	if pkg == nil {
		return nil, diag.Errorf(diag.PackageNotExistError, ref.Loc, "package '%s' does not exist", prefix)
	}
	return c.declType(pkg, ref, last)
}

func (c *checker) declType(pkg *ast.Package, ref *ast.TypeRef, name string) (types.Type, error) {
	d := pkg.Lookup(name)
	if d == nil {
		return nil, diag.Errorf(diag.NotATypeError, ref.Loc, "unknown type '%s'", ref.Text())
	}
	t := ast.TypeOf(d)
	if t == nil {
		return nil, diag.Errorf(diag.NotATypeError, ref.Loc, "'%s' is a %s, not a type", ref.Text(), d.Kind()).
			WithNote(d.Header().Loc, "declared here")
	}
	return t, nil
}
