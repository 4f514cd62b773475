package codegen

import (
	"taihe/internal/ast"
	"taihe/internal/format"
	"taihe/internal/mangle"
)

// implGen writes author-mode stubs <pkg>.impl.cpp for the library author
// to fill in.
type implGen struct{}

func (implGen) Name() string { return "impl" }

func (implGen) Generate(g *ast.Graph, out *Output) error {
	return forEachPackage(g, func(pkg *ast.Package) error {
		w := format.NewWriter(format.Options{})
		e := implEmitter{projEmitter{w: w, g: g, cpp: cppType{g: g}}}
		e.pkg(pkg)
		return out.Put("impl", "author/"+pkg.Name+".impl.cpp", w.Bytes())
	})
}

type implEmitter struct{ projEmitter }

func (e implEmitter) pkg(pkg *ast.Package) {
	e.w.Line("// stubs generated from %s.taihe; implement the bodies", pkg.Name)
	e.w.Line("#include \"%s.proj.hpp\"", pkg.Name)
	e.w.Line("#include <stdexcept>")
	e.w.Blank()

	var funcs []*ast.Func
	e.w.Line("namespace {")
	for _, d := range pkg.Decls {
		switch d := d.(type) {
		case *ast.Iface:
			e.w.Blank()
			e.ifaceImpl(d)
		case *ast.Func:
			e.w.Blank()
			decl, _ := e.params(d.Params)
			e.w.Block(e.cpp.of(resolved(d.Return))+" "+d.Name+"("+decl+")", "", func() {
				e.notImplemented(d.Name)
			})
			funcs = append(funcs, d)
		}
	}
	e.w.Blank()
	e.w.Line("} // namespace")

	if len(funcs) > 0 {
		e.w.Blank()
	}
	for _, f := range funcs {
		e.w.Line("TH_EXPORT_CPP_API_%s(%s);", symbol(mangle.KindFunc, f), f.Name)
	}
}

func (e implEmitter) ifaceImpl(d *ast.Iface) {
	class := pascal(d.Name) + "Impl"
	e.w.Line("// make one with ::taihe::make_holder<%s, %s>()", class, e.cpp.user(d.ID))
	e.w.Block("class "+class, ";", func() {
		e.w.Line("public:")
		e.w.Line("%s() {}", class)
		for _, a := range ancestors(e.g, d) {
			for _, m := range a.Methods {
				decl, _ := e.params(m.Params)
				e.w.Block(e.cpp.of(resolved(m.Return))+" "+m.Name+"("+decl+")", "", func() {
					e.notImplemented(a.Name + "::" + m.Name)
				})
			}
		}
	})
}

func (e implEmitter) notImplemented(what string) {
	e.w.Line("TH_THROW(std::runtime_error, \"%s not implemented\");", what)
}
