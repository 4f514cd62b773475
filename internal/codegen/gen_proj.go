package codegen

import (
	"strconv"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/format"
	"taihe/internal/mangle"
	"taihe/internal/types"
)

// projGen writes the C++ projection <pkg>.proj.hpp over the C ABI.
type projGen struct{}

func (projGen) Name() string { return "proj" }

func (projGen) Generate(g *ast.Graph, out *Output) error {
	return forEachPackage(g, func(pkg *ast.Package) error {
		w := format.NewWriter(format.Options{})
		e := projEmitter{w: w, g: g, cpp: cppType{g: g}}
		e.pkg(pkg)
		return out.Put("proj", "include/"+pkg.Name+".proj.hpp", w.Bytes())
	})
}

type projEmitter struct {
	w   *format.Writer
	g   *ast.Graph
	cpp cppType
}

func (e projEmitter) pkg(pkg *ast.Package) {
	e.w.Line("#pragma once")
	e.w.Line("// generated from %s.taihe; do not edit", pkg.Name)
	e.w.Line("#include \"taihe/common.hpp\"")
	e.w.Line("#include \"%s.abi.h\"", pkg.Name)
	for _, dep := range deps(e.g, pkg) {
		e.w.Line("#include \"%s.proj.hpp\"", dep.Name)
	}
	e.w.Blank()

	ns := strings.TrimPrefix(cppNamespace(pkg), "::")
	e.w.Line("namespace %s {", ns)
	for _, d := range pkg.Decls {
		e.w.Blank()
		switch d := d.(type) {
		case *ast.Struct:
			e.structDecl(d)
		case *ast.Enum:
			e.enumDecl(d)
		case *ast.Union:
			e.unionDecl(d)
		case *ast.Iface:
			e.ifaceDecl(d)
		case *ast.Func:
			e.funcDecl(d)
		}
	}
	e.w.Blank()
	e.w.Line("} // namespace %s", ns)
}

// params renders "T a, U b" and the matching ABI argument list.
func (e projEmitter) params(ps []*ast.Param) (decl, args string) {
	ds := make([]string, len(ps))
	as := make([]string, len(ps))
	for i, p := range ps {
		t := e.cpp.of(resolved(p.Type))
		ds[i] = t + " " + p.Name
		as[i] = "::taihe::into_abi<" + t + ">(" + p.Name + ")"
	}
	return strings.Join(ds, ", "), strings.Join(as, ", ")
}

// call wraps an ABI call so its result converts back to ret.
func (e projEmitter) call(ret types.Type, expr string) string {
	if ret == nil {
		return expr + ";"
	}
	return "return ::taihe::from_abi<" + e.cpp.of(ret) + ">(" + expr + ");"
}

func (e projEmitter) structDecl(d *ast.Struct) {
	e.w.Block("struct "+d.ExportName(), ";", func() {
		for _, f := range d.Fields {
			e.w.Line("%s %s;", e.cpp.of(resolved(f.Type)), f.Name)
		}
	})
}

func (e projEmitter) enumDecl(d *ast.Enum) {
	base := enumBase(d)
	if _, isStr := base.(types.String); isStr {
		e.w.Block("struct "+d.ExportName(), ";", func() {
			for _, it := range d.Items {
				e.w.Line("static constexpr char const* %s = %s;", it.Name, strconv.Quote(it.Str))
			}
		})
		return
	}
	e.w.Block("enum class "+d.ExportName()+" : "+e.cpp.of(base), ";", func() {
		for _, it := range d.Items {
			e.w.Line("%s = %d,", it.Name, it.Int)
		}
	})
}

func (e projEmitter) unionDecl(d *ast.Union) {
	e.w.Block("struct "+d.ExportName(), ";", func() {
		e.w.Block("enum class tag_t : int32_t", ";", func() {
			for i, f := range d.Fields {
				e.w.Line("%s = %s, // %d", f.Name, symbol(mangle.KindUnion, d, f.Name), i)
			}
		})
		e.w.Line("tag_t m_tag;")
		e.w.Line("struct %s m_abi;", symbol(mangle.KindType, d))
		for _, f := range d.Fields {
			e.w.Line("bool holds_%s() const { return m_tag == tag_t::%s; }", f.Name, f.Name)
		}
	})
}

func (e projEmitter) ifaceDecl(d *ast.Iface) {
	name := d.ExportName()
	abi := "struct " + symbol(mangle.KindType, d)
	e.w.Block("struct "+name, ";", func() {
		e.w.Line("%s m_handle;", abi)
		e.w.Line("explicit %s(%s handle) : m_handle(handle) {}", name, abi)
		e.w.Line("%s(%s const& other) : m_handle(%s(other.m_handle)) {}", name, name, symbol(mangle.KindCopy, d))
		e.w.Line("~%s() { %s(m_handle); }", name, symbol(mangle.KindDrop, d))
		for _, p := range parents(e.g, d) {
			e.w.Line("operator %s() const { return %s(%s(m_handle)); }",
				e.cpp.user(p.ID), e.cpp.user(p.ID), symbol(mangle.KindStaticCast, d, append(pkgSegments(p.Pkg), p.Name)...))
		}
		for _, m := range d.Methods {
			decl, args := e.params(m.Params)
			if args != "" {
				args = ", " + args
			}
			e.w.Block(e.cpp.of(resolved(m.Return))+" "+m.Name+"("+decl+") const", "", func() {
				e.w.Line("%s", e.call(resolved(m.Return), symbol(mangle.KindFunc, d, m.Name)+"(m_handle"+args+")"))
			})
		}
	})
}

func (e projEmitter) funcDecl(d *ast.Func) {
	decl, args := e.params(d.Params)
	ret := resolved(d.Return)
	e.w.Block("inline "+e.cpp.of(ret)+" "+d.ExportName()+"("+decl+")", "", func() {
		e.w.Line("%s", e.call(ret, symbol(mangle.KindFunc, d)+"("+args+")"))
	})
}
