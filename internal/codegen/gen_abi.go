package codegen

import (
	"strconv"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/format"
	"taihe/internal/mangle"
	"taihe/internal/types"
)

// abiGen writes the C ABI header <pkg>.abi.h.
type abiGen struct{}

func (abiGen) Name() string { return "abi" }

func (abiGen) Generate(g *ast.Graph, out *Output) error {
	return forEachPackage(g, func(pkg *ast.Package) error {
		w := format.NewWriter(format.Options{})
		e := abiEmitter{w: w, g: g, ct: cType{g: g}}
		e.pkg(pkg)
		return out.Put("abi", "include/"+pkg.Name+".abi.h", w.Bytes())
	})
}

type abiEmitter struct {
	w  *format.Writer
	g  *ast.Graph
	ct cType
}

func (e abiEmitter) pkg(pkg *ast.Package) {
	e.w.Line("#pragma once")
	e.w.Line("// generated from %s.taihe; do not edit", pkg.Name)
	e.w.Line("#include \"taihe/common.h\"")
	for _, dep := range deps(e.g, pkg) {
		e.w.Line("#include \"%s.abi.h\"", dep.Name)
	}

	// forward declarations
	first := true
	for _, d := range pkg.Decls {
		if ast.TypeOf(d) == nil || d.Kind() == ast.DeclEnum {
			continue
		}
		if first {
			e.w.Blank()
			first = false
		}
		e.w.Line("struct %s;", symbol(mangle.KindType, d))
	}

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
			e.w.Line("TH_EXPORT %s %s(%s);", e.ct.of(resolved(d.Return)),
				symbol(mangle.KindFunc, d), e.params("", d.Params))
		}
	}
}

func (e abiEmitter) params(self string, ps []*ast.Param) string {
	parts := make([]string, 0, len(ps)+1)
	if self != "" {
		parts = append(parts, self+" tobj")
	}
	for _, p := range ps {
		parts = append(parts, e.ct.of(resolved(p.Type))+" "+p.Name)
	}
	if len(parts) == 0 {
		return "void"
	}
	return strings.Join(parts, ", ")
}

func (e abiEmitter) structDecl(d *ast.Struct) {
	e.w.Block("struct "+symbol(mangle.KindType, d), ";", func() {
		for _, f := range d.Fields {
			e.w.Line("%s %s;", e.ct.of(resolved(f.Type)), f.Name)
		}
	})
}

func (e abiEmitter) enumDecl(d *ast.Enum) {
	base := enumBase(d)
	e.w.Line("// enum %s: %s", d.QualifiedName(), base.Repr())
	for _, it := range d.Items {
		sym := symbol(mangle.KindType, d, it.Name)
		if _, isStr := base.(types.String); isStr {
			e.w.Line("#define %s %s", sym, strconv.Quote(it.Str))
			continue
		}
		e.w.Line("#define %s ((%s)%d)", sym, e.ct.of(base), it.Int)
	}
}

func (e abiEmitter) unionDecl(d *ast.Union) {
	for i, f := range d.Fields {
		e.w.Line("#define %s %d", symbol(mangle.KindUnion, d, f.Name), i)
	}
	e.w.Block("struct "+symbol(mangle.KindType, d), ";", func() {
		e.w.Line("int32_t m_tag;")
		e.w.Block("union", " m_data;", func() {
			e.w.Line("char m_none;")
			for _, f := range d.Fields {
				if f.Type != nil {
					e.w.Line("%s %s;", e.ct.of(resolved(f.Type)), f.Name)
				}
			}
		})
	})
}

func (e abiEmitter) ifaceDecl(d *ast.Iface) {
	self := "struct " + symbol(mangle.KindType, d)
	e.w.Line("TH_EXPORT void const* const %s;", symbol(mangle.KindIID, d))

	e.w.Block("struct "+symbol(mangle.KindFTable, d), ";", func() {
		if len(d.Methods) == 0 {
			e.w.Line("char m_empty;")
		}
		for _, m := range d.Methods {
			e.w.Line("%s (*%s)(%s);", e.ct.of(resolved(m.Return)), m.Name, e.params(self, m.Params))
		}
	})
	e.w.Block("struct "+symbol(mangle.KindVTable, d), ";", func() {
		for i, a := range ancestors(e.g, d) {
			e.w.Line("struct %s const* ftbl_ptr_%d;", symbol(mangle.KindFTable, a), i)
		}
	})
	e.w.Block(self, ";", func() {
		e.w.Line("struct %s const* vtbl_ptr;", symbol(mangle.KindVTable, d))
		e.w.Line("struct DataBlockHead* data_ptr;")
	})

	e.w.Line("TH_EXPORT %s %s(%s tobj);", self, symbol(mangle.KindCopy, d), self)
	e.w.Line("TH_EXPORT void %s(%s tobj);", symbol(mangle.KindDrop, d), self)
	e.w.Line("TH_EXPORT %s %s(struct TypeInfo const* rtti, struct DataBlockHead* data_ptr);",
		self, symbol(mangle.KindDynamicCast, d))
	for _, p := range parents(e.g, d) {
		e.w.Line("TH_EXPORT struct %s %s(%s tobj);", symbol(mangle.KindType, p),
			symbol(mangle.KindStaticCast, d, append(pkgSegments(p.Pkg), p.Name)...), self)
	}
	for _, m := range d.Methods {
		e.w.Line("TH_EXPORT %s %s(%s);", e.ct.of(resolved(m.Return)),
			symbol(mangle.KindFunc, d, m.Name), e.params(self, m.Params))
	}
}
