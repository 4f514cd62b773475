package codegen

import (
	"strconv"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/format"
	"taihe/internal/mangle"
	"taihe/internal/types"
)

// aniGen writes the native bridge <pkg>.ani.cpp binding the user bindings
// to the C++ projection.
type aniGen struct{}

func (aniGen) Name() string { return "ani" }

func (aniGen) Generate(g *ast.Graph, out *Output) error {
	return forEachPackage(g, func(pkg *ast.Package) error {
		w := format.NewWriter(format.Options{})
		e := aniEmitter{w: w, g: g, cpp: cppType{g: g}}
		e.pkg(pkg)
		return out.Put("ani", "ani/"+pkg.Name+".ani.cpp", w.Bytes())
	})
}

// aniType spells the bridge-side type: primitives pass by value, everything
// else travels as an object reference.
type aniType struct{}

func (v aniType) of(t types.Type) string {
	if t == nil {
		return "void"
	}
	return types.Accept[string](t, v)
}

func (aniType) VisitScalar(t types.Scalar) string {
	switch t {
	case types.Bool:
		return "ani_boolean"
	case types.I8, types.U8:
		return "ani_byte"
	case types.I16, types.U16:
		return "ani_short"
	case types.I32, types.U32:
		return "ani_int"
	case types.I64, types.U64:
		return "ani_long"
	case types.F32:
		return "ani_float"
	}
	return "ani_double"
}

func (aniType) VisitOpaque(types.Opaque) string     { return "ani_long" }
func (aniType) VisitString(types.String) string     { return "ani_string" }
func (aniType) VisitBigInt(types.BigInt) string     { return "ani_object" }
func (aniType) VisitCallback(types.Callback) string { return "ani_fn_object" }
func (aniType) VisitArray(types.Array) string       { return "ani_array" }
func (aniType) VisitOptional(types.Optional) string { return "ani_ref" }
func (aniType) VisitVector(types.Vector) string     { return "ani_object" }
func (aniType) VisitMap(types.Map) string           { return "ani_object" }
func (aniType) VisitSet(types.Set) string           { return "ani_object" }
func (aniType) VisitEnum(types.Enum) string         { return "ani_enum_item" }
func (aniType) VisitStruct(types.Struct) string     { return "ani_object" }
func (aniType) VisitUnion(types.Union) string       { return "ani_ref" }
func (aniType) VisitIface(types.Iface) string       { return "ani_object" }

type aniEmitter struct {
	w   *format.Writer
	g   *ast.Graph
	cpp cppType
	ani aniType
}

type aniBinding struct {
	name   string // name seen by the user bindings
	symbol string
}

func (e aniEmitter) pkg(pkg *ast.Package) {
	e.w.Line("// generated from %s.taihe; do not edit", pkg.Name)
	e.w.Line("#include \"%s.proj.hpp\"", pkg.Name)
	e.w.Line("#include \"taihe/runtime.hpp\"")
	e.w.Line("#include <ani.h>")

	var funcs, methods []aniBinding
	for _, d := range pkg.Decls {
		switch d := d.(type) {
		case *ast.Func:
			kind := mangle.KindBridgeFunc
			if d.Attr("ctor") != nil {
				kind = mangle.KindBridgeCtor
			}
			sym := symbol(kind, d)
			e.w.Blank()
			e.bridge(sym, "", d.Params, resolved(d.Return), cppNamespace(pkg)+"::"+d.ExportName())
			funcs = append(funcs, aniBinding{name: userName(&d.Named), symbol: sym})
		case *ast.Iface:
			for _, m := range d.Methods {
				sym := symbol(mangle.KindBridgeMethod, d, m.Name)
				e.w.Blank()
				self := "::taihe::from_ani<" + e.cpp.user(d.ID) + ">(env, obj)"
				e.bridge(sym, "ani_object obj", m.Params, resolved(m.Return), self+"."+m.Name)
				methods = append(methods, aniBinding{name: userName(&m.Named), symbol: sym})
			}
		}
	}

	e.w.Blank()
	e.w.Block("extern \"C\" ani_status ANI_"+guard(pkg, "BIND")+"(ani_env* env)", "", func() {
		e.w.Line("ani_namespace ns;")
		e.w.Line("if (ANI_OK != env->FindNamespace(%s, &ns)) return ANI_ERROR;",
			strconv.Quote("L"+strings.ReplaceAll(pkg.Name, ".", "/")+";"))
		e.table("ns_methods", funcs)
		e.w.Line("return env->Namespace_BindNativeFunctions(ns, ns_methods, %d);", len(funcs))
	})
	if len(methods) > 0 {
		e.w.Line("// %d interface method(s) bound per class at load time:", len(methods))
		for _, m := range methods {
			e.w.Line("//   %s -> %s", m.name, m.symbol)
		}
	}
}

func (e aniEmitter) table(name string, bs []aniBinding) {
	if len(bs) == 0 {
		e.w.Line("ani_native_function* %s = nullptr;", name)
		return
	}
	e.w.Block("ani_native_function "+name+"[] =", ";", func() {
		for _, b := range bs {
			e.w.Line("{%s, nullptr, reinterpret_cast<void*>(%s)},", strconv.Quote(b.name), b.symbol)
		}
	})
}

// bridge writes one native entry point forwarding to target.
func (e aniEmitter) bridge(sym, self string, ps []*ast.Param, ret types.Type, target string) {
	params := []string{"[[maybe_unused]] ani_env* env"}
	if self != "" {
		params = append(params, self)
	}
	args := make([]string, len(ps))
	for i, p := range ps {
		t := resolved(p.Type)
		params = append(params, e.ani.of(t)+" "+p.Name)
		args[i] = "::taihe::from_ani<" + e.cpp.of(t) + ">(env, " + p.Name + ")"
	}
	call := target + "(" + strings.Join(args, ", ") + ")"
	e.w.Block("static "+e.ani.of(ret)+" "+sym+"("+strings.Join(params, ", ")+")", "", func() {
		if ret == nil {
			e.w.Line("%s;", call)
			return
		}
		e.w.Line("return ::taihe::into_ani<%s>(env, %s);", e.cpp.of(ret), call)
	})
}
