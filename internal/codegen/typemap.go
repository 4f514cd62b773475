package codegen

import (
	"strconv"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/mangle"
	"taihe/internal/types"
)

// Each backend spells a resolved type through its own visitor, so adding a
// type variant breaks every backend until it is handled.

// cType spells types in the C ABI header.
type cType struct{ g *ast.Graph }

func (v cType) of(t types.Type) string {
	if t == nil {
		return "void"
	}
	return types.Accept[string](t, v)
}

func (cType) VisitScalar(t types.Scalar) string {
	switch {
	case t == types.Bool:
		return "bool"
	case t.Float && t.Width == 32:
		return "float"
	case t.Float:
		return "double"
	case t.Signed:
		return "int" + strconv.Itoa(t.Width) + "_t"
	}
	return "uint" + strconv.Itoa(t.Width) + "_t"
}

func (cType) VisitOpaque(types.Opaque) string     { return "uintptr_t" }
func (cType) VisitString(types.String) string     { return "struct TString" }
func (cType) VisitBigInt(types.BigInt) string     { return "struct TArray" }
func (cType) VisitCallback(types.Callback) string { return "struct TCallback" }
func (cType) VisitArray(types.Array) string       { return "struct TArray" }
func (cType) VisitOptional(types.Optional) string { return "struct TOptional" }
func (cType) VisitVector(types.Vector) string     { return "struct TVector" }
func (cType) VisitMap(types.Map) string           { return "struct TMap" }
func (cType) VisitSet(types.Set) string           { return "struct TSet" }

func (v cType) VisitEnum(t types.Enum) string {
	e, ok := v.g.Decl(t.Decl).(*ast.Enum)
	if !ok {
		return "int32_t"
	}
	return v.of(enumBase(e))
}

func (v cType) VisitStruct(t types.Struct) string {
	return "struct " + symbol(mangle.KindType, v.g.Decl(t.Decl))
}

func (v cType) VisitUnion(t types.Union) string {
	return "struct " + symbol(mangle.KindType, v.g.Decl(t.Decl))
}

func (v cType) VisitIface(t types.Iface) string {
	return "struct " + symbol(mangle.KindType, v.g.Decl(t.Decl))
}

// cppType spells types in the C++ projection.
type cppType struct{ g *ast.Graph }

func (v cppType) of(t types.Type) string {
	if t == nil {
		return "void"
	}
	return types.Accept[string](t, v)
}

func (cppType) VisitScalar(t types.Scalar) string { return cType{}.VisitScalar(t) }
func (cppType) VisitOpaque(types.Opaque) string   { return "uintptr_t" }
func (cppType) VisitString(types.String) string   { return "::taihe::string" }
func (cppType) VisitBigInt(types.BigInt) string   { return "::taihe::array<uint64_t>" }

func (v cppType) VisitCallback(t types.Callback) string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = v.of(p)
	}
	return "::taihe::callback<" + v.of(t.Return) + "(" + strings.Join(params, ", ") + ")>"
}

func (v cppType) VisitArray(t types.Array) string {
	return "::taihe::array<" + v.of(t.Elem) + ">"
}

func (v cppType) VisitOptional(t types.Optional) string {
	return "::taihe::optional<" + v.of(t.Elem) + ">"
}

func (v cppType) VisitVector(t types.Vector) string {
	return "::taihe::vector<" + v.of(t.Elem) + ">"
}

func (v cppType) VisitMap(t types.Map) string {
	return "::taihe::map<" + v.of(t.Key) + ", " + v.of(t.Val) + ">"
}

func (v cppType) VisitSet(t types.Set) string {
	return "::taihe::set<" + v.of(t.Key) + ">"
}

func (v cppType) VisitEnum(t types.Enum) string     { return v.user(t.Decl) }
func (v cppType) VisitStruct(t types.Struct) string { return v.user(t.Decl) }
func (v cppType) VisitUnion(t types.Union) string   { return v.user(t.Decl) }
func (v cppType) VisitIface(t types.Iface) string   { return v.user(t.Decl) }

func (v cppType) user(id types.DeclID) string {
	d := v.g.Decl(id)
	h := d.Header()
	return cppNamespace(h.Pkg) + "::" + h.ExportName()
}

// etsType spells types in the user-facing bindings. Types from another
// package are qualified with that package's import alias.
type etsType struct {
	g    *ast.Graph
	from *ast.Package
}

func (v etsType) of(t types.Type) string {
	if t == nil {
		return "void"
	}
	return types.Accept[string](t, v)
}

func (etsType) VisitScalar(t types.Scalar) string {
	switch t {
	case types.Bool:
		return "boolean"
	case types.I8, types.U8:
		return "byte"
	case types.I16, types.U16:
		return "short"
	case types.I32, types.U32:
		return "int"
	case types.I64, types.U64:
		return "long"
	case types.F32:
		return "float"
	}
	return "double"
}

func (etsType) VisitOpaque(types.Opaque) string { return "Object" }
func (etsType) VisitString(types.String) string { return "string" }
func (etsType) VisitBigInt(types.BigInt) string { return "bigint" }

func (v etsType) VisitCallback(t types.Callback) string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = "arg" + strconv.Itoa(i) + ": " + v.of(p)
	}
	return "((" + strings.Join(params, ", ") + ") => " + v.of(t.Return) + ")"
}

func (v etsType) VisitArray(t types.Array) string { return v.of(t.Elem) + "[]" }

func (v etsType) VisitOptional(t types.Optional) string {
	return "(" + v.of(t.Elem) + " | undefined)"
}

func (v etsType) VisitVector(t types.Vector) string { return "Array<" + v.of(t.Elem) + ">" }

func (v etsType) VisitMap(t types.Map) string {
	return "Map<" + v.of(t.Key) + ", " + v.of(t.Val) + ">"
}

func (v etsType) VisitSet(t types.Set) string { return "Set<" + v.of(t.Key) + ">" }

func (v etsType) VisitEnum(t types.Enum) string     { return v.user(t.Decl) }
func (v etsType) VisitStruct(t types.Struct) string { return v.user(t.Decl) }
func (v etsType) VisitUnion(t types.Union) string   { return v.user(t.Decl) }
func (v etsType) VisitIface(t types.Iface) string   { return v.user(t.Decl) }

func (v etsType) user(id types.DeclID) string {
	h := v.g.Decl(id).Header()
	if h.Pkg == v.from {
		return h.ExportName()
	}
	return etsImportAlias(h.Pkg) + "." + h.ExportName()
}

func etsImportAlias(pkg *ast.Package) string {
	return strings.ReplaceAll(pkg.Name, ".", "_")
}

// enumBase is the declared base of e; a missing base means i32.
func enumBase(e *ast.Enum) types.Type {
	if e.Base == nil {
		return types.I32
	}
	if t, ok := e.Base.Resolved(); ok {
		return t
	}
	return types.I32
}

// resolved returns the type behind a validated reference; nil means void.
func resolved(ref *ast.TypeRef) types.Type {
	if ref == nil {
		return nil
	}
	t, _ := ref.Resolved()
	return t
}
