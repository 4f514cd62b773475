package ast

import (
	"taihe/internal/source"
	"taihe/internal/types"
)

type DeclKind uint8

const (
	DeclStruct DeclKind = iota + 1
	DeclEnum
	DeclUnion
	DeclIface
	DeclFunc
)

func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclUnion:
		return "union"
	case DeclIface:
		return "interface"
	case DeclFunc:
		return "function"
	}
	return "decl"
}

// Named is the part every declaration and member shares.
type Named struct {
	Name  string
	Loc   source.Loc
	Attrs []*Attr

	// set by the attribute pass
	KeepName bool
	Rename   string
}

// Attr returns the first attribute with the given name.
func (n *Named) Attr(name string) *Attr {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// ExportName is the name generators publish: the @rename override if any.
func (n *Named) ExportName() string {
	if n.Rename != "" {
		return n.Rename
	}
	return n.Name
}

// DeclHeader is embedded in every top-level declaration.
type DeclHeader struct {
	Named
	ID  types.DeclID
	Pkg *Package
}

func (h *DeclHeader) Header() *DeclHeader { return h }

// QualifiedName is "<package>.<name>".
func (h *DeclHeader) QualifiedName() string {
	if h.Pkg == nil {
		return h.Name
	}
	return h.Pkg.Name + "." + h.Name
}

// Decl is a top-level declaration stored in the Graph arena.
type Decl interface {
	Header() *DeclHeader
	Kind() DeclKind
}

type Field struct {
	Named
	Type *TypeRef
}

type Struct struct {
	DeclHeader
	Fields []*Field
}

// EnumItem's Value is nil for implicit values. Int/Str carry the value
// computed by VALIDATE, depending on the enum base.
type EnumItem struct {
	Named
	Value *Lit
	Int   int64
	Str   string
}

// Enum base is nil when omitted; VALIDATE treats that as i32.
type Enum struct {
	DeclHeader
	Base  *TypeRef
	Items []*EnumItem
}

// UnionField Type is nil for a tag without payload.
type UnionField struct {
	Named
	Type *TypeRef
}

type Union struct {
	DeclHeader
	Fields []*UnionField
}

type Param struct {
	Named
	Type *TypeRef
}

type Method struct {
	Named
	Params []*Param
	Return *TypeRef // nil = void
}

type Iface struct {
	DeclHeader
	Extends []*TypeRef
	Methods []*Method
}

type Func struct {
	DeclHeader
	Params []*Param
	Return *TypeRef
}

func (*Struct) Kind() DeclKind { return DeclStruct }
func (*Enum) Kind() DeclKind   { return DeclEnum }
func (*Union) Kind() DeclKind  { return DeclUnion }
func (*Iface) Kind() DeclKind  { return DeclIface }
func (*Func) Kind() DeclKind   { return DeclFunc }

// TypeOf returns the user type naming d, or nil for functions.
func TypeOf(d Decl) types.Type {
	h := d.Header()
	switch d.(type) {
	case *Struct:
		return types.Struct{Decl: h.ID, Name: h.QualifiedName()}
	case *Enum:
		return types.Enum{Decl: h.ID, Name: h.QualifiedName()}
	case *Union:
		return types.Union{Decl: h.ID, Name: h.QualifiedName()}
	case *Iface:
		return types.Iface{Decl: h.ID, Name: h.QualifiedName()}
	}
	return nil
}

// Members lists the named members of d in declaration order.
func Members(d Decl) []*Named {
	var out []*Named
	switch d := d.(type) {
	case *Struct:
		for _, f := range d.Fields {
			out = append(out, &f.Named)
		}
	case *Enum:
		for _, it := range d.Items {
			out = append(out, &it.Named)
		}
	case *Union:
		for _, f := range d.Fields {
			out = append(out, &f.Named)
		}
	case *Iface:
		for _, m := range d.Methods {
			out = append(out, &m.Named)
		}
	case *Func:
		for _, p := range d.Params {
			out = append(out, &p.Named)
		}
	}
	return out
}

// TypeRefs lists the top-level type references of d; generic arguments and
// callback signatures hang off these.
func TypeRefs(d Decl) []*TypeRef {
	var out []*TypeRef
	add := func(r *TypeRef) {
		if r != nil {
			out = append(out, r)
		}
	}
	addParams := func(ps []*Param) {
		for _, p := range ps {
			add(p.Type)
		}
	}
	switch d := d.(type) {
	case *Struct:
		for _, f := range d.Fields {
			add(f.Type)
		}
	case *Enum:
		add(d.Base)
	case *Union:
		for _, f := range d.Fields {
			add(f.Type)
		}
	case *Iface:
		for _, e := range d.Extends {
			add(e)
		}
		for _, m := range d.Methods {
			addParams(m.Params)
			add(m.Return)
		}
	case *Func:
		addParams(d.Params)
		add(d.Return)
	}
	return out
}
