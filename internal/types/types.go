package types

import (
	"fmt"
	"strings"
)

// DeclID indexes the declaration arena of ast.Graph. User types refer to
// their declaration through it, so they stay valid if the arena grows.
type DeclID uint32

// NoDeclID marks the absence of a declaration.
const NoDeclID DeclID = 0

// Type is the closed set of types the IDL can express. Values are immutable
// and shared by reference once created. The set is sealed: only this package
// implements Type.
type Type interface {
	// Repr is the stable name used in diagnostics and printers.
	Repr() string
	isType()
}

// Scalar is a fixed-width primitive: bool, i8..i64, u8..u64, f32, f64.
type Scalar struct {
	Name   string
	Width  int
	Signed bool
	Float  bool
}

// Opaque is a pointer-sized handle the IDL does not look into.
type Opaque struct{}

// String is the built-in string type.
type String struct{}

// BigInt is the arbitrary-precision integer type.
type BigInt struct{}

// Callback is a function type. A nil Return means void.
type Callback struct {
	Return Type
	Params []Type
}

type Array struct{ Elem Type }

type Optional struct{ Elem Type }

type Vector struct{ Elem Type }

type Map struct{ Key, Val Type }

type Set struct{ Key Type }

// Enum, Struct, Union and Iface refer to a user declaration. Name is the
// qualified declaration name; identity is carried by Decl alone.
type Enum struct {
	Decl DeclID
	Name string
}

type Struct struct {
	Decl DeclID
	Name string
}

type Union struct {
	Decl DeclID
	Name string
}

type Iface struct {
	Decl DeclID
	Name string
}

func (Scalar) isType()   {}
func (Opaque) isType()   {}
func (String) isType()   {}
func (BigInt) isType()   {}
func (Callback) isType() {}
func (Array) isType()    {}
func (Optional) isType() {}
func (Vector) isType()   {}
func (Map) isType()      {}
func (Set) isType()      {}
func (Enum) isType()     {}
func (Struct) isType()   {}
func (Union) isType()    {}
func (Iface) isType()    {}

func (t Scalar) Repr() string { return t.Name }
func (Opaque) Repr() string   { return "Opaque" }
func (String) Repr() string   { return "String" }
func (BigInt) Repr() string   { return "BigInt" }

func (t Callback) Repr() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Repr()
	}
	ret := "void"
	if t.Return != nil {
		ret = t.Return.Repr()
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(params, ", "), ret)
}

func (t Array) Repr() string    { return "Array<" + t.Elem.Repr() + ">" }
func (t Optional) Repr() string { return "Optional<" + t.Elem.Repr() + ">" }
func (t Vector) Repr() string   { return "Vector<" + t.Elem.Repr() + ">" }
func (t Map) Repr() string      { return "Map<" + t.Key.Repr() + ", " + t.Val.Repr() + ">" }
func (t Set) Repr() string      { return "Set<" + t.Key.Repr() + ">" }

func (t Enum) Repr() string   { return t.Name }
func (t Struct) Repr() string { return t.Name }
func (t Union) Repr() string  { return t.Name }
func (t Iface) Repr() string  { return t.Name }

// IsUserType reports whether t refers to a declaration.
func IsUserType(t Type) bool {
	_, ok := DeclOf(t)
	return ok
}

// DeclOf returns the declaration behind a user type.
func DeclOf(t Type) (DeclID, bool) {
	switch t := t.(type) {
	case Enum:
		return t.Decl, true
	case Struct:
		return t.Decl, true
	case Union:
		return t.Decl, true
	case Iface:
		return t.Decl, true
	}
	return NoDeclID, false
}
