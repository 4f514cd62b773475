package types

import "sort"

// Built-in scalar values. Constructing an equal Scalar elsewhere yields an
// equal value.
var (
	Bool = Scalar{Name: "bool", Width: 8}
	I8   = Scalar{Name: "i8", Width: 8, Signed: true}
	I16  = Scalar{Name: "i16", Width: 16, Signed: true}
	I32  = Scalar{Name: "i32", Width: 32, Signed: true}
	I64  = Scalar{Name: "i64", Width: 64, Signed: true}
	U8   = Scalar{Name: "u8", Width: 8}
	U16  = Scalar{Name: "u16", Width: 16}
	U32  = Scalar{Name: "u32", Width: 32}
	U64  = Scalar{Name: "u64", Width: 64}
	F32  = Scalar{Name: "f32", Width: 32, Signed: true, Float: true}
	F64  = Scalar{Name: "f64", Width: 64, Signed: true, Float: true}
)

var builtins = map[string]Type{}

func init() {
	for _, t := range []Type{Bool, I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, Opaque{}, String{}, BigInt{}} {
		builtins[t.Repr()] = t
	}
}

// LookupBuiltin resolves a non-generic built-in type name.
func LookupBuiltin(name string) (Type, bool) {
	t, ok := builtins[name]
	return t, ok
}

// BuiltinNames lists the built-in names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsInteger reports whether t is a non-float scalar other than bool.
func IsInteger(t Type) bool {
	s, ok := t.(Scalar)
	return ok && !s.Float && s != Bool
}

// IsBool reports whether t is the bool scalar.
func IsBool(t Type) bool {
	s, ok := t.(Scalar)
	return ok && s == Bool
}

// IsFloat reports whether t is a float scalar.
func IsFloat(t Type) bool {
	s, ok := t.(Scalar)
	return ok && s.Float
}
