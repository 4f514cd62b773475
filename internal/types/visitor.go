package types

import "fmt"

// Visitor has one method per variant. A new variant adds a method here, so
// every implementation stops compiling until it handles it.
type Visitor[R any] interface {
	VisitScalar(Scalar) R
	VisitOpaque(Opaque) R
	VisitString(String) R
	VisitBigInt(BigInt) R
	VisitCallback(Callback) R
	VisitArray(Array) R
	VisitOptional(Optional) R
	VisitVector(Vector) R
	VisitMap(Map) R
	VisitSet(Set) R
	VisitEnum(Enum) R
	VisitStruct(Struct) R
	VisitUnion(Union) R
	VisitIface(Iface) R
}

// Accept dispatches t to the matching visitor method.
func Accept[R any](t Type, v Visitor[R]) R {
	switch t := t.(type) {
	case Scalar:
		return v.VisitScalar(t)
	case Opaque:
		return v.VisitOpaque(t)
	case String:
		return v.VisitString(t)
	case BigInt:
		return v.VisitBigInt(t)
	case Callback:
		return v.VisitCallback(t)
	case Array:
		return v.VisitArray(t)
	case Optional:
		return v.VisitOptional(t)
	case Vector:
		return v.VisitVector(t)
	case Map:
		return v.VisitMap(t)
	case Set:
		return v.VisitSet(t)
	case Enum:
		return v.VisitEnum(t)
	case Struct:
		return v.VisitStruct(t)
	case Union:
		return v.VisitUnion(t)
	case Iface:
		return v.VisitIface(t)
	}
	panic(fmt.Sprintf("types: unhandled type %T", t))
}
