package types

// Equal compares types structurally. Built-ins compare by value, user types
// by the declaration they refer to. Use Equal rather than == since Callback
// holds a slice and is not comparable.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case Scalar:
		b, ok := b.(Scalar)
		return ok && a == b
	case Opaque:
		_, ok := b.(Opaque)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case BigInt:
		_, ok := b.(BigInt)
		return ok
	case Callback:
		b, ok := b.(Callback)
		if !ok || len(a.Params) != len(b.Params) || !Equal(a.Return, b.Return) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	case Array:
		b, ok := b.(Array)
		return ok && Equal(a.Elem, b.Elem)
	case Optional:
		b, ok := b.(Optional)
		return ok && Equal(a.Elem, b.Elem)
	case Vector:
		b, ok := b.(Vector)
		return ok && Equal(a.Elem, b.Elem)
	case Map:
		b, ok := b.(Map)
		return ok && Equal(a.Key, b.Key) && Equal(a.Val, b.Val)
	case Set:
		b, ok := b.(Set)
		return ok && Equal(a.Key, b.Key)
	case Enum:
		b, ok := b.(Enum)
		return ok && a.Decl == b.Decl
	case Struct:
		b, ok := b.(Struct)
		return ok && a.Decl == b.Decl
	case Union:
		b, ok := b.(Union)
		return ok && a.Decl == b.Decl
	case Iface:
		b, ok := b.(Iface)
		return ok && a.Decl == b.Decl
	}
	return false
}
