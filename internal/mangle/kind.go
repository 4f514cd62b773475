package mangle

import "fmt"

// Kind is the one-character marker that follows the last separator of a
// mangled name. The set is closed.
type Kind byte

const (
	KindFunc        Kind = 'f'
	KindType        Kind = 't'
	KindIID         Kind = 'i'
	KindUnion       Kind = 'u'
	KindFTable      Kind = 'F'
	KindVTable      Kind = 'V'
	KindCopy        Kind = 'c'
	KindDrop        Kind = 'd'
	KindDynamicCast Kind = 'y'
	KindStaticCast  Kind = 's'
	// platform bridge (ANI) symbols
	KindBridgeFunc   Kind = 'a'
	KindBridgeMethod Kind = 'm'
	KindBridgeCtor   Kind = 'k'
)

var kindNames = map[Kind]string{
	KindFunc:         "func",
	KindType:         "type",
	KindIID:          "iid",
	KindUnion:        "union",
	KindFTable:       "ftable",
	KindVTable:       "vtable",
	KindCopy:         "copy",
	KindDrop:         "drop",
	KindDynamicCast:  "dynamic",
	KindStaticCast:   "static",
	KindBridgeFunc:   "bridge-func",
	KindBridgeMethod: "bridge-method",
	KindBridgeCtor:   "bridge-ctor",
}

// Kinds lists every marker in a fixed order.
func Kinds() []Kind {
	return []Kind{
		KindFunc, KindType, KindIID, KindUnion, KindFTable, KindVTable, KindCopy,
		KindDrop, KindDynamicCast, KindStaticCast, KindBridgeFunc, KindBridgeMethod, KindBridgeCtor,
	}
}

// Valid reports whether k belongs to the closed marker set.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%q)", byte(k))
}

// ParseKind accepts either the long name ("ftable") or the marker ("F").
func ParseKind(s string) (Kind, error) {
	if len(s) == 1 && Kind(s[0]).Valid() {
		return Kind(s[0]), nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mangle kind %q", s)
}
