package ast

import (
	"slices"
)

// AttrTargetMask describes a set of declaration kinds an attribute may be applied to.
type AttrTargetMask uint16

const (
	AttrTargetNone   AttrTargetMask = 0
	AttrTargetStruct AttrTargetMask = 1 << iota
	AttrTargetEnum
	AttrTargetUnion
	AttrTargetIface
	AttrTargetFunc
	AttrTargetMember // fields, enum items, union fields, methods
	AttrTargetPackage

	AttrTargetTypes = AttrTargetStruct | AttrTargetEnum | AttrTargetUnion | AttrTargetIface
	AttrTargetAny   = AttrTargetTypes | AttrTargetFunc | AttrTargetMember | AttrTargetPackage
)

// AttrSpec describes a known attribute: where it may appear and how many
// string arguments it takes.
type AttrSpec struct {
	Name    string
	Targets AttrTargetMask
	MinArgs int
	MaxArgs int
}

// Allows reports whether the attribute can be applied to the provided target bit.
func (spec AttrSpec) Allows(target AttrTargetMask) bool {
	return spec.Targets&target != 0
}

var attrRegistry = map[string]AttrSpec{
	"keep_name":  {Name: "keep_name", Targets: AttrTargetAny},
	"rename":     {Name: "rename", Targets: AttrTargetTypes | AttrTargetFunc | AttrTargetMember, MinArgs: 1, MaxArgs: 1},
	"deprecated": {Name: "deprecated", Targets: AttrTargetAny, MaxArgs: 1},
	"class":      {Name: "class", Targets: AttrTargetIface},
	"static":     {Name: "static", Targets: AttrTargetFunc, MinArgs: 1, MaxArgs: 1},
	"ctor":       {Name: "ctor", Targets: AttrTargetFunc, MinArgs: 1, MaxArgs: 1},
	"get":        {Name: "get", Targets: AttrTargetMember | AttrTargetFunc, MaxArgs: 1},
	"set":        {Name: "set", Targets: AttrTargetMember | AttrTargetFunc, MaxArgs: 1},
	"const":      {Name: "const", Targets: AttrTargetEnum},
	"namespace":  {Name: "namespace", Targets: AttrTargetPackage, MinArgs: 1, MaxArgs: 1},
}

// LookupAttr returns metadata for the given attribute name (case-sensitive).
func LookupAttr(name string) (AttrSpec, bool) {
	spec, ok := attrRegistry[name]
	return spec, ok
}

// AttrSpecs returns a stable slice of all registered attribute specifications sorted by name.
func AttrSpecs() []AttrSpec {
	names := make([]string, 0, len(attrRegistry))
	for name := range attrRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	result := make([]AttrSpec, 0, len(names))
	for _, name := range names {
		result = append(result, attrRegistry[name])
	}
	return result
}
