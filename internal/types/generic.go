package types

import "fmt"

// Generic is a type constructor with a fixed number of arguments.
type Generic struct {
	Name  string
	Arity int
	build func(args []Type) Type
}

var generics = map[string]Generic{
	"Array":    {Name: "Array", Arity: 1, build: func(a []Type) Type { return Array{Elem: a[0]} }},
	"Optional": {Name: "Optional", Arity: 1, build: func(a []Type) Type { return Optional{Elem: a[0]} }},
	"Vector":   {Name: "Vector", Arity: 1, build: func(a []Type) Type { return Vector{Elem: a[0]} }},
	"Map":      {Name: "Map", Arity: 2, build: func(a []Type) Type { return Map{Key: a[0], Val: a[1]} }},
	"Set":      {Name: "Set", Arity: 1, build: func(a []Type) Type { return Set{Key: a[0]} }},
}

// LookupGeneric resolves a generic constructor by name.
func LookupGeneric(name string) (Generic, bool) {
	g, ok := generics[name]
	return g, ok
}

// ArityError is returned by Instantiate when the argument count is wrong.
type ArityError struct {
	Name      string
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d type argument(s), got %d", e.Name, e.Want, e.Got)
}

// Instantiate applies the constructor.
func (g Generic) Instantiate(args []Type) (Type, error) {
	if len(args) != g.Arity {
		return nil, &ArityError{Name: g.Name, Want: g.Arity, Got: len(args)}
	}
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("%s: type argument %d is nil", g.Name, i)
		}
	}
	return g.build(args), nil
}
