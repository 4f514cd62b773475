package sema

import (
	"math"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/types"
)

// checkEnums validates the base type and computes item values. Integer
// items without a value continue from the previous one (the first is 0);
// String items without a value take their own name.
func (c *checker) checkEnums() error {
	return c.eachDecl(func(d ast.Decl) error {
		e, ok := d.(*ast.Enum)
		if !ok {
			return nil
		}
		base := types.Type(types.I32)
		if e.Base != nil {
			t, ok := e.Base.Resolved()
			if !ok {
				return nil // already reported
			}
			base = t
		}
		switch {
		case types.IsInteger(base):
			return checkIntItems(e, base.(types.Scalar))
		case types.Equal(base, types.String{}):
			return checkStringItems(e)
		}
		return diag.Errorf(diag.TypeUsageError, e.Base.Loc,
			"enum base must be an integer type or String, got %s", base.Repr())
	})
}

func intRange(s types.Scalar) (lo, hi int64) {
	if s.Signed {
		return -1 << (s.Width - 1), 1<<(s.Width-1) - 1
	}
	if s.Width >= 64 {
		return 0, math.MaxInt64
	}
	return 0, 1<<s.Width - 1
}

func checkIntItems(e *ast.Enum, base types.Scalar) error {
	lo, hi := intRange(base)
	next := int64(0)
	for _, it := range e.Items {
		loc := it.Loc
		v := next
		if it.Value != nil {
			loc = it.Value.Loc
			if it.Value.Kind != ast.LitInt {
				return diag.Errorf(diag.EnumValueError, loc,
					"value of '%s' must be an integer, got %s", it.Name, it.Value.Kind)
			}
			n, err := it.Value.Int()
			if err != nil {
				return diag.Errorf(diag.EnumValueError, loc, "value %s of '%s' does not fit in %s", it.Value.Raw, it.Name, base.Name)
			}
			v = n
		} else if v == math.MinInt64 {
			// предыдущее значение было MaxInt64
			return diag.Errorf(diag.EnumValueError, loc, "implicit value of '%s' overflows %s", it.Name, base.Name)
		}
		if v < lo || v > hi {
			return diag.Errorf(diag.EnumValueError, loc, "value %d of '%s' does not fit in %s", v, it.Name, base.Name)
		}
		it.Int = v
		next = v + 1
	}
	return nil
}

func checkStringItems(e *ast.Enum) error {
	for _, it := range e.Items {
		if it.Value == nil {
			it.Str = it.Name
			continue
		}
		if it.Value.Kind != ast.LitString {
			return diag.Errorf(diag.EnumValueError, it.Value.Loc,
				"value of '%s' must be a string, got %s", it.Name, it.Value.Kind)
		}
		s, err := it.Value.Str()
		if err != nil {
			return diag.Errorf(diag.EnumValueError, it.Value.Loc, "invalid string value for '%s'", it.Name)
		}
		it.Str = s
	}
	return nil
}
