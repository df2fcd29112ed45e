package sema

import (
	"narrowcheck/internal/ast"
	"narrowcheck/internal/types"
)

// coerce wraps expr in an implicit conversion node when its type differs
// from the target numeric type. The wrapper kind mirrors what a host
// frontend emits: a category change gets a dedicated int<->float node,
// anything else a plain no-op conversion.
func (c *checker) coerce(to types.TypeID, expr ast.ExprID) ast.ExprID {
	if !expr.IsValid() || to == types.NoTypeID {
		return expr
	}
	from := c.result.TypeOf(expr)
	if from == types.NoTypeID {
		return expr
	}
	if c.types.Canonical(from) == c.types.Canonical(to) {
		return expr
	}

	fromType, okFrom := c.types.Lookup(c.types.Canonical(from))
	toType, okTo := c.types.Lookup(c.types.Canonical(to))
	if !okFrom || !okTo || !fromType.IsNumeric() || !toType.IsNumeric() {
		return expr
	}

	kind := ast.ConvertNoOp
	switch {
	case fromType.Kind == types.KindInt && toType.Kind == types.KindFloat:
		kind = ast.ConvertIntToFloat
	case fromType.Kind == types.KindFloat && toType.Kind == types.KindInt:
		kind = ast.ConvertFloatToInt
	}

	wrapped := c.builder.Exprs.NewConvert(c.builder.ExprSpan(expr), kind, ast.NoTypeExprID, expr)
	c.result.ExprTypes[wrapped] = to
	return wrapped
}

// commonType implements the usual arithmetic conversions for the subset:
// float beats integer, then the wider of the two wins. Non-numeric or
// unknown operands yield NoTypeID so callers skip coercion.
func (c *checker) commonType(a, b types.TypeID) types.TypeID {
	if a == types.NoTypeID || b == types.NoTypeID {
		return types.NoTypeID
	}
	ca, cb := c.types.Canonical(a), c.types.Canonical(b)
	ta, okA := c.types.Lookup(ca)
	tb, okB := c.types.Lookup(cb)
	if !okA || !okB {
		return types.NoTypeID
	}
	if !ta.IsNumeric() || !tb.IsNumeric() {
		// bool в арифметике ведёт себя как int.
		if ta.Kind == types.KindBool && tb.IsNumeric() {
			return b
		}
		if tb.Kind == types.KindBool && ta.IsNumeric() {
			return a
		}
		return types.NoTypeID
	}

	if rankOf(ta) >= rankOf(tb) {
		return a
	}
	return b
}

// rankOf orders numeric types for promotion: floats above integers,
// wider above narrower.
func rankOf(t types.Type) int {
	rank := int(t.Width)
	if t.Kind == types.KindFloat {
		rank += 1 << 8
	}
	return rank
}
