package sema

import (
	"strings"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/types"
)

// typeExpr assigns a semantic type to an expression tree, bottom-up.
// Failed sub-expressions get NoTypeID and downstream checks skip them.
func (c *checker) typeExpr(id ast.ExprID) types.TypeID {
	expr := c.builder.Exprs.Get(id)
	if expr == nil {
		return types.NoTypeID
	}

	var result types.TypeID
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := c.builder.Exprs.Ident(id)
		if typ, ok := c.lookupVar(data.Name); ok {
			result = typ
		} else if _, isFn := c.result.Fns[data.Name]; isFn {
			// Имя функции само по себе типа не имеет в нашем подмножестве;
			// его обрабатывает вызов или резолвер callee.
			result = types.NoTypeID
		} else {
			c.report(diag.SemaUndeclared, expr.Span, "undeclared identifier %q",
				c.builder.Strings.MustLookup(data.Name))
			result = types.NoTypeID
		}

	case ast.ExprLit:
		data, _ := c.builder.Exprs.Literal(id)
		result = c.literalType(data)

	case ast.ExprUnary:
		data, _ := c.builder.Exprs.Unary(id)
		operand := c.typeExpr(data.Operand)
		switch data.Op {
		case ast.UnaryNeg, ast.UnaryPlus, ast.UnaryBitNot:
			result = operand
		case ast.UnaryNot:
			result = c.types.Builtins().Bool
		case ast.UnaryAddrOf:
			// Указатели не входят в подмножество; адрес применяется
			// только к именам функций в позиции callee.
			result = types.NoTypeID
		}

	case ast.ExprBinary:
		result = c.typeBinary(id)

	case ast.ExprAssign:
		data, _ := c.builder.Exprs.Assign(id)
		leftType := c.typeExpr(data.Left)
		c.typeExpr(data.Right)
		data.Right = c.coerce(leftType, data.Right)
		result = leftType

	case ast.ExprTernary:
		data, _ := c.builder.Exprs.Ternary(id)
		c.typeExpr(data.Cond)
		thenType := c.typeExpr(data.Then)
		elseType := c.typeExpr(data.Else)
		common := c.commonType(thenType, elseType)
		data.Then = c.coerce(common, data.Then)
		data.Else = c.coerce(common, data.Else)
		result = common

	case ast.ExprCall:
		result = c.typeCall(id)

	case ast.ExprConvert:
		data, _ := c.builder.Exprs.Convert(id)
		c.typeExpr(data.Operand)
		if data.To.IsValid() {
			result = c.resolveTypeExpr(data.To)
		}

	case ast.ExprInit:
		data, _ := c.builder.Exprs.Init(id)
		result = c.typeExpr(data.Value)
	}

	c.result.ExprTypes[id] = result
	return result
}

// literalType follows the C rules the subset needs: plain integer
// literals are int, LL makes long long, L makes long, U makes the
// unsigned variant; float literals are double unless suffixed with f.
func (c *checker) literalType(data *ast.ExprLiteralData) types.TypeID {
	builtins := c.types.Builtins()
	text := strings.ToLower(c.builder.Strings.MustLookup(data.Value))

	switch data.Kind {
	case ast.ExprLitBool:
		return builtins.Bool
	case ast.ExprLitFloat:
		if strings.HasSuffix(text, "f") {
			return builtins.Float
		}
		return builtins.Double
	case ast.ExprLitInt:
		unsigned := strings.Contains(text, "u")
		switch {
		case strings.HasSuffix(strings.TrimRight(text, "u"), "ll"):
			if unsigned {
				return builtins.ULongLong
			}
			return builtins.LongLong
		case strings.HasSuffix(strings.TrimRight(text, "u"), "l"):
			if unsigned {
				return builtins.ULong
			}
			return builtins.Long
		default:
			if unsigned {
				return builtins.UInt
			}
			return builtins.Int
		}
	}
	return types.NoTypeID
}

func (c *checker) typeBinary(id ast.ExprID) types.TypeID {
	data, _ := c.builder.Exprs.Binary(id)
	leftType := c.typeExpr(data.Left)
	rightType := c.typeExpr(data.Right)

	switch data.Op {
	case ast.BinaryLogicAnd, ast.BinaryLogicOr,
		ast.BinaryEq, ast.BinaryNe,
		ast.BinaryLt, ast.BinaryLe, ast.BinaryGt, ast.BinaryGe:
		// Операнды сравнения приводятся к общему типу, результат bool.
		common := c.commonType(leftType, rightType)
		data.Left = c.coerce(common, data.Left)
		data.Right = c.coerce(common, data.Right)
		return c.types.Builtins().Bool

	case ast.BinaryShl, ast.BinaryShr:
		// Сдвиг сохраняет тип левого операнда.
		return leftType

	default:
		common := c.commonType(leftType, rightType)
		data.Left = c.coerce(common, data.Left)
		data.Right = c.coerce(common, data.Right)
		return common
	}
}

func (c *checker) typeCall(id ast.ExprID) types.TypeID {
	data, _ := c.builder.Exprs.Call(id)

	// Типизируем аргументы в любом случае, чтобы вложенные сайты
	// были покрыты даже при неразрешимом callee.
	for _, arg := range data.Args {
		c.typeExpr(arg)
	}

	calleeData, ok := c.builder.Exprs.Ident(data.Callee)
	if !ok {
		c.typeExpr(data.Callee)
		return types.NoTypeID
	}
	sig, declared := c.result.Fns[calleeData.Name]
	if !declared {
		if _, isVar := c.lookupVar(calleeData.Name); isVar {
			c.report(diag.SemaNotCallable, c.builder.ExprSpan(data.Callee),
				"%q is not a function", c.builder.Strings.MustLookup(calleeData.Name))
		} else {
			c.report(diag.SemaUndeclared, c.builder.ExprSpan(data.Callee),
				"call to undeclared function %q", c.builder.Strings.MustLookup(calleeData.Name))
		}
		return types.NoTypeID
	}

	if len(data.Args) != len(sig.Params) {
		c.report(diag.SemaArgCountMismatch, c.builder.ExprSpan(id),
			"%q expects %d argument(s), got %d",
			c.builder.Strings.MustLookup(calleeData.Name), len(sig.Params), len(data.Args))
	}
	// Приводим совпавший префикс аргументов к типам параметров.
	for i := 0; i < len(data.Args) && i < len(sig.Params); i++ {
		data.Args[i] = c.coerce(sig.Params[i], data.Args[i])
	}
	return sig.Return
}
