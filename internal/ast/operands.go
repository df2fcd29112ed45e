package ast

// Operands appends the direct operand expressions of id to buf and returns
// it. This powers the generic traversal fallback: a visitor that does not
// recognize an expression kind can still descend into every child.
func (e *Exprs) Operands(id ExprID, buf []ExprID) []ExprID {
	expr := e.Get(id)
	if expr == nil {
		return buf
	}
	switch expr.Kind {
	case ExprIdent, ExprLit:
		return buf
	case ExprUnary:
		data := e.Unaries.Get(uint32(expr.Payload))
		return append(buf, data.Operand)
	case ExprBinary:
		data := e.Binaries.Get(uint32(expr.Payload))
		return append(buf, data.Left, data.Right)
	case ExprAssign:
		data := e.Assigns.Get(uint32(expr.Payload))
		return append(buf, data.Left, data.Right)
	case ExprTernary:
		data := e.Ternaries.Get(uint32(expr.Payload))
		return append(buf, data.Cond, data.Then, data.Else)
	case ExprCall:
		data := e.Calls.Get(uint32(expr.Payload))
		buf = append(buf, data.Callee)
		return append(buf, data.Args...)
	case ExprConvert:
		data := e.Converts.Get(uint32(expr.Payload))
		return append(buf, data.Operand)
	case ExprInit:
		data := e.Inits.Get(uint32(expr.Payload))
		return append(buf, data.Value)
	}
	return buf
}
