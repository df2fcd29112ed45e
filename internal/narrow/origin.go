package narrow

import (
	"narrowcheck/internal/ast"
	"narrowcheck/internal/sema"
	"narrowcheck/internal/types"
)

// originType resolves the type the value had before any conversion was
// applied to it. An initializer binding is unwrapped once, then every
// conversion wrapper is peeled regardless of its kind: the typing pass
// and the parser both stack wrappers outside-in, so the innermost
// expression carries the original type.
func (c *Checker) originType(id ast.ExprID) types.TypeID {
	if !id.IsValid() {
		return types.NoTypeID
	}
	if data, ok := c.builder.Exprs.Init(id); ok {
		id = data.Value
	}
	for {
		data, ok := c.builder.Exprs.Convert(id)
		if !ok {
			break
		}
		id = data.Operand
	}
	return c.sema.TypeOf(id)
}

// resolveCallee maps a call's callee expression to a declared function
// signature. An address-of and any conversion wrappers are peeled first;
// anything that does not bottom out at the name of a declared function
// (a call through a variable, an unresolved identifier) yields nil and
// the call's arguments go unchecked.
func (c *Checker) resolveCallee(id ast.ExprID) *sema.FnSig {
	for id.IsValid() {
		if data, ok := c.builder.Exprs.Convert(id); ok {
			id = data.Operand
			continue
		}
		if data, ok := c.builder.Exprs.Unary(id); ok && data.Op == ast.UnaryAddrOf {
			id = data.Operand
			continue
		}
		break
	}
	ident, ok := c.builder.Exprs.Ident(id)
	if !ok {
		return nil
	}
	sig, ok := c.sema.Sig(ident.Name)
	if !ok {
		return nil
	}
	return sig
}
