// Package sema is the typing pass. It resolves typedefs and declarations,
// assigns a semantic type to every expression, and materializes implicit
// numeric conversions as explicit wrapper nodes in the AST — the same
// shape a host compiler produces before lowering, and the shape the
// narrowing analysis depends on.
package sema

import (
	"narrowcheck/internal/ast"
	"narrowcheck/internal/source"
	"narrowcheck/internal/types"
)

// FnSig is the statically known signature of a declared function.
type FnSig struct {
	Fn     ast.FnID
	Name   source.StringID
	Params []types.TypeID
	Return types.TypeID
}

// Result carries everything later passes need: per-expression types and
// the function signature table.
type Result struct {
	ExprTypes map[ast.ExprID]types.TypeID
	Fns       map[source.StringID]*FnSig
}

// TypeOf returns the semantic type of an expression, NoTypeID when the
// expression was never typed or failed to type.
func (r *Result) TypeOf(id ast.ExprID) types.TypeID {
	if r == nil {
		return types.NoTypeID
	}
	return r.ExprTypes[id]
}

// Sig returns the signature for a function name, if one was declared.
func (r *Result) Sig(name source.StringID) (*FnSig, bool) {
	if r == nil {
		return nil, false
	}
	sig, ok := r.Fns[name]
	return sig, ok
}
