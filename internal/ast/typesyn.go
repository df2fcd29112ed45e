package ast

import (
	"narrowcheck/internal/source"
)

// TypeExpr is the syntactic spelling of a type, normalized to a single
// name ("long long", "unsigned int", "int32_t"). Resolution to a semantic
// type handle happens in the typing pass.
type TypeExpr struct {
	Span source.Span
	Name source.StringID
}

type TypeExprs struct {
	Arena *Arena[TypeExpr]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	return &TypeExprs{
		Arena: NewArena[TypeExpr](capHint),
	}
}

func (t *TypeExprs) New(span source.Span, name source.StringID) TypeExprID {
	return TypeExprID(t.Arena.Allocate(TypeExpr{
		Span: span,
		Name: name,
	}))
}

func (t *TypeExprs) Get(id TypeExprID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}
