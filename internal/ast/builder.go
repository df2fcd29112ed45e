package ast

import (
	"narrowcheck/internal/source"
)

// Typedef is a top-level typedef declaration.
type Typedef struct {
	Name       source.StringID
	Underlying TypeExprID
	Span       source.Span
}

// Builder owns all arenas for one parsed translation unit.
type Builder struct {
	Strings  *source.Interner
	Exprs    *Exprs
	Stmts    *Stmts
	Types    *TypeExprs
	Fns      *Fns
	Typedefs []Typedef

	// Order of function declarations as they appear in the file.
	FnOrder []FnID
}

func NewBuilder(capHint uint) *Builder {
	return &Builder{
		Strings: source.NewInterner(),
		Exprs:   NewExprs(capHint),
		Stmts:   NewStmts(capHint),
		Types:   NewTypeExprs(capHint / 4),
		Fns:     NewFns(capHint / 8),
	}
}

// PushFn records a function in declaration order.
func (b *Builder) PushFn(id FnID) {
	b.FnOrder = append(b.FnOrder, id)
}

// PushTypedef records a typedef declaration.
func (b *Builder) PushTypedef(td Typedef) {
	b.Typedefs = append(b.Typedefs, td)
}

// ExprSpan returns the span of an expression, or the zero span for the
// invalid ID.
func (b *Builder) ExprSpan(id ExprID) source.Span {
	if expr := b.Exprs.Get(id); expr != nil {
		return expr.Span
	}
	return source.Span{}
}

// StmtSpan returns the span of a statement, or the zero span for the
// invalid ID.
func (b *Builder) StmtSpan(id StmtID) source.Span {
	if stmt := b.Stmts.Get(id); stmt != nil {
		return stmt.Span
	}
	return source.Span{}
}
