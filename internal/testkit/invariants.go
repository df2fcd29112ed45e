package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// translation unit:
// 1) every function span lies within the file content bounds
// 2) every allocated expression and statement span stays in bounds
// 3) span ends never precede span starts
//
// Пустые span'ы (восстановление после ошибок) пропускаются.
func CheckSpanInvariants(b *ast.Builder, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	limit, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	for _, fnID := range b.FnOrder {
		fn := b.Fns.Get(fnID)
		if fn == nil {
			return fmt.Errorf("nil function for id=%d", fnID)
		}
		if err := checkSpan(fn.Span, sf.ID, limit); err != nil {
			return fmt.Errorf("fn span: %w", err)
		}
	}

	exprCount := b.Exprs.Arena.Len()
	for i := uint32(1); i <= exprCount; i++ {
		expr := b.Exprs.Get(ast.ExprID(i))
		if expr == nil {
			continue
		}
		if err := checkSpan(expr.Span, sf.ID, limit); err != nil {
			return fmt.Errorf("expr %d: %w", i, err)
		}
	}

	stmtCount := b.Stmts.Arena.Len()
	for i := uint32(1); i <= stmtCount; i++ {
		stmt := b.Stmts.Get(ast.StmtID(i))
		if stmt == nil {
			continue
		}
		if err := checkSpan(stmt.Span, sf.ID, limit); err != nil {
			return fmt.Errorf("stmt %d: %w", i, err)
		}
	}
	return nil
}

func checkSpan(sp source.Span, file source.FileID, limit uint32) error {
	if sp.Empty() {
		return nil
	}
	if sp.File != file {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("span end precedes start: %v", sp)
	}
	if sp.End > limit {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, limit)
	}
	return nil
}
