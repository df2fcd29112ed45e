package narrow

import (
	"fmt"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/sema"
	"narrowcheck/internal/source"
	"narrowcheck/internal/types"
)

// Context tags identify the syntactic role of a checked conversion site.
const (
	ContextInit   = "variable initialization"
	ContextAssign = "assignment"
	ContextArg    = "function argument"
	ContextReturn = "return value"
)

// Checker carries the per-function state of one analysis pass: the tree,
// the type facade, the typing result and the enclosing function's return
// type. It holds nothing across functions.
type Checker struct {
	builder  *ast.Builder
	types    *types.Interner
	sema     *sema.Result
	reporter diag.Reporter

	retType types.TypeID
	fnSpan  source.Span
}

// CheckFile runs the analysis over every function with a body, in
// declaration order. Functions are independent; diagnostics go straight
// to reporter.
func CheckFile(builder *ast.Builder, interner *types.Interner, semaResult *sema.Result, reporter diag.Reporter) {
	for _, fnID := range builder.FnOrder {
		CheckFunction(builder, interner, semaResult, reporter, fnID)
	}
}

// CheckFunction analyzes a single function body. Prototypes are skipped.
func CheckFunction(builder *ast.Builder, interner *types.Interner, semaResult *sema.Result, reporter diag.Reporter, fnID ast.FnID) {
	fn := builder.Fns.Get(fnID)
	if fn == nil || !fn.Body.IsValid() {
		return
	}
	sig, ok := semaResult.Sig(fn.Name)
	if !ok {
		return
	}
	c := &Checker{
		builder:  builder,
		types:    interner,
		sema:     semaResult,
		reporter: reporter,
		retType:  sig.Return,
		fnSpan:   fn.Span,
	}
	c.walkStmt(fn.Body)
}

// check classifies one conversion site and reports when it narrows.
func (c *Checker) check(span source.Span, to types.TypeID, from ast.ExprID, context string) {
	fromType := c.originType(from)
	if Classify(c.types, to, fromType) != VerdictNarrowing {
		return
	}
	if span.Empty() {
		// Узел без собственной позиции: привязываемся к функции.
		span = c.fnSpan
	}
	diag.ReportWarning(c.reporter, diag.NarrowLossyConversion, span,
		fmt.Sprintf("lossy conversion from %s to %s in %s",
			c.types.DisplayName(fromType), c.types.DisplayName(to), context)).Emit()
}
