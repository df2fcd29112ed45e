package narrow

import (
	"narrowcheck/internal/ast"
)

func (c *Checker) walkStmt(id ast.StmtID) {
	stmt := c.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}

	switch stmt.Kind {
	case ast.StmtBlock:
		data, _ := c.builder.Stmts.Block(id)
		for _, child := range data.Stmts {
			c.walkStmt(child)
		}

	case ast.StmtDecl:
		data, _ := c.builder.Stmts.Decl(id)
		if data.Init.IsValid() {
			// Обёртка инициализатора несёт объявленный тип.
			declType := c.sema.TypeOf(data.Init)
			c.check(c.builder.ExprSpan(data.Init), declType, data.Init, ContextInit)
			c.walkExpr(data.Init)
		}

	case ast.StmtExpr:
		data, _ := c.builder.Stmts.Expr(id)
		c.walkExpr(data.Expr)

	case ast.StmtReturn:
		data, _ := c.builder.Stmts.Return(id)
		if data.Value.IsValid() {
			c.check(stmt.Span, c.retType, data.Value, ContextReturn)
			c.walkExpr(data.Value)
		}

	case ast.StmtIf:
		data, _ := c.builder.Stmts.If(id)
		c.walkExpr(data.Cond)
		c.walkStmt(data.Then)
		c.walkStmt(data.Else)

	case ast.StmtWhile:
		data, _ := c.builder.Stmts.While(id)
		c.walkExpr(data.Cond)
		c.walkStmt(data.Body)

	case ast.StmtDoWhile:
		data, _ := c.builder.Stmts.DoWhile(id)
		c.walkStmt(data.Body)
		c.walkExpr(data.Cond)

	case ast.StmtFor:
		data, _ := c.builder.Stmts.For(id)
		c.walkStmt(data.Init)
		c.walkExpr(data.Cond)
		c.walkExpr(data.Post)
		c.walkStmt(data.Body)

	case ast.StmtSwitch:
		data, _ := c.builder.Stmts.Switch(id)
		c.walkExpr(data.Cond)
		for _, caseID := range data.Cases {
			caseData, ok := c.builder.Stmts.Case(caseID)
			if !ok {
				continue
			}
			c.walkExpr(caseData.Value)
			for _, child := range caseData.Body {
				c.walkStmt(child)
			}
		}

	case ast.StmtBreak, ast.StmtContinue, ast.StmtEmpty, ast.StmtCase:
		// листья
	}
}

// walkExpr checks the conversion sites an expression introduces, then
// descends into every operand. The descent is uniform: kinds without a
// trigger of their own still get their children visited, so a site buried
// under an unrecognized shape is found rather than lost.
func (c *Checker) walkExpr(id ast.ExprID) {
	expr := c.builder.Exprs.Get(id)
	if expr == nil {
		return
	}

	switch expr.Kind {
	case ast.ExprAssign:
		data, _ := c.builder.Exprs.Assign(id)
		c.check(expr.Span, c.sema.TypeOf(data.Left), data.Right, ContextAssign)

	case ast.ExprCall:
		data, _ := c.builder.Exprs.Call(id)
		if sig := c.resolveCallee(data.Callee); sig != nil {
			// Лишние аргументы не с чем сравнивать: zip до короткого.
			n := len(data.Args)
			if len(sig.Params) < n {
				n = len(sig.Params)
			}
			for i := 0; i < n; i++ {
				c.check(c.builder.ExprSpan(data.Args[i]), sig.Params[i], data.Args[i], ContextArg)
			}
		}
	}

	for _, child := range c.builder.Exprs.Operands(id, nil) {
		c.walkExpr(child)
	}
}
