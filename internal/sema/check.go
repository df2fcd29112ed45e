package sema

import (
	"fmt"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
	"narrowcheck/internal/types"
)

type checker struct {
	builder  *ast.Builder
	types    *types.Interner
	reporter diag.Reporter
	result   *Result

	// scopes — стек областей видимости локальных переменных.
	scopes []map[source.StringID]types.TypeID
}

// Check types a parsed translation unit. It registers typedefs into the
// interner, collects function signatures, then types every function body.
func Check(builder *ast.Builder, interner *types.Interner, reporter diag.Reporter) *Result {
	c := &checker{
		builder:  builder,
		types:    interner,
		reporter: reporter,
		result: &Result{
			ExprTypes: make(map[ast.ExprID]types.TypeID, builder.Exprs.Arena.Len()),
			Fns:       make(map[source.StringID]*FnSig, builder.Fns.Len()),
		},
	}

	c.registerTypedefs()
	c.collectSignatures()

	for _, fnID := range builder.FnOrder {
		fn := builder.Fns.Get(fnID)
		if fn == nil || !fn.Body.IsValid() {
			continue
		}
		c.checkFunction(fnID, fn)
	}
	return c.result
}

func (c *checker) report(code diag.Code, span source.Span, format string, args ...any) {
	diag.ReportError(c.reporter, code, span, fmt.Sprintf(format, args...)).Emit()
}

// registerTypedefs resolves user typedefs into interner aliases, in
// declaration order so chained typedefs work.
func (c *checker) registerTypedefs() {
	for _, td := range c.builder.Typedefs {
		target := c.resolveTypeExpr(td.Underlying)
		if target == types.NoTypeID {
			continue
		}
		name := c.builder.Strings.MustLookup(td.Name)
		if _, exists := c.types.LookupByName(name); exists {
			c.report(diag.SemaRedeclared, td.Span, "type %q redeclared", name)
			continue
		}
		c.types.RegisterAlias(name, target)
	}
}

func (c *checker) collectSignatures() {
	for _, fnID := range c.builder.FnOrder {
		fn := c.builder.Fns.Get(fnID)
		if fn == nil {
			continue
		}
		sig := &FnSig{
			Fn:     fnID,
			Name:   fn.Name,
			Return: c.resolveTypeExpr(fn.Return),
		}
		for _, param := range fn.Params {
			sig.Params = append(sig.Params, c.resolveTypeExpr(param.Type))
		}
		// Прототип и определение с одним именем — нормально; берём
		// последнюю декларацию.
		c.result.Fns[fn.Name] = sig
	}
}

// resolveTypeExpr maps a syntactic type spelling to a semantic handle.
func (c *checker) resolveTypeExpr(id ast.TypeExprID) types.TypeID {
	te := c.builder.Types.Get(id)
	if te == nil {
		return types.NoTypeID
	}
	name := c.builder.Strings.MustLookup(te.Name)
	if typeID, ok := c.types.LookupByName(name); ok {
		return typeID
	}
	c.report(diag.SemaUnknownType, te.Span, "unknown type name %q", name)
	return types.NoTypeID
}

func (c *checker) pushScope() {
	c.scopes = append(c.scopes, make(map[source.StringID]types.TypeID))
}

func (c *checker) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *checker) declare(name source.StringID, typ types.TypeID, span source.Span) {
	scope := c.scopes[len(c.scopes)-1]
	if _, exists := scope[name]; exists {
		c.report(diag.SemaRedeclared, span, "%q redeclared in this scope",
			c.builder.Strings.MustLookup(name))
	}
	scope[name] = typ
}

func (c *checker) lookupVar(name source.StringID) (types.TypeID, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if typ, ok := c.scopes[i][name]; ok {
			return typ, true
		}
	}
	return types.NoTypeID, false
}

func (c *checker) checkFunction(fnID ast.FnID, fn *ast.FnData) {
	sig := c.result.Fns[fn.Name]
	c.pushScope()
	defer c.popScope()

	for i, param := range fn.Params {
		if param.Name == source.NoStringID {
			continue
		}
		c.declare(param.Name, sig.Params[i], param.Span)
	}
	c.checkStmt(fn.Body, sig.Return)
}

func (c *checker) checkStmt(id ast.StmtID, retType types.TypeID) {
	stmt := c.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}

	switch stmt.Kind {
	case ast.StmtBlock:
		data, _ := c.builder.Stmts.Block(id)
		c.pushScope()
		for _, child := range data.Stmts {
			c.checkStmt(child, retType)
		}
		c.popScope()

	case ast.StmtDecl:
		data, _ := c.builder.Stmts.Decl(id)
		declType := c.resolveTypeExpr(data.Type)
		c.declare(data.Name, declType, data.NameSpan)
		if data.Init.IsValid() {
			c.typeExpr(data.Init)
			value := c.coerce(declType, data.Init)
			// Инициализатор заворачивается в binding-обёртку, как это
			// делает настоящий фронтенд.
			init := c.builder.Exprs.NewInit(c.builder.ExprSpan(value), value)
			c.result.ExprTypes[init] = declType
			data.Init = init
		}

	case ast.StmtExpr:
		data, _ := c.builder.Stmts.Expr(id)
		c.typeExpr(data.Expr)

	case ast.StmtReturn:
		data, _ := c.builder.Stmts.Return(id)
		if !data.Value.IsValid() {
			return
		}
		if c.isVoid(retType) {
			c.report(diag.SemaReturnValue, stmt.Span, "return with a value in a void function")
			c.typeExpr(data.Value)
			return
		}
		c.typeExpr(data.Value)
		data.Value = c.coerce(retType, data.Value)

	case ast.StmtIf:
		data, _ := c.builder.Stmts.If(id)
		c.typeExpr(data.Cond)
		c.checkStmt(data.Then, retType)
		if data.Else.IsValid() {
			c.checkStmt(data.Else, retType)
		}

	case ast.StmtWhile:
		data, _ := c.builder.Stmts.While(id)
		c.typeExpr(data.Cond)
		c.checkStmt(data.Body, retType)

	case ast.StmtDoWhile:
		data, _ := c.builder.Stmts.DoWhile(id)
		c.checkStmt(data.Body, retType)
		c.typeExpr(data.Cond)

	case ast.StmtFor:
		data, _ := c.builder.Stmts.For(id)
		c.pushScope()
		if data.Init.IsValid() {
			c.checkStmt(data.Init, retType)
		}
		if data.Cond.IsValid() {
			c.typeExpr(data.Cond)
		}
		if data.Post.IsValid() {
			c.typeExpr(data.Post)
		}
		c.checkStmt(data.Body, retType)
		c.popScope()

	case ast.StmtSwitch:
		data, _ := c.builder.Stmts.Switch(id)
		c.typeExpr(data.Cond)
		for _, caseID := range data.Cases {
			caseData, ok := c.builder.Stmts.Case(caseID)
			if !ok {
				continue
			}
			if caseData.Value.IsValid() {
				c.typeExpr(caseData.Value)
			}
			c.pushScope()
			for _, child := range caseData.Body {
				c.checkStmt(child, retType)
			}
			c.popScope()
		}

	case ast.StmtBreak, ast.StmtContinue, ast.StmtEmpty, ast.StmtCase:
		// ничего типизировать
	}
}

func (c *checker) isVoid(id types.TypeID) bool {
	t, ok := c.types.Lookup(c.types.Canonical(id))
	return ok && t.Kind == types.KindVoid
}
