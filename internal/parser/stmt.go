package parser

import (
	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/token"
)

// parseBlock parses `{ stmt* }` and returns a StmtBlock.
func (p *Parser) parseBlock() ast.StmtID {
	start := p.tok.Span
	p.expect(token.LBrace, diag.SynUnexpectedToken)

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStmts()...)
	}
	end := p.tok.Span
	p.expect(token.RBrace, diag.SynUnclosedBrace)
	return p.builder.Stmts.NewBlock(start.Cover(end), stmts)
}

// parseStmts parses one statement; a declaration with several declarators
// expands into several StmtDecl entries, hence the slice.
func (p *Parser) parseStmts() []ast.StmtID {
	switch {
	case p.at(token.LBrace):
		return []ast.StmtID{p.parseBlock()}
	case p.atTypeStart():
		return p.parseDeclStmt()
	case p.at(token.KwIf):
		return []ast.StmtID{p.parseIf()}
	case p.at(token.KwWhile):
		return []ast.StmtID{p.parseWhile()}
	case p.at(token.KwDo):
		return []ast.StmtID{p.parseDoWhile()}
	case p.at(token.KwFor):
		return []ast.StmtID{p.parseFor()}
	case p.at(token.KwSwitch):
		return []ast.StmtID{p.parseSwitch()}
	case p.at(token.KwReturn):
		return []ast.StmtID{p.parseReturn()}
	case p.at(token.KwBreak):
		span := p.tok.Span
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon)
		return []ast.StmtID{p.builder.Stmts.NewBreak(span)}
	case p.at(token.KwContinue):
		span := p.tok.Span
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon)
		return []ast.StmtID{p.builder.Stmts.NewContinue(span)}
	case p.at(token.Semicolon):
		span := p.tok.Span
		p.advance()
		return []ast.StmtID{p.builder.Stmts.NewEmpty(span)}
	default:
		return []ast.StmtID{p.parseExprStmt()}
	}
}

// parseDeclStmt parses `<type> name [= expr] {, name [= expr]} ;`.
func (p *Parser) parseDeclStmt() []ast.StmtID {
	start := p.tok.Span
	typ, ok := p.parseTypeExpr()
	if !ok {
		p.syncTo()
		return nil
	}

	var out []ast.StmtID
	for {
		if !p.at(token.Ident) {
			diag.ReportError(p.reporter, diag.SynExpectIdentifier, p.tok.Span,
				"expected variable name").Emit()
			p.syncTo()
			return out
		}
		nameSpan := p.tok.Span
		name := p.builder.Strings.Intern(p.tok.Text)
		p.advance()

		init := ast.NoExprID
		if p.eat(token.Assign) {
			init = p.parseAssignExpr()
		}
		out = append(out, p.builder.Stmts.NewDecl(start.Cover(nameSpan), name, nameSpan, typ, init))

		if p.eat(token.Comma) {
			continue
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon)
		return out
	}
}

func (p *Parser) parseExprStmt() ast.StmtID {
	start := p.tok.Span
	expr := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon)
	return p.builder.Stmts.NewExpr(start.Cover(p.builder.ExprSpan(expr)), expr)
}

func (p *Parser) parseReturn() ast.StmtID {
	start := p.tok.Span
	p.advance() // return
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	end := p.tok.Span
	p.expect(token.Semicolon, diag.SynExpectSemicolon)
	return p.builder.Stmts.NewReturn(start.Cover(end), value)
}

func (p *Parser) parseIf() ast.StmtID {
	start := p.tok.Span
	p.advance() // if
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)

	then := p.parseSingle()
	els := ast.NoStmtID
	if p.eat(token.KwElse) {
		els = p.parseSingle()
	}
	return p.builder.Stmts.NewIf(start.Cover(p.builder.StmtSpan(then)), cond, then, els)
}

func (p *Parser) parseWhile() ast.StmtID {
	start := p.tok.Span
	p.advance() // while
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)
	body := p.parseSingle()
	return p.builder.Stmts.NewWhile(start.Cover(p.builder.StmtSpan(body)), cond, body)
}

func (p *Parser) parseDoWhile() ast.StmtID {
	start := p.tok.Span
	p.advance() // do
	body := p.parseSingle()
	p.expect(token.KwWhile, diag.SynUnexpectedToken)
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)
	end := p.tok.Span
	p.expect(token.Semicolon, diag.SynExpectSemicolon)
	return p.builder.Stmts.NewDoWhile(start.Cover(end), body, cond)
}

func (p *Parser) parseFor() ast.StmtID {
	start := p.tok.Span
	p.advance() // for
	p.expect(token.LParen, diag.SynUnexpectedToken)

	init := ast.NoStmtID
	switch {
	case p.at(token.Semicolon):
		p.advance()
	case p.atTypeStart():
		// Только один декларатор в заголовке for.
		if decls := p.parseDeclStmt(); len(decls) > 0 {
			init = decls[0]
		}
	default:
		init = p.parseExprStmt()
	}

	cond := ast.NoExprID
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon)

	post := ast.NoExprID
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	p.expect(token.RParen, diag.SynUnclosedParen)

	body := p.parseSingle()
	return p.builder.Stmts.NewFor(start.Cover(p.builder.StmtSpan(body)), init, cond, post, body)
}

func (p *Parser) parseSwitch() ast.StmtID {
	start := p.tok.Span
	p.advance() // switch
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)
	p.expect(token.LBrace, diag.SynUnexpectedToken)

	var cases []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch {
		case p.at(token.KwCase):
			caseStart := p.tok.Span
			p.advance()
			value := p.parseExpr()
			p.expect(token.Colon, diag.SynExpectColon)
			body := p.parseCaseBody()
			cases = append(cases, p.builder.Stmts.NewCase(caseStart, value, body))
		case p.at(token.KwDefault):
			caseStart := p.tok.Span
			p.advance()
			p.expect(token.Colon, diag.SynExpectColon)
			body := p.parseCaseBody()
			cases = append(cases, p.builder.Stmts.NewCase(caseStart, ast.NoExprID, body))
		default:
			diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
				"expected 'case' or 'default'").Emit()
			p.syncTo()
		}
	}
	end := p.tok.Span
	p.expect(token.RBrace, diag.SynUnclosedBrace)
	return p.builder.Stmts.NewSwitch(start.Cover(end), cond, cases)
}

// parseCaseBody reads statements until the next case label or '}'.
func (p *Parser) parseCaseBody() []ast.StmtID {
	var body []ast.StmtID
	for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) && !p.at(token.EOF) {
		body = append(body, p.parseStmts()...)
	}
	return body
}

// parseSingle parses one statement where C allows either a block or a
// single statement (if/while/for bodies).
func (p *Parser) parseSingle() ast.StmtID {
	stmts := p.parseStmts()
	if len(stmts) == 1 {
		return stmts[0]
	}
	// Несколько деклараторов в одном statement — заворачиваем в блок.
	span := p.tok.Span
	if len(stmts) > 0 {
		span = p.builder.StmtSpan(stmts[0])
	}
	return p.builder.Stmts.NewBlock(span, stmts)
}
