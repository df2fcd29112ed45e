package parser

import (
	"fmt"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/token"
)

// parseExpr is the entry point for a full expression. The comma operator
// is not part of the subset, so this is assignment level.
func (p *Parser) parseExpr() ast.ExprID {
	return p.parseAssignExpr()
}

// parseAssignExpr handles right-associative assignment. Compound forms
// are desugared into plain assignment of a binary expression, the same
// shape a host frontend lowers them to.
func (p *Parser) parseAssignExpr() ast.ExprID {
	left := p.parseTernaryExpr()
	if !p.tok.IsAssignOp() {
		return left
	}

	opTok := p.tok
	p.advance()
	rhs := p.parseAssignExpr()

	value := rhs
	if op, isCompound := compoundBinaryOp(opTok.Kind); isCompound {
		span := p.builder.ExprSpan(left).Cover(p.builder.ExprSpan(rhs))
		value = p.builder.Exprs.NewBinary(span, op, left, rhs)
	}
	span := p.builder.ExprSpan(left).Cover(p.builder.ExprSpan(rhs))
	return p.builder.Exprs.NewAssign(span, left, value)
}

func compoundBinaryOp(kind token.Kind) (ast.BinaryOp, bool) {
	switch kind {
	case token.PlusAssign:
		return ast.BinaryAdd, true
	case token.MinusAssign:
		return ast.BinarySub, true
	case token.StarAssign:
		return ast.BinaryMul, true
	case token.SlashAssign:
		return ast.BinaryDiv, true
	case token.PercentAssign:
		return ast.BinaryRem, true
	default:
		return 0, false
	}
}

func (p *Parser) parseTernaryExpr() ast.ExprID {
	cond := p.parseBinaryExpr(1)
	if !p.eat(token.Question) {
		return cond
	}
	then := p.parseAssignExpr()
	p.expect(token.Colon, diag.SynExpectColon)
	els := p.parseAssignExpr()
	span := p.builder.ExprSpan(cond).Cover(p.builder.ExprSpan(els))
	return p.builder.Exprs.NewTernary(span, cond, then, els)
}

// binaryPrec returns the precedence of a binary operator token, 0 when the
// token is not a binary operator.
func binaryPrec(kind token.Kind) (ast.BinaryOp, int) {
	switch kind {
	case token.OrOr:
		return ast.BinaryLogicOr, 1
	case token.AndAnd:
		return ast.BinaryLogicAnd, 2
	case token.Pipe:
		return ast.BinaryBitOr, 3
	case token.Caret:
		return ast.BinaryBitXor, 4
	case token.Amp:
		return ast.BinaryBitAnd, 5
	case token.EqEq:
		return ast.BinaryEq, 6
	case token.BangEq:
		return ast.BinaryNe, 6
	case token.Lt:
		return ast.BinaryLt, 7
	case token.LtEq:
		return ast.BinaryLe, 7
	case token.Gt:
		return ast.BinaryGt, 7
	case token.GtEq:
		return ast.BinaryGe, 7
	case token.Shl:
		return ast.BinaryShl, 8
	case token.Shr:
		return ast.BinaryShr, 8
	case token.Plus:
		return ast.BinaryAdd, 9
	case token.Minus:
		return ast.BinarySub, 9
	case token.Star:
		return ast.BinaryMul, 10
	case token.Slash:
		return ast.BinaryDiv, 10
	case token.Percent:
		return ast.BinaryRem, 10
	default:
		return 0, 0
	}
}

// parseBinaryExpr is standard precedence climbing, left associative.
func (p *Parser) parseBinaryExpr(minPrec int) ast.ExprID {
	left := p.parseUnaryExpr()
	for {
		op, prec := binaryPrec(p.tok.Kind)
		if prec < minPrec || prec == 0 {
			return left
		}
		p.advance()
		right := p.parseBinaryExpr(prec + 1)
		span := p.builder.ExprSpan(left).Cover(p.builder.ExprSpan(right))
		left = p.builder.Exprs.NewBinary(span, op, left, right)
	}
}

func (p *Parser) parseUnaryExpr() ast.ExprID {
	switch p.tok.Kind {
	case token.Minus, token.Plus, token.Bang, token.Tilde, token.Amp:
		opTok := p.tok
		p.advance()
		operand := p.parseUnaryExpr()
		span := opTok.Span.Cover(p.builder.ExprSpan(operand))
		return p.builder.Exprs.NewUnary(span, unaryOp(opTok.Kind), operand)
	case token.KwStaticCast:
		return p.parseStaticCast()
	case token.LParen:
		// Скобка начинает cast, только если дальше идёт имя типа.
		next := p.lx.Peek()
		if next.IsTypeKeyword() || (next.Kind == token.Ident && p.typedefNames[next.Text]) {
			return p.parseCCast()
		}
		return p.parsePostfixExpr()
	default:
		return p.parsePostfixExpr()
	}
}

func unaryOp(kind token.Kind) ast.UnaryOp {
	switch kind {
	case token.Minus:
		return ast.UnaryNeg
	case token.Plus:
		return ast.UnaryPlus
	case token.Bang:
		return ast.UnaryNot
	case token.Tilde:
		return ast.UnaryBitNot
	default:
		return ast.UnaryAddrOf
	}
}

// parseCCast handles `(T)expr`.
func (p *Parser) parseCCast() ast.ExprID {
	start := p.tok.Span
	p.advance() // '('
	to, ok := p.parseTypeExpr()
	if !ok {
		p.syncTo()
		return ast.NoExprID
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	operand := p.parseUnaryExpr()
	span := start.Cover(p.builder.ExprSpan(operand))
	return p.builder.Exprs.NewConvert(span, ast.ConvertExplicit, to, operand)
}

// parseStaticCast handles `static_cast<T>(expr)`.
func (p *Parser) parseStaticCast() ast.ExprID {
	start := p.tok.Span
	p.advance() // static_cast
	if !p.expect(token.Lt, diag.SynBadCast) {
		p.syncTo()
		return ast.NoExprID
	}
	to, ok := p.parseTypeExpr()
	if !ok {
		p.syncTo()
		return ast.NoExprID
	}
	if !p.expect(token.Gt, diag.SynBadCast) {
		p.syncTo()
		return ast.NoExprID
	}
	p.expect(token.LParen, diag.SynBadCast)
	operand := p.parseExpr()
	end := p.tok.Span
	p.expect(token.RParen, diag.SynUnclosedParen)
	return p.builder.Exprs.NewConvert(start.Cover(end), ast.ConvertExplicit, to, operand)
}

func (p *Parser) parsePostfixExpr() ast.ExprID {
	expr := p.parsePrimaryExpr()
	for p.at(token.LParen) {
		p.advance()
		var args []ast.ExprID
		if !p.at(token.RParen) {
			for {
				args = append(args, p.parseAssignExpr())
				if !p.eat(token.Comma) {
					break
				}
			}
		}
		end := p.tok.Span
		p.expect(token.RParen, diag.SynUnclosedParen)
		span := p.builder.ExprSpan(expr).Cover(end)
		expr = p.builder.Exprs.NewCall(span, expr, args)
	}
	return expr
}

func (p *Parser) parsePrimaryExpr() ast.ExprID {
	switch p.tok.Kind {
	case token.IntLit:
		id := p.builder.Exprs.NewLiteral(p.tok.Span, ast.ExprLitInt, p.builder.Strings.Intern(p.tok.Text))
		p.advance()
		return id
	case token.FloatLit:
		id := p.builder.Exprs.NewLiteral(p.tok.Span, ast.ExprLitFloat, p.builder.Strings.Intern(p.tok.Text))
		p.advance()
		return id
	case token.KwTrue, token.KwFalse:
		id := p.builder.Exprs.NewLiteral(p.tok.Span, ast.ExprLitBool, p.builder.Strings.Intern(p.tok.Text))
		p.advance()
		return id
	case token.Ident:
		id := p.builder.Exprs.NewIdent(p.tok.Span, p.builder.Strings.Intern(p.tok.Text))
		p.advance()
		return id
	case token.LParen:
		p.advance()
		expr := p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen)
		return expr
	default:
		diag.ReportError(p.reporter, diag.SynExpectExpression, p.tok.Span,
			fmt.Sprintf("expected expression, found %q", p.tok.Text)).Emit()
		span := p.tok.Span
		p.advance()
		return p.builder.Exprs.NewLiteral(span, ast.ExprLitInt, p.builder.Strings.Intern("0"))
	}
}
