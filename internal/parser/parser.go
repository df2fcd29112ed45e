// Package parser turns a token stream into the arena AST. It covers the
// C subset the narrowing analysis targets: typedefs, function prototypes
// and definitions, the usual statement forms, and expressions including
// C-style and static_cast conversions.
package parser

import (
	"fmt"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/lexer"
	"narrowcheck/internal/source"
	"narrowcheck/internal/token"
)

type Parser struct {
	builder  *ast.Builder
	lx       *lexer.Lexer
	reporter diag.Reporter
	tok      token.Token

	// typedefNames отслеживает имена типов, чтобы отличать объявление
	// `int32_t x;` от выражения. Засеяно именами из <cstdint>.
	typedefNames map[string]bool
}

// ParseFile parses one file into builder. Diagnostics go to reporter;
// parsing never fails hard, it resynchronizes and keeps going.
func ParseFile(file *source.File, builder *ast.Builder, reporter diag.Reporter) {
	p := &Parser{
		builder:      builder,
		lx:           lexer.New(file, reporter),
		reporter:     reporter,
		typedefNames: seedTypedefNames(),
	}
	p.advance()
	p.parseTopLevel()
}

func seedTypedefNames() map[string]bool {
	names := map[string]bool{}
	for _, n := range []string{
		"int8_t", "int16_t", "int32_t", "int64_t",
		"uint8_t", "uint16_t", "uint32_t", "uint64_t",
	} {
		names[n] = true
	}
	return names
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// eat потребляет токен заданного вида, если он текущий.
func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind, code diag.Code) bool {
	if p.eat(kind) {
		return true
	}
	diag.ReportError(p.reporter, code, p.tok.Span,
		fmt.Sprintf("expected %q, found %q", kind.String(), p.tok.Text)).Emit()
	return false
}

// atTypeStart reports whether the current token can begin a type spelling.
func (p *Parser) atTypeStart() bool {
	if p.tok.IsTypeKeyword() || p.at(token.KwConst) {
		return true
	}
	return p.at(token.Ident) && p.typedefNames[p.tok.Text]
}

// syncTo skips tokens until one of the kinds (consuming a semicolon,
// stopping before a brace) to recover from a parse error.
func (p *Parser) syncTo() {
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.RBrace, token.LBrace:
			return
		}
		p.advance()
	}
}

func (p *Parser) parseTopLevel() {
	for !p.at(token.EOF) {
		switch {
		case p.at(token.KwTypedef):
			p.parseTypedef()
		case p.atTypeStart():
			p.parseFunction()
		default:
			diag.ReportError(p.reporter, diag.SynUnexpectedTopLevel, p.tok.Span,
				fmt.Sprintf("unexpected %q at top level", p.tok.Text)).Emit()
			p.advance()
			p.syncTo()
		}
	}
}

// parseTypedef handles `typedef <type> <name> ;`.
func (p *Parser) parseTypedef() {
	start := p.tok.Span
	p.advance() // typedef

	underlying, ok := p.parseTypeExpr()
	if !ok {
		p.syncTo()
		return
	}
	if !p.at(token.Ident) {
		diag.ReportError(p.reporter, diag.SynExpectIdentifier, p.tok.Span,
			"expected typedef name").Emit()
		p.syncTo()
		return
	}
	name := p.tok.Text
	nameID := p.builder.Strings.Intern(name)
	p.advance()
	p.expect(token.Semicolon, diag.SynExpectSemicolon)

	p.typedefNames[name] = true
	p.builder.PushTypedef(ast.Typedef{
		Name:       nameID,
		Underlying: underlying,
		Span:       start.Cover(p.tok.Span),
	})
}

// parseFunction handles `<type> <name> ( params ) ;` and definitions with
// a body.
func (p *Parser) parseFunction() {
	start := p.tok.Span
	ret, ok := p.parseTypeExpr()
	if !ok {
		p.syncTo()
		return
	}
	if !p.at(token.Ident) {
		diag.ReportError(p.reporter, diag.SynExpectIdentifier, p.tok.Span,
			"expected function name").Emit()
		p.syncTo()
		return
	}
	nameSpan := p.tok.Span
	name := p.builder.Strings.Intern(p.tok.Text)
	p.advance()

	if !p.expect(token.LParen, diag.SynUnexpectedToken) {
		p.syncTo()
		return
	}
	params := p.parseParams()

	body := ast.NoStmtID
	switch {
	case p.at(token.LBrace):
		body = p.parseBlock()
	case p.eat(token.Semicolon):
		// prototype
	default:
		diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.tok.Span,
			"expected function body or ';'").Emit()
		p.syncTo()
	}

	id := p.builder.Fns.New(ast.FnData{
		Name:     name,
		NameSpan: nameSpan,
		Params:   params,
		Return:   ret,
		Body:     body,
		Span:     start.Cover(nameSpan),
	})
	p.builder.PushFn(id)
}

// parseParams parses the parameter list up to and including ')'.
// `(void)` and `()` both mean no parameters.
func (p *Parser) parseParams() []ast.FnParam {
	var params []ast.FnParam

	if p.eat(token.RParen) {
		return params
	}
	// `(void)`
	if p.at(token.KwVoid) {
		next := p.lx.Peek()
		if next.Kind == token.RParen {
			p.advance()
			p.advance()
			return params
		}
	}

	for {
		span := p.tok.Span
		typ, ok := p.parseTypeExpr()
		if !ok {
			p.syncTo()
			return params
		}
		name := source.NoStringID
		if p.at(token.Ident) {
			name = p.builder.Strings.Intern(p.tok.Text)
			span = span.Cover(p.tok.Span)
			p.advance()
		}
		params = append(params, ast.FnParam{Name: name, Type: typ, Span: span})
		if p.eat(token.Comma) {
			continue
		}
		p.expect(token.RParen, diag.SynUnclosedParen)
		return params
	}
}
