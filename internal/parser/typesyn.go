package parser

import (
	"strings"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/token"
)

// parseTypeExpr reads a type spelling and normalizes it to one name the
// typing pass can resolve: "const" and "signed" are dropped, a trailing
// "int" after a size word is folded ("long int" -> "long"), multi-word
// spellings keep single spaces ("unsigned long", "long long").
func (p *Parser) parseTypeExpr() (ast.TypeExprID, bool) {
	start := p.tok.Span
	end := p.tok.Span

	// Имя typedef-типа — одно слово, без комбинаций.
	if p.at(token.Ident) && p.typedefNames[p.tok.Text] {
		name := p.builder.Strings.Intern(p.tok.Text)
		p.advance()
		return p.builder.Types.New(start, name), true
	}

	var words []string
	for p.tok.IsTypeKeyword() || p.at(token.KwConst) {
		if !p.at(token.KwConst) && !p.at(token.KwSigned) {
			words = append(words, p.tok.Kind.String())
		}
		end = p.tok.Span
		p.advance()
	}
	if len(words) == 0 {
		diag.ReportError(p.reporter, diag.SynExpectType, p.tok.Span,
			"expected type name").Emit()
		return ast.NoTypeExprID, false
	}

	words = normalizeTypeWords(words)
	name := p.builder.Strings.Intern(strings.Join(words, " "))
	return p.builder.Types.New(start.Cover(end), name), true
}

func normalizeTypeWords(words []string) []string {
	// `short int`, `long int`, `long long int`, `unsigned int ...`:
	// убираем завершающий "int", если есть слово размера.
	if len(words) > 1 && words[len(words)-1] == "int" {
		for _, w := range words[:len(words)-1] {
			if w == "short" || w == "long" || w == "unsigned" {
				words = words[:len(words)-1]
				break
			}
		}
	}
	// Голое `unsigned` — это `unsigned int`.
	if len(words) == 1 && words[0] == "unsigned" {
		return []string{"unsigned", "int"}
	}
	return words
}
