package lexer

import (
	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
	"narrowcheck/internal/token"
)

// scanNumber reads integer and floating literals with the C suffixes the
// subset needs: L/LL/U[L...] for integers, f/F for floats. A literal is a
// float when it contains '.', an exponent, or an f/F suffix.
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	isFloat := false

	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		isFloat = true
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		isFloat = true
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDigit(lx.cursor.Peek()) {
			diag.ReportError(lx.reporter, diag.LexBadNumber,
				lx.cursor.SpanFrom(mark), "exponent has no digits").Emit()
		}
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// Суффиксы: f/F — float, u/U/l/L — integer.
	switch lx.cursor.Peek() {
	case 'f', 'F':
		isFloat = true
		lx.cursor.Bump()
	case 'u', 'U', 'l', 'L':
		for {
			if b := lx.cursor.Peek(); b == 'u' || b == 'U' || b == 'l' || b == 'L' {
				lx.cursor.Bump()
				continue
			}
			break
		}
	}

	// Слипшийся идентификатор после числа — ошибка лексики.
	if isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentPart(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		diag.ReportError(lx.reporter, diag.LexBadNumber,
			lx.cursor.SpanFrom(mark), "malformed numeric literal").Emit()
		return token.Token{
			Kind: token.Invalid,
			Span: lx.cursor.SpanFrom(mark),
			Text: lx.cursor.TextFrom(mark),
		}
	}

	kind := token.IntLit
	if isFloat {
		kind = token.FloatLit
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}

// File exposes the underlying file (used by the parser for spans).
func (lx *Lexer) File() *source.File {
	return lx.file
}
