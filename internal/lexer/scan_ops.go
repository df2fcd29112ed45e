package lexer

import (
	"fmt"

	"narrowcheck/internal/diag"
	"narrowcheck/internal/token"
)

// scanOperator reads one punctuation or operator token, longest match first.
func (lx *Lexer) scanOperator() token.Token {
	mark := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '+':
		kind = lx.pick('=', token.PlusAssign, token.Plus)
	case '-':
		kind = lx.pick('=', token.MinusAssign, token.Minus)
	case '*':
		kind = lx.pick('=', token.StarAssign, token.Star)
	case '/':
		kind = lx.pick('=', token.SlashAssign, token.Slash)
	case '%':
		kind = lx.pick('=', token.PercentAssign, token.Percent)
	case '=':
		kind = lx.pick('=', token.EqEq, token.Assign)
	case '!':
		kind = lx.pick('=', token.BangEq, token.Bang)
	case '<':
		switch lx.cursor.Peek() {
		case '=':
			lx.cursor.Bump()
			kind = token.LtEq
		case '<':
			lx.cursor.Bump()
			kind = token.Shl
		default:
			kind = token.Lt
		}
	case '>':
		switch lx.cursor.Peek() {
		case '=':
			lx.cursor.Bump()
			kind = token.GtEq
		case '>':
			lx.cursor.Bump()
			kind = token.Shr
		default:
			kind = token.Gt
		}
	case '&':
		kind = lx.pick('&', token.AndAnd, token.Amp)
	case '|':
		kind = lx.pick('|', token.OrOr, token.Pipe)
	case '^':
		kind = token.Caret
	case '~':
		kind = token.Tilde
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	}

	span := lx.cursor.SpanFrom(mark)
	if kind == token.Invalid {
		diag.ReportError(lx.reporter, diag.LexUnknownChar, span,
			fmt.Sprintf("unknown character %q", b)).Emit()
	}
	return token.Token{
		Kind: kind,
		Span: span,
		Text: lx.cursor.TextFrom(mark),
	}
}

// pick consumes next if it equals the expected byte and returns the long
// kind, otherwise returns the short kind.
func (lx *Lexer) pick(next byte, long, short token.Kind) token.Kind {
	if lx.cursor.Peek() == next {
		lx.cursor.Bump()
		return long
	}
	return short
}
