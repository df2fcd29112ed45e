package lexer

import (
	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
	"narrowcheck/internal/token"
)

// Lexer produces tokens for one source file. Whitespace, comments and
// preprocessor lines are consumed silently; malformed input is reported
// through the Reporter and
// yields an Invalid token so the parser can resynchronize.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // 1-элементный буфер для Peek
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
		look:     nil,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}
	}

	b := lx.cursor.Peek()
	switch {
	case isIdentStart(b):
		return lx.scanIdent()
	case isDigit(b):
		return lx.scanNumber()
	default:
		return lx.scanOperator()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.Next()
		lx.look = &tok
	}
	return *lx.look
}

// Tokenize прогоняет весь файл и возвращает все токены, включая финальный EOF.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, reporter)
	toks := make([]token.Token, 0, 256)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// skipTrivia съедает пробелы, комментарии (// и /* */) и строки-директивы (#...).
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			lx.cursor.Bump()
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}
		case b == '#' && lx.atLineStart():
			// Препроцессор не поддерживается: директива в начале строки
			// съедается целиком, как // комментарий.
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

// atLineStart reports whether only horizontal whitespace precedes the
// cursor on its line.
func (lx *Lexer) atLineStart() bool {
	for off := lx.cursor.Off; off > 0; off-- {
		switch lx.file.Content[off-1] {
		case ' ', '\t':
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func (lx *Lexer) skipBlockComment() {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for {
		if lx.cursor.EOF() {
			diag.ReportError(lx.reporter, diag.LexUnterminatedBlockComment,
				lx.cursor.SpanFrom(mark), "unterminated block comment").Emit()
			return
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return
		}
		lx.cursor.Bump()
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (lx *Lexer) scanIdent() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentPart(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(mark)
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: lx.cursor.SpanFrom(mark),
		Text: text,
	}
}
