package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexBadNumber                Code = 1003

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynUnclosedParen      Code = 2006
	SynUnclosedBrace      Code = 2007
	SynExpectColon        Code = 2008
	SynBadCast            Code = 2009
	SynUnexpectedTopLevel Code = 2010

	// Семантические (typing pass)
	SemaInfo             Code = 3000
	SemaUnknownType      Code = 3001
	SemaUndeclared       Code = 3002
	SemaRedeclared       Code = 3003
	SemaNotCallable      Code = 3004
	SemaArgCountMismatch Code = 3005
	SemaVoidValue        Code = 3006
	SemaReturnValue      Code = 3007

	// Narrowing-анализ
	NarrowInfo            Code = 4000
	NarrowLossyConversion Code = 4001

	// Ввод-вывод
	IOInfo          Code = 5000
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                     "lexer info",
	LexUnknownChar:              "unknown character",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",

	SynInfo:               "parser info",
	SynUnexpectedToken:    "unexpected token",
	SynExpectSemicolon:    "expected ';'",
	SynExpectIdentifier:   "expected identifier",
	SynExpectType:         "expected type name",
	SynExpectExpression:   "expected expression",
	SynUnclosedParen:      "unclosed '('",
	SynUnclosedBrace:      "unclosed '{'",
	SynExpectColon:        "expected ':'",
	SynBadCast:            "malformed cast expression",
	SynUnexpectedTopLevel: "unexpected top-level construct",

	SemaInfo:             "semantic info",
	SemaUnknownType:      "unknown type name",
	SemaUndeclared:       "undeclared identifier",
	SemaRedeclared:       "identifier redeclared",
	SemaNotCallable:      "called object is not a function",
	SemaArgCountMismatch: "wrong number of arguments",
	SemaVoidValue:        "void value used where a value is required",
	SemaReturnValue:      "return with a value in a void function",

	NarrowInfo:            "narrowing info",
	NarrowLossyConversion: "lossy numeric conversion",

	IOInfo:          "io info",
	IOLoadFileError: "failed to load file",
}

// ID returns the stable short identifier, e.g. "NAR4001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("NAR%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
