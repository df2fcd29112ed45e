package token

// Kind enumerates all token kinds of the analyzed C subset.
type Kind uint8

const (
	EOF Kind = iota
	Invalid

	Ident
	IntLit
	FloatLit

	// Punctuation and operators
	Plus
	Minus
	Star
	Slash
	Percent
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	EqEq
	Bang
	BangEq
	Lt
	LtEq
	Gt
	GtEq
	Shl
	Shr
	Amp
	Pipe
	Caret
	Tilde
	AndAnd
	OrOr
	Question
	Colon
	Semicolon
	Comma
	LParen
	RParen
	LBrace
	RBrace

	// Keywords
	KwVoid
	KwBool
	KwChar
	KwShort
	KwInt
	KwLong
	KwFloat
	KwDouble
	KwSigned
	KwUnsigned
	KwConst
	KwTypedef
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwSwitch
	KwCase
	KwDefault
	KwBreak
	KwContinue
	KwReturn
	KwTrue
	KwFalse
	KwStaticCast
)

var kindNames = map[Kind]string{
	EOF:      "EOF",
	Invalid:  "invalid",
	Ident:    "identifier",
	IntLit:   "integer literal",
	FloatLit: "float literal",

	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	EqEq:          "==",
	Bang:          "!",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Shl:           "<<",
	Shr:           ">>",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	AndAnd:        "&&",
	OrOr:          "||",
	Question:      "?",
	Colon:         ":",
	Semicolon:     ";",
	Comma:         ",",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",

	KwVoid:       "void",
	KwBool:       "bool",
	KwChar:       "char",
	KwShort:      "short",
	KwInt:        "int",
	KwLong:       "long",
	KwFloat:      "float",
	KwDouble:     "double",
	KwSigned:     "signed",
	KwUnsigned:   "unsigned",
	KwConst:      "const",
	KwTypedef:    "typedef",
	KwIf:         "if",
	KwElse:       "else",
	KwWhile:      "while",
	KwDo:         "do",
	KwFor:        "for",
	KwSwitch:     "switch",
	KwCase:       "case",
	KwDefault:    "default",
	KwBreak:      "break",
	KwContinue:   "continue",
	KwReturn:     "return",
	KwTrue:       "true",
	KwFalse:      "false",
	KwStaticCast: "static_cast",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
