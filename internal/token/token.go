package token

import (
	"narrowcheck/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token can start a type spelling.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwVoid, KwBool, KwChar, KwShort, KwInt, KwLong, KwFloat, KwDouble, KwSigned, KwUnsigned:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether the token is an assignment operator,
// simple or compound.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}
