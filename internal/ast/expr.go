package ast

import (
	"narrowcheck/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprUnary
	ExprBinary
	ExprAssign
	ExprTernary
	ExprCall
	ExprConvert
	ExprInit
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitBool
)

type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota
	UnaryPlus
	UnaryNot
	UnaryBitNot
	UnaryAddrOf
)

type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryRem
	BinaryShl
	BinaryShr
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryLogicAnd
	BinaryLogicOr
	BinaryEq
	BinaryNe
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
)

// ConvertKind distinguishes the transparent wrapper nodes the typing pass
// and the parser produce around converted values. All of them are peeled
// identically by the narrowing resolver.
type ConvertKind uint8

const (
	// ConvertNoOp is an implicit same-category conversion.
	ConvertNoOp ConvertKind = iota
	// ConvertExplicit is a cast written in source, C-style or static_cast.
	ConvertExplicit
	// ConvertReinterpret is a bit-pattern reinterpretation.
	ConvertReinterpret
	// ConvertIntToFloat is an implicit integer-to-float conversion.
	ConvertIntToFloat
	// ConvertFloatToInt is an implicit float-to-integer truncation.
	ConvertFloatToInt
)
