package types

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Widths in precision bits.
const (
	WidthNone uint8 = 0
	Width8    uint8 = 8
	Width16   uint8 = 16
	Width32   uint8 = 32
	Width64   uint8 = 64
)

// Type describes one type handle. A handle with AliasOf != NoTypeID is a
// typedef name for another handle; category and width comparisons must go
// through Interner.Canonical first.
type Type struct {
	Kind     Kind
	Width    uint8 // precision bits, 0 for void
	Unsigned bool
	Name     string // spelling as written in source, used for display
	AliasOf  TypeID
}

// IsNumeric reports whether the type participates in the narrowing policy.
func (t Type) IsNumeric() bool {
	return t.Kind == KindInt || t.Kind == KindFloat
}
