package narrow

import (
	"narrowcheck/internal/types"
)

// Verdict is the outcome of classifying one (to, from) conversion pair.
type Verdict uint8

const (
	// VerdictNone — пара неинтересна, диагностика не нужна.
	VerdictNone Verdict = iota
	// VerdictNarrowing is a 64-to-32 bit conversion that can lose data.
	VerdictNarrowing
)

// Classify decides whether converting a value of type from into a slot of
// type to narrows it. Typedefs are resolved to their canonical variants
// first; any missing or non-numeric side yields VerdictNone.
//
// The pairs flagged:
//
//	int64  -> int32   (same category, 64 to 32 bits)
//	float64 -> float32
//	int64  -> float32 (loses integer precision above 2^24)
//	float64 -> int32  (truncates and can overflow)
func Classify(in *types.Interner, to types.TypeID, from types.TypeID) Verdict {
	if to == types.NoTypeID || from == types.NoTypeID {
		return VerdictNone
	}
	toType, okTo := in.Lookup(in.Canonical(to))
	fromType, okFrom := in.Lookup(in.Canonical(from))
	if !okTo || !okFrom || !toType.IsNumeric() || !fromType.IsNumeric() {
		return VerdictNone
	}
	if fromType.Width != types.Width64 || toType.Width != types.Width32 {
		return VerdictNone
	}
	switch {
	case fromType.Kind == toType.Kind:
		return VerdictNarrowing
	case fromType.Kind == types.KindInt && toType.Kind == types.KindFloat:
		return VerdictNarrowing
	case fromType.Kind == types.KindFloat && toType.Kind == types.KindInt:
		return VerdictNarrowing
	}
	return VerdictNone
}
