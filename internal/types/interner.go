package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types of the C subset.
type Builtins struct {
	Invalid   TypeID
	Void      TypeID
	Bool      TypeID
	Char      TypeID
	Short     TypeID
	Int       TypeID
	Long      TypeID
	LongLong  TypeID
	UChar     TypeID
	UShort    TypeID
	UInt      TypeID
	ULong     TypeID
	ULongLong TypeID
	Float     TypeID
	Double    TypeID
}

// Interner provides stable TypeIDs for primitive types and typedef aliases.
// Two distinct handles may denote the same underlying type; Canonical
// resolves a handle to its alias-free variant.
type Interner struct {
	types    []Type
	byName   map[string]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with the built-in primitives
// and the <cstdint> fixed-width typedefs.
func NewInterner() *Interner {
	in := &Interner{
		byName: make(map[string]TypeID, 32),
	}
	in.types = append(in.types, Type{Kind: KindInvalid, Name: "<invalid>"}) // reserve 0

	in.builtins.Invalid = NoTypeID
	in.builtins.Void = in.register(Type{Kind: KindVoid, Name: "void"})
	in.builtins.Bool = in.register(Type{Kind: KindBool, Width: Width8, Name: "bool"})
	in.builtins.Char = in.register(Type{Kind: KindInt, Width: Width8, Name: "char"})
	in.builtins.Short = in.register(Type{Kind: KindInt, Width: Width16, Name: "short"})
	in.builtins.Int = in.register(Type{Kind: KindInt, Width: Width32, Name: "int"})
	in.builtins.Long = in.register(Type{Kind: KindInt, Width: Width64, Name: "long"})
	in.builtins.LongLong = in.register(Type{Kind: KindInt, Width: Width64, Name: "long long"})
	in.builtins.UChar = in.register(Type{Kind: KindInt, Width: Width8, Unsigned: true, Name: "unsigned char"})
	in.builtins.UShort = in.register(Type{Kind: KindInt, Width: Width16, Unsigned: true, Name: "unsigned short"})
	in.builtins.UInt = in.register(Type{Kind: KindInt, Width: Width32, Unsigned: true, Name: "unsigned int"})
	in.builtins.ULong = in.register(Type{Kind: KindInt, Width: Width64, Unsigned: true, Name: "unsigned long"})
	in.builtins.ULongLong = in.register(Type{Kind: KindInt, Width: Width64, Unsigned: true, Name: "unsigned long long"})
	in.builtins.Float = in.register(Type{Kind: KindFloat, Width: Width32, Name: "float"})
	in.builtins.Double = in.register(Type{Kind: KindFloat, Width: Width64, Name: "double"})

	// Типы из <cstdint>: зарегистрированы как typedef-алиасы, чтобы
	// проверка канонизации работала как в настоящем фронтенде.
	in.RegisterAlias("int8_t", in.builtins.Char)
	in.RegisterAlias("int16_t", in.builtins.Short)
	in.RegisterAlias("int32_t", in.builtins.Int)
	in.RegisterAlias("int64_t", in.builtins.LongLong)
	in.RegisterAlias("uint8_t", in.builtins.UChar)
	in.RegisterAlias("uint16_t", in.builtins.UShort)
	in.RegisterAlias("uint32_t", in.builtins.UInt)
	in.RegisterAlias("uint64_t", in.builtins.ULong)

	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

func (in *Interner) register(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.byName[t.Name] = id
	return id
}

// RegisterAlias creates a fresh handle naming an existing type. The new
// handle compares unequal to the target but canonicalizes to it.
func (in *Interner) RegisterAlias(name string, target TypeID) TypeID {
	underlying, ok := in.Lookup(target)
	if !ok {
		return NoTypeID
	}
	return in.register(Type{
		Kind:     underlying.Kind,
		Width:    underlying.Width,
		Unsigned: underlying.Unsigned,
		Name:     name,
		AliasOf:  target,
	})
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// LookupByName resolves a type spelling (builtin or typedef) to its handle.
func (in *Interner) LookupByName(name string) (TypeID, bool) {
	id, ok := in.byName[name]
	return id, ok
}

// Canonical resolves typedef chains to the alias-free handle.
func (in *Interner) Canonical(id TypeID) TypeID {
	for {
		t, ok := in.Lookup(id)
		if !ok || t.AliasOf == NoTypeID {
			return id
		}
		id = t.AliasOf
	}
}

// IsNumeric reports whether the canonical type is integer or float.
func (in *Interner) IsNumeric(id TypeID) bool {
	t, ok := in.Lookup(in.Canonical(id))
	return ok && t.IsNumeric()
}

// DisplayName returns the handle's own spelling, keeping typedef names
// intact so diagnostics read the way the source does.
func (in *Interner) DisplayName(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<unknown type>"
	}
	return t.Name
}
