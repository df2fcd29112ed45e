package types_test

import (
	"testing"

	"narrowcheck/internal/types"
)

func TestBuiltinWidths(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	cases := []struct {
		id    types.TypeID
		kind  types.Kind
		width uint8
	}{
		{b.Char, types.KindInt, types.Width8},
		{b.Short, types.KindInt, types.Width16},
		{b.Int, types.KindInt, types.Width32},
		{b.Long, types.KindInt, types.Width64},
		{b.LongLong, types.KindInt, types.Width64},
		{b.UInt, types.KindInt, types.Width32},
		{b.ULong, types.KindInt, types.Width64},
		{b.Float, types.KindFloat, types.Width32},
		{b.Double, types.KindFloat, types.Width64},
		{b.Bool, types.KindBool, types.Width8},
		{b.Void, types.KindVoid, types.WidthNone},
	}
	for _, tc := range cases {
		tt, ok := in.Lookup(tc.id)
		if !ok {
			t.Fatalf("builtin %v missing", tc.id)
		}
		if tt.Kind != tc.kind || tt.Width != tc.width {
			t.Errorf("%s: kind %v width %d, want %v %d",
				tt.Name, tt.Kind, tt.Width, tc.kind, tc.width)
		}
	}
}

func TestStdintAliasesPreRegistered(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	cases := []struct {
		name   string
		target types.TypeID
	}{
		{"int32_t", b.Int},
		{"int64_t", b.LongLong},
		{"uint32_t", b.UInt},
		{"uint64_t", b.ULong},
		{"int8_t", b.Char},
	}
	for _, tc := range cases {
		id, ok := in.LookupByName(tc.name)
		if !ok {
			t.Fatalf("%s not registered", tc.name)
		}
		if id == tc.target {
			t.Errorf("%s shares a handle with its target; want a distinct alias", tc.name)
		}
		if got := in.Canonical(id); got != tc.target {
			t.Errorf("Canonical(%s) = %v, want %v", tc.name, got, tc.target)
		}
	}
}

func TestRegisterAliasChain(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	handle := in.RegisterAlias("handle_t", b.LongLong)
	alias := in.RegisterAlias("handle_alias", handle)

	if got := in.Canonical(alias); got != b.LongLong {
		t.Errorf("chained alias canonicalizes to %v, want long long", got)
	}
	// Алиас наследует числовые свойства цели.
	tt := in.MustLookup(alias)
	if tt.Kind != types.KindInt || tt.Width != types.Width64 {
		t.Errorf("alias carries kind %v width %d", tt.Kind, tt.Width)
	}
	if in.RegisterAlias("bad", types.NoTypeID) != types.NoTypeID {
		t.Errorf("alias of NoTypeID was registered")
	}
}

func TestDisplayNameKeepsSpelling(t *testing.T) {
	in := types.NewInterner()
	id, _ := in.LookupByName("int64_t")
	if got := in.DisplayName(id); got != "int64_t" {
		t.Errorf("DisplayName = %q, want %q", got, "int64_t")
	}
	if got := in.DisplayName(in.Canonical(id)); got != "long long" {
		t.Errorf("canonical DisplayName = %q, want %q", got, "long long")
	}
	if got := in.DisplayName(types.NoTypeID); got != "<unknown type>" {
		t.Errorf("DisplayName(NoTypeID) = %q", got)
	}
}

func TestIsNumeric(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	if !in.IsNumeric(b.Int) || !in.IsNumeric(b.Double) {
		t.Errorf("int/double not numeric")
	}
	if in.IsNumeric(b.Void) || in.IsNumeric(b.Bool) || in.IsNumeric(types.NoTypeID) {
		t.Errorf("void/bool/NoTypeID counted as numeric")
	}
	// Числовость смотрит сквозь typedef.
	id, _ := in.LookupByName("int64_t")
	if !in.IsNumeric(id) {
		t.Errorf("int64_t not numeric")
	}
}

func TestLookupInvalid(t *testing.T) {
	in := types.NewInterner()
	if _, ok := in.Lookup(types.NoTypeID); ok {
		t.Errorf("Lookup(NoTypeID) succeeded")
	}
	if _, ok := in.Lookup(types.TypeID(9999)); ok {
		t.Errorf("Lookup of an out-of-range ID succeeded")
	}
}
