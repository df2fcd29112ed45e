package narrow

import (
	"testing"

	"narrowcheck/internal/types"
)

func TestClassify(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	i64, _ := in.LookupByName("int64_t")
	i32, _ := in.LookupByName("int32_t")

	cases := []struct {
		name string
		to   types.TypeID
		from types.TypeID
		want Verdict
	}{
		{"int64 to int32", b.Int, b.LongLong, VerdictNarrowing},
		{"double to float", b.Float, b.Double, VerdictNarrowing},
		{"int64 to float", b.Float, b.LongLong, VerdictNarrowing},
		{"double to int32", b.Int, b.Double, VerdictNarrowing},
		{"typedef int64 to typedef int32", i32, i64, VerdictNarrowing},
		{"widening int32 to int64", b.LongLong, b.Int, VerdictNone},
		{"same width ints", b.Int, b.UInt, VerdictNone},
		{"float to double", b.Double, b.Float, VerdictNone},
		{"int32 to float", b.Float, b.Int, VerdictNone},
		{"float to int32", b.Int, b.Float, VerdictNone},
		{"16 to 8 bits", b.Char, b.Short, VerdictNone},
		{"missing from", b.Int, types.NoTypeID, VerdictNone},
		{"missing to", types.NoTypeID, b.LongLong, VerdictNone},
		{"void side", b.Void, b.LongLong, VerdictNone},
		{"bool target", b.Bool, b.LongLong, VerdictNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(in, tc.to, tc.from); got != tc.want {
				t.Fatalf("Classify(%s, %s) = %d, want %d",
					in.DisplayName(tc.to), in.DisplayName(tc.from), got, tc.want)
			}
		})
	}
}
