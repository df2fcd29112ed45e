package narrow_test

import (
	"strings"
	"testing"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/narrow"
	"narrowcheck/internal/parser"
	"narrowcheck/internal/sema"
	"narrowcheck/internal/source"
	"narrowcheck/internal/types"
)

type finding struct {
	line    uint32
	message string
}

// analyze runs the full pipeline on one virtual file and returns the
// narrowing warnings as (line, message) pairs, in emission order.
func analyze(t *testing.T, src string) []finding {
	t.Helper()

	fset := source.NewFileSet()
	fileID := fset.AddVirtual("test.c", []byte(src))
	file := fset.Get(fileID)

	bag := diag.NewBag(256)
	reporter := diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(0)
	parser.ParseFile(file, builder, reporter)
	interner := types.NewInterner()
	result := sema.Check(builder, interner, reporter)
	narrow.CheckFile(builder, interner, result, reporter)

	var out []finding
	for _, d := range bag.Items() {
		if d.Code != diag.NarrowLossyConversion {
			continue
		}
		start, _ := fset.Resolve(d.Primary)
		out = append(out, finding{line: start.Line, message: d.Message})
	}
	return out
}

func expect(t *testing.T, got []finding, want []finding) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d warnings, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].line != want[i].line {
			t.Fatalf("warning %d on line %d, want line %d (%q)",
				i, got[i].line, want[i].line, got[i].message)
		}
		if got[i].message != want[i].message {
			t.Fatalf("warning %d message %q, want %q", i, got[i].message, want[i].message)
		}
	}
}

func TestInitializationNarrowing(t *testing.T) {
	src := `void f() {
	int64_t i64 = 1;
	int32_t i32 = i64;
	double d64 = 1.0;
	float f32 = d64;
}`
	expect(t, analyze(t, src), []finding{
		{3, "lossy conversion from int64_t to int32_t in variable initialization"},
		{5, "lossy conversion from double to float in variable initialization"},
	})
}

func TestAssignmentNarrowing(t *testing.T) {
	src := `void f() {
	int64_t i64 = 1;
	int32_t i32;
	i32 = i64;
}`
	expect(t, analyze(t, src), []finding{
		{4, "lossy conversion from int64_t to int32_t in assignment"},
	})
}

func TestReturnNarrowing(t *testing.T) {
	src := `int32_t from_int64() {
	int64_t i64 = 1;
	return i64;
}
float from_double() {
	double d64 = 1.0;
	return d64;
}
int32_t from_double_to_int() {
	double d64 = 1.0;
	return d64;
}
float from_int64_to_float() {
	int64_t i64 = 1;
	return i64;
}`
	expect(t, analyze(t, src), []finding{
		{3, "lossy conversion from int64_t to int32_t in return value"},
		{7, "lossy conversion from double to float in return value"},
		{11, "lossy conversion from double to int32_t in return value"},
		{15, "lossy conversion from int64_t to float in return value"},
	})
}

func TestArgumentNarrowing(t *testing.T) {
	src := `void takes_int(int32_t i) {}
void takes_float(float f) {}
void f() {
	int64_t i64 = 3;
	double d64 = 3.0;
	takes_int(i64);
	takes_float(d64);
	takes_float(i64);
	takes_int(d64);
	int32_t i32 = 3;
	takes_int(i32);
}`
	expect(t, analyze(t, src), []finding{
		{6, "lossy conversion from int64_t to int32_t in function argument"},
		{7, "lossy conversion from double to float in function argument"},
		{8, "lossy conversion from int64_t to float in function argument"},
		{9, "lossy conversion from double to int32_t in function argument"},
	})
}

func TestExplicitCastsAreStillLossy(t *testing.T) {
	src := `void f() {
	int64_t i64 = 2;
	int32_t a = static_cast<int32_t>(i64);
	int32_t b = (int32_t)i64;
	double d64 = 2.0;
	float c = static_cast<float>(d64);
	float d = (float)d64;
}`
	got := analyze(t, src)
	if len(got) != 4 {
		t.Fatalf("got %d warnings, want 4: %+v", len(got), got)
	}
	for _, f := range got {
		if !strings.Contains(f.message, "lossy conversion from") {
			t.Fatalf("unexpected message %q", f.message)
		}
	}
}

func TestWideningAndSameWidthAreSilent(t *testing.T) {
	src := `void f() {
	int32_t i32 = 10;
	int64_t i64 = i32;
	float f32 = 1.0f;
	double d64 = f32;
	int32_t other = i32;
	double also = d64 + 1.0;
}`
	if got := analyze(t, src); len(got) != 0 {
		t.Fatalf("want no warnings, got %+v", got)
	}
}

func TestChainedConversionsReportOriginalType(t *testing.T) {
	// An intermediate widening cast must not hide the 64-bit origin.
	src := `void f() {
	int64_t i64 = 1;
	float f32 = (double)i64;
}`
	expect(t, analyze(t, src), []finding{
		{3, "lossy conversion from int64_t to float in variable initialization"},
	})
}

func TestCalleeBehindAddressOf(t *testing.T) {
	src := `void takes_int(int32_t i) {}
void f() {
	int64_t i64 = 1;
	(&takes_int)(i64);
}`
	expect(t, analyze(t, src), []finding{
		{4, "lossy conversion from int64_t to int32_t in function argument"},
	})
}

func TestIndirectCallSkipsArguments(t *testing.T) {
	src := `void f() {
	int64_t i64 = 1;
	int32_t not_a_fn = 0;
	not_a_fn(i64);
}`
	if got := analyze(t, src); len(got) != 0 {
		t.Fatalf("want no warnings for an indirect call, got %+v", got)
	}
}

func TestExtraArgumentsCheckMatchedPrefix(t *testing.T) {
	src := `void takes_int(int32_t i) {}
void f() {
	int64_t i64 = 1;
	takes_int(i64, i64);
}`
	expect(t, analyze(t, src), []finding{
		{4, "lossy conversion from int64_t to int32_t in function argument"},
	})
}

func TestTypedefChainsResolveToCanonical(t *testing.T) {
	src := `typedef int64_t my_handle;
typedef my_handle handle_alias;
void f() {
	handle_alias h = 1;
	int32_t small = h;
	my_handle wide = h;
}`
	expect(t, analyze(t, src), []finding{
		{5, "lossy conversion from handle_alias to int32_t in variable initialization"},
	})
}

func TestNarrowingInsideControlFlow(t *testing.T) {
	src := `void sink(int32_t i) {}
void f() {
	int64_t i64 = 1;
	for (int32_t i = 0; i < 10; i = i + 1) {
		if (i64 > 0) {
			sink(i64);
		}
	}
	while (i64 > 0) {
		int32_t trunc = i64;
		i64 = i64 - 1;
	}
	switch (i64) {
	case 1: {
		int32_t in_case = i64;
		break;
	}
	}
}`
	expect(t, analyze(t, src), []finding{
		{6, "lossy conversion from int64_t to int32_t in function argument"},
		{10, "lossy conversion from int64_t to int32_t in variable initialization"},
		{15, "lossy conversion from int64_t to int32_t in variable initialization"},
	})
}

func TestIncludeLinesDoNotBreakAnalysis(t *testing.T) {
	// Заголовки съедаются лексером как тривия; предупреждения остаются.
	src := `#include <cstdint>
#include <cstdio>

void takes_int(int32_t i) {}
void f() {
	int64_t i64 = 1;
	int32_t i32 = i64;
	takes_int(i64);
}`
	expect(t, analyze(t, src), []finding{
		{7, "lossy conversion from int64_t to int32_t in variable initialization"},
		{8, "lossy conversion from int64_t to int32_t in function argument"},
	})
}

func TestLongLongSuffixLiterals(t *testing.T) {
	src := `void f() {
	int32_t i32 = 9007199254740992LL;
}`
	expect(t, analyze(t, src), []finding{
		{2, "lossy conversion from long long to int32_t in variable initialization"},
	})
}
