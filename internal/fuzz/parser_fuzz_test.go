package fuzztests

import (
	"testing"
	"time"

	"narrowcheck/internal/ast"
	"narrowcheck/internal/diag"
	"narrowcheck/internal/parser"
	"narrowcheck/internal/sema"
	"narrowcheck/internal/source"
	"narrowcheck/internal/testkit"
	"narrowcheck/internal/types"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.c", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		builder := ast.NewBuilder(64)
		parser.ParseFile(file, builder, diag.BagReporter{Bag: bag})

		if err := testkit.CheckSpanInvariants(builder, file); err != nil {
			t.Fatalf("span invariant violated: %v\ninput (%d bytes): %q",
				err, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzCheckerPipeline runs the whole front half on arbitrary input: parse,
// typing and the conversion wrappers it rewrites into the tree. The typing
// pass mutates AST nodes in place, so this guards the parser/sema contract.
func FuzzCheckerPipeline(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.c", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		reporter := diag.BagReporter{Bag: bag}
		builder := ast.NewBuilder(64)
		parser.ParseFile(file, builder, reporter)
		sema.Check(builder, types.NewInterner(), reporter)
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// It uses a timeout to detect infinite loops that could be caused by
// malformed input or edge cases in error recovery.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Edge cases around error recovery and resynchronization.
	f.Add([]byte("void f() { int x = 1\nint y = 2; }"))  // missing semicolon
	f.Add([]byte("void f() { x + y\nint z = 3; }"))      // expression without semicolon
	f.Add([]byte("int f(long long"))                     // truncated parameter list
	f.Add([]byte("{ int x = 1 }"))                       // block at top level
	f.Add([]byte("void f() { { { { } } } }"))            // deeply nested blocks
	f.Add([]byte("void f(int n) { switch (n) { } }"))    // empty switch
	f.Add([]byte("void f() { for (int i = 0 i < 10) }")) // for without semicolons
	f.Add([]byte("void f() { static_cast<>(1); }"))      // cast without a type

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.c", input)
			file := fs.Get(fileID)

			bag := diag.NewBag(128)
			builder := ast.NewBuilder(64)
			parser.ParseFile(file, builder, diag.BagReporter{Bag: bag})
		}()

		select {
		case <-done:
			// parser completed
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
