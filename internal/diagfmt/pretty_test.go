package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	content := []byte("void f() {\n\tint32_t i32 = i64;\n}\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.c", content)

	bag := diag.NewBag(10)
	// Span покрывает `i64` на второй строке.
	bag.Add(diag.NewWarning(
		diag.NarrowLossyConversion,
		source.Span{File: fileID, Start: 26, End: 29},
		"lossy conversion from int64_t to int32_t in variable initialization",
	))
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := testBag(t)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.c"},
		{"Basename only", PathModeBasename, "test.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Color: false, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "WARNING") {
				t.Error("Expected WARNING in output")
			}
			if !strings.Contains(output, "NAR4001") {
				t.Error("Expected NAR4001 code in output")
			}
			if !strings.Contains(output, "lossy conversion") {
				t.Error("Expected message in output")
			}
		})
	}
}

func TestPrettySourceLineAndCaret(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, PathMode: PathModeBasename, ShowSource: true})
	output := buf.String()

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + source + caret, got %d lines:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "test.c:2:16:") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "\t\tint32_t i32 = i64;" {
		t.Errorf("unexpected source line %q", lines[1])
	}
	// Каретка выровнена под `i64`: таб сохраняется, остальное — пробелы.
	want := "\t\t" + strings.Repeat(" ", 14) + "^~~"
	if lines[2] != want {
		t.Errorf("caret line %q, want %q", lines[2], want)
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := testBag(t)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
	})
	if out.Count != 1 {
		t.Fatalf("want 1 diagnostic, got %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "NAR4001" || d.Severity != "WARNING" {
		t.Fatalf("unexpected code/severity: %+v", d)
	}
	if d.Location.File != "test.c" || d.Location.StartLine != 2 || d.Location.StartCol != 16 {
		t.Fatalf("unexpected location: %+v", d.Location)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := testBag(t)
	bag.Add(diag.NewWarning(diag.NarrowLossyConversion, source.Span{File: 0, Start: 0, End: 1}, "second"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("want truncation to 1, got %d", out.Count)
	}
}
