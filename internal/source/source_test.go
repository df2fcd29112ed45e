package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"narrowcheck/internal/source"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte("int x;\n"))
	f := fs.Get(id)
	if f.Path != "test.c" {
		t.Errorf("Path = %q, want %q", f.Path, "test.c")
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Errorf("virtual file lost FileVirtual flag")
	}
	if fs.Len() != 1 {
		t.Errorf("Len = %d, want 1", fs.Len())
	}
	if _, ok := fs.GetByPath("test.c"); !ok {
		t.Errorf("GetByPath missed the added file")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.c")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int a;\r\nint b;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int a;\nint b;\n" {
		t.Errorf("Content = %q after normalization", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Errorf("FileHadBOM flag not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Errorf("FileNormalizedCRLF flag not set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.c")); err == nil {
		t.Fatalf("Load of a missing file did not fail")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte("abc\ndef\nghi\n"))

	cases := []struct {
		off       uint32
		line, col uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(source.Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("offset %d resolved to %d:%d, want %d:%d",
				tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte("first\nsecond\nlast"))
	f := fs.Get(id)

	cases := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "last"}, // без завершающего \n
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.num); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 10, End: 20}
	b := source.Span{File: 1, Start: 5, End: 15}
	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Errorf("Cover = %v, want 1:5-20", got)
	}

	// Другой файл — span не меняется.
	other := source.Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files changed the span: %v", got)
	}
}

func TestInternerRoundTrip(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("hello")
	b := in.Intern("hello")
	c := in.Intern("world")
	if a != b {
		t.Errorf("same string interned twice: %v != %v", a, b)
	}
	if a == c {
		t.Errorf("distinct strings share an ID")
	}
	if s, ok := in.Lookup(a); !ok || s != "hello" {
		t.Errorf("Lookup = %q, %v", s, ok)
	}
	if s, ok := in.Lookup(source.NoStringID); !ok || s != "" {
		t.Errorf("NoStringID should resolve to the empty string")
	}
	if _, ok := in.Lookup(source.StringID(1000)); ok {
		t.Errorf("Lookup of an out-of-range ID succeeded")
	}
}
