package diag

import (
	"testing"

	"narrowcheck/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.Add("testdata/sample.c", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: fileID, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: fileID, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     NarrowLossyConversion,
			Message:  "another",
			Primary:  source.Span{File: fileID, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/sample.c:1:1 first line second\n" +
		"note SYN2001 testdata/sample.c:2:1 note line\n" +
		"warning NAR4001 testdata/sample.c:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	withoutNotes := "error SYN2001 testdata/sample.c:1:1 first line second\n" +
		"warning NAR4001 testdata/sample.c:2:1 another"
	if got := FormatShortDiagnostics(diags, fs, false); got != withoutNotes {
		t.Fatalf("unexpected short diagnostics without notes:\nwant:\n%s\n\ngot:\n%s", withoutNotes, got)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	if got := FormatShortDiagnostics(nil, source.NewFileSet(), true); got != "" {
		t.Fatalf("want empty output, got %q", got)
	}
}
