package diag_test

import (
	"testing"

	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddRespectsCap(t *testing.T) {
	bag := diag.NewBag(2)
	d := diag.NewError(diag.SynUnexpectedToken, span(0, 0, 1), "x")
	if !bag.Add(d) || !bag.Add(d) {
		t.Fatalf("Add failed below the cap")
	}
	if bag.Add(d) {
		t.Errorf("Add succeeded past the cap")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("empty bag reports diagnostics")
	}

	bag.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 0, 1), "w"))
	if bag.HasErrors() {
		t.Errorf("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Errorf("HasWarnings missed the warning")
	}

	bag.Add(diag.NewError(diag.SemaUndeclared, span(0, 0, 1), "e"))
	if !bag.HasErrors() {
		t.Errorf("HasErrors missed the error")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.NarrowLossyConversion, span(1, 5, 6), "later file"))
	bag.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 20, 21), "later offset"))
	bag.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 3, 4), "first"))
	bag.Add(diag.NewError(diag.SemaUndeclared, span(0, 3, 4), "same span, error first"))

	bag.Sort()
	items := bag.Items()
	wantMsgs := []string{"same span, error first", "first", "later offset", "later file"}
	for i, want := range wantMsgs {
		if items[i].Message != want {
			t.Errorf("items[%d].Message = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	d := diag.NewWarning(diag.NarrowLossyConversion, span(0, 3, 4), "dup")
	bag.Add(d)
	bag.Add(d)
	bag.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 5, 6), "other"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Dedup kept %d items, want 2", bag.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 0, 1), "a"))
	b := diag.NewBag(2)
	b.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 2, 3), "b1"))
	b.Add(diag.NewWarning(diag.NarrowLossyConversion, span(0, 4, 5), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("merged Len = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap = %d after merge, want >= 3", a.Cap())
	}
}

func TestCodeIDFormatting(t *testing.T) {
	cases := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.SynUnexpectedToken, "SYN2001"},
		{diag.SemaUnknownType, "SEM3001"},
		{diag.SemaUndeclared, "SEM3002"},
		{diag.NarrowLossyConversion, "NAR4001"},
		{diag.IOLoadFileError, "IO5001"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestReportBuilderEmitsToBag(t *testing.T) {
	bag := diag.NewBag(10)
	reporter := diag.BagReporter{Bag: bag}
	diag.ReportWarning(reporter, diag.NarrowLossyConversion, span(0, 1, 2), "msg").
		WithNote(span(0, 5, 6), "declared here").
		Emit()

	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("Len = %d, want 1", len(items))
	}
	d := items[0]
	if d.Severity != diag.SevWarning || d.Code != diag.NarrowLossyConversion {
		t.Errorf("diagnostic = %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Errorf("note lost: %+v", d.Notes)
	}
}
