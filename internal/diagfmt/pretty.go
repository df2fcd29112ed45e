package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes
// с аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		printOne(w, fs, opts, d.Severity, d.Code, d.Primary, d.Message)
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			printNote(w, fs, opts, note)
		}
	}
}

func printOne(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev diag.Severity, code diag.Code, span source.Span, msg string) {
	start, end := fs.Resolve(span)
	file := fs.Get(span.File)

	head := fmt.Sprintf("%s:%d:%d:", formatPath(file.Path, opts.PathMode), start.Line, start.Col)
	label := fmt.Sprintf("%s %s:", sev.String(), code.ID())
	if opts.Color {
		head = color.New(color.Bold).Sprint(head)
		label = severityColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s %s %s\n", head, label, msg)

	if opts.ShowSource {
		printSourceLine(w, file, opts, start, end)
	}
}

func printNote(w io.Writer, fs *source.FileSet, opts PrettyOpts, note diag.Note) {
	start, _ := fs.Resolve(note.Span)
	file := fs.Get(note.Span.File)
	head := fmt.Sprintf("%s:%d:%d:", formatPath(file.Path, opts.PathMode), start.Line, start.Col)
	label := "note:"
	if opts.Color {
		head = color.New(color.Bold).Sprint(head)
		label = color.New(color.FgCyan).Sprint(label)
	}
	fmt.Fprintf(w, "%s %s %s\n", head, label, note.Msg)
}

// printSourceLine prints the offending line followed by a caret marker
// aligned under the span. Display width is computed per rune so wide
// characters and tabs keep the caret in place.
func printSourceLine(w io.Writer, file *source.File, opts PrettyOpts, start, end source.LineCol) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "\t%s\n", line)

	runes := []rune(line)
	startCol := int(start.Col)
	if startCol > len(runes)+1 {
		startCol = len(runes) + 1
	}

	var pad strings.Builder
	for _, r := range runes[:startCol-1] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	markLen := 1
	if end.Line == start.Line && int(end.Col) > startCol {
		markLen = 0
		limit := int(end.Col) - 1
		if limit > len(runes) {
			limit = len(runes)
		}
		for _, r := range runes[startCol-1 : limit] {
			markLen += runewidth.RuneWidth(r)
		}
		if markLen < 1 {
			markLen = 1
		}
	}

	marker := "^" + strings.Repeat("~", markLen-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "\t%s%s\n", pad.String(), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative, PathModeAuto:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				return rel
			}
		}
		return path
	}
	return path
}
