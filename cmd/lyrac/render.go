package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lyra/internal/diag"
	"lyra/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return errColor.Sprint("error")
	case diag.SevWarning:
		return warnColor.Sprint("warning")
	default:
		return infoColor.Sprint("info")
	}
}

// renderDiagnostics prints the sorted bag contents with source context.
func renderDiagnostics(out io.Writer, fset *source.FileSet, bag *diag.Bag) {
	bag.Sort()
	for _, d := range bag.Items() {
		renderDiagnostic(out, fset, d)
	}
}

func renderDiagnostic(out io.Writer, fset *source.FileSet, d diag.Diagnostic) {
	f := fset.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(out, "%s %s: %s\n", severityLabel(d.Severity), d.Code, d.Message)
		return
	}

	start, _ := fset.Resolve(d.Primary)
	fmt.Fprintf(out, "%s:%d:%d: %s %s: %s\n",
		f.Path, start.Line, start.Col, severityLabel(d.Severity), d.Code, d.Message)

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(out, "  %s\n", line)

	// caret under the start column; runewidth keeps it aligned for
	// wide characters in the prefix
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])
	fmt.Fprintf(out, "  %s^\n", strings.Repeat(" ", pad))
}

// renderSummaries prints the end-of-run categorized warning totals.
func renderSummaries(out io.Writer, dc *diag.Context) {
	for _, s := range dc.Summaries() {
		fmt.Fprintf(out, "%s\n", warnColor.Sprint(s))
	}
}
