// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/asharma/resume-tailor/internal/results"
	"github.com/asharma/resume-tailor/internal/tailoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxPreviewRows is the number of rows shown in the score preview
	maxPreviewRows = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeText outputs a summary of the extracted résumé text for
// verbose mode.
func (p *Printer) PrintResumeText(text string) {
	preview := text
	if idx := strings.Index(preview, "\n"); idx >= 0 {
		preview = preview[:idx]
	}
	content := fmt.Sprintf("Characters: %d\nFirst line: %s", len(text), preview)
	p.printBox("Extracted Resume Text", content)
}

// PrintScorePreview outputs the job title and ATS score of the first few
// output rows, mirroring the end-of-run preview operators expect.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintScorePreview(table *results.Table) {
	header := table.Header()
	titleIdx, scoreIdx, reasonIdx := -1, -1, -1
	for i, name := range header {
		switch name {
		case "title":
			titleIdx = i
		case tailoring.FieldATSMatchScore:
			scoreIdx = i
		case tailoring.FieldScoreReasoning:
			reasonIdx = i
		}
	}
	if scoreIdx < 0 {
		return
	}

	fmt.Fprintf(p.out, "\n--- Preview of ATS Scores ---\n")
	for i, row := range table.Rows() {
		if i >= maxPreviewRows {
			fmt.Fprintf(p.out, "... and %d more rows\n", table.Len()-maxPreviewRows)
			break
		}
		title := "(untitled)"
		if titleIdx >= 0 && row[titleIdx] != "" {
			title = row[titleIdx]
		}
		reasoning := ""
		if reasonIdx >= 0 {
			reasoning = firstSentence(row[reasonIdx])
		}
		fmt.Fprintf(p.out, "%-40.40s  %3s  %s\n", title, row[scoreIdx], reasoning)
	}
}

// PrintRunSummary outputs the closing lines of a run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunSummary(table *results.Table, outputPath string) {
	fmt.Fprintln(p.out, strings.Repeat("-", 50))
	fmt.Fprintf(p.out, "%d rows written (%d failed).\n", table.Len(), table.Failed())
	fmt.Fprintf(p.out, "Tailored resumes and ATS scores saved to: %s\n", outputPath)
	p.PrintScorePreview(table)
}

func firstSentence(text string) string {
	if idx := strings.IndexAny(text, ".\n"); idx >= 0 {
		return text[:idx+1]
	}
	return text
}
