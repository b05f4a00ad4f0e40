// Package results accumulates the output table and writes it to CSV once
// at the end of a run.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/asharma/resume-tailor/internal/jobs"
	"github.com/asharma/resume-tailor/internal/tailoring"
)

// ErrorPlaceholder replaces the tailored résumé text on rows whose model
// call or response parsing failed.
const ErrorPlaceholder = "ERROR: API/Processing Failure"

// Table is the ordered output: every input column plus the three
// tailoring fields. Rows are appended in input order; every row carries
// the identical column set.
type Table struct {
	header []string
	rows   [][]string
	failed int
}

// NewTable creates a Table whose header is the input header extended with
// the tailoring output columns.
func NewTable(inputHeader []string) *Table {
	header := make([]string, 0, len(inputHeader)+3)
	header = append(header, inputHeader...)
	header = append(header,
		tailoring.FieldTailoredResume,
		tailoring.FieldATSMatchScore,
		tailoring.FieldScoreReasoning,
	)
	return &Table{header: header}
}

// Header returns the output column names.
func (t *Table) Header() []string {
	return t.header
}

// AppendResult adds a successfully tailored row.
func (t *Table) AppendResult(record jobs.Record, result *tailoring.Result) {
	t.append(record, result.TailoredResume, result.ATSMatchScore, result.ScoreReasoning)
}

// AppendFailure adds a row whose model call failed, carrying an explicit
// error marker in place of the three fields so the row is never silently
// dropped.
func (t *Table) AppendFailure(record jobs.Record, err error) {
	t.append(record, ErrorPlaceholder, 0, fmt.Sprintf("Processing failed: %v", err))
	t.failed++
}

func (t *Table) append(record jobs.Record, tailored string, score int, reasoning string) {
	row := make([]string, 0, len(t.header))
	row = append(row, record.Values()...)
	row = append(row, tailored, strconv.Itoa(score), reasoning)
	t.rows = append(t.rows, row)
}

// Len returns the number of accumulated rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Failed returns the number of rows recorded as failures.
func (t *Table) Failed() int {
	return t.failed
}

// Rows returns the accumulated rows in input order.
func (t *Table) Rows() [][]string {
	return t.rows
}

// WriteCSV writes the full table to path in one shot.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return f.Close()
}
