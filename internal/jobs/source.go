// Package jobs reads job postings from a CSV file into ordered records.
package jobs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// DescriptionColumn is the one column every input file must carry.
const DescriptionColumn = "description"

// TitleColumn is optional; when present it is embedded into the prompt.
const TitleColumn = "title"

// SchemaError reports an input file that lacks the required job
// description column. Detected at open time, before any model call.
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input file %s is missing the required column %q", e.Path, e.Column)
}

// Record is one row of the input file: column name to value, with the
// original column order preserved. Unknown columns pass through untouched.
type Record struct {
	header []string
	index  map[string]int
	values []string
}

// Get returns the value for a column, or "" when the column is absent.
func (r Record) Get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Has reports whether the record carries a non-empty value for a column.
func (r Record) Has(name string) bool {
	return r.Get(name) != ""
}

// Values returns the row values in header order.
func (r Record) Values() []string {
	return r.values
}

// Source reads records from a CSV file in file order. Iteration is lazy
// and restartable: each call to Rows reopens the file.
type Source struct {
	path   string
	header []string
	index  map[string]int
}

// Open validates the file's header and returns a Source. It fails with a
// *SchemaError when the description column is absent.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	if _, ok := index[DescriptionColumn]; !ok {
		return nil, &SchemaError{Path: path, Column: DescriptionColumn}
	}

	return &Source{path: path, header: header, index: index}, nil
}

// Header returns the input column names in file order.
func (s *Source) Header() []string {
	return s.header
}

// Rows starts a fresh pass over the file's records.
func (s *Source) Rows() (*Rows, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(s.header)
	if _, err := r.Read(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to skip header of %s: %w", s.path, err)
	}

	return &Rows{source: s, file: f, reader: r}, nil
}

// Count returns the number of data rows. It makes its own pass over the
// file and does not disturb other iterations.
func (s *Source) Count() (int, error) {
	rows, err := s.Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
	}
	return n, rows.Err()
}

// Rows iterates over records in file order.
type Rows struct {
	source  *Source
	file    *os.File
	reader  *csv.Reader
	current Record
	err     error
	done    bool
}

// Next advances to the next record. It returns false at end of file or on
// a read error; check Err afterwards.
func (r *Rows) Next() bool {
	if r.done {
		return false
	}
	values, err := r.reader.Read()
	if err == io.EOF {
		r.done = true
		return false
	}
	if err != nil {
		r.err = err
		r.done = true
		return false
	}
	r.current = Record{header: r.source.header, index: r.source.index, values: values}
	return true
}

// Record returns the record produced by the last successful Next.
func (r *Rows) Record() Record {
	return r.current
}

// Err returns the first error encountered during iteration, if any.
func (r *Rows) Err() error {
	return r.err
}

// Close releases the underlying file.
func (r *Rows) Close() error {
	return r.file.Close()
}
