// Package extract reads the candidate's résumé document and produces the
// plain text that is embedded into every tailoring prompt.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractionError reports a résumé document that could not be turned into
// text. This is fatal to a run: every prompt needs the résumé.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract resume text from %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract resume text from %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ResumeText extracts the full text of a résumé document, dispatching on
// the file extension. Supported formats: .pdf, .docx, .txt.
func ResumeText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &ExtractionError{Path: path, Message: "file not found", Cause: err}
	}

	var text string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = pdfText(path)
	case ".docx":
		text, err = docxText(path)
	case ".txt":
		text, err = plainText(path)
	default:
		return "", &ExtractionError{Path: path, Message: fmt.Sprintf("unsupported file type %q", filepath.Ext(path))}
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		// Typically a scanned image with no text layer
		return "", &ExtractionError{Path: path, Message: "no extractable text"}
	}
	return text, nil
}

// pdfText concatenates the plain text of every page, in page order.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func docxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse docx", Cause: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func plainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return string(data), nil
}
