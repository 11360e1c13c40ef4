// Package export writes the task list to plain text or PDF files.
package export

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todopad/internal/fileutil"
	"todopad/internal/service"
)

// Format is an export file format.
type Format string

const (
	// Text writes one "[✔] text" / "[ ] text" line per task.
	Text Format = "txt"

	// PDF writes a one-column A4 report.
	PDF Format = "pdf"
)

const (
	// DoneMarker prefixes completed tasks in text exports.
	DoneMarker = "[✔]"

	// OpenMarker prefixes open tasks in text exports.
	OpenMarker = "[ ]"
)

// WriteError reports that an export destination could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ParseFormat parses a format name. Empty means Text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "txt", "text":
		return Text, nil
	case "pdf":
		return PDF, nil
	default:
		return "", fmt.Errorf("unknown format: %s", name)
	}
}

// FormatFor picks the format for a destination path by its extension.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return PDF
	}
	return Text
}

// Line formats a single task as an export line, without the newline.
func Line(t service.Task) string {
	marker := OpenMarker
	if t.Completed {
		marker = DoneMarker
	}
	return marker + " " + t.Text
}

// WriteText writes tasks in store order, one line each.
func WriteText(w io.Writer, tasks []service.Task) error {
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		if _, err := fmt.Fprintln(bw, Line(t)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePDF writes tasks as a simple PDF report.
// The core PDF fonts have no check mark glyph, so rows use [x].
func WritePDF(w io.Writer, tasks []service.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "To-Do List")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	for _, t := range tasks {
		marker := "[ ]"
		if t.Completed {
			marker = "[x]"
		}
		pdf.MultiCell(0, 7, tr(marker+" "+t.Text), "0", "L", false)
	}
	return pdf.Output(w)
}

// Write writes tasks to w in the given format.
func Write(w io.Writer, format Format, tasks []service.Task) error {
	switch format {
	case PDF:
		return WritePDF(w, tasks)
	case Text, "":
		return WriteText(w, tasks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// ToFile atomically writes tasks to path. Failures come back as *WriteError
// and leave no partial file behind.
func ToFile(path string, format Format, tasks []service.Task) error {
	err := fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		return Write(w, format, tasks)
	})
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
