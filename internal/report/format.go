package report

import (
	"fmt"
	"io"
	"strings"

	"solar-calculator/internal/model"
)

// Format selects the document encoding of an export.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatCSV Format = "csv"
)

// ParseFormat defaults to PDF when s is empty.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported report format: %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}

func (f Format) Filename() string {
	if f == FormatCSV {
		return CSVFilename
	}
	return PDFFilename
}

// Write encodes rec in format f.
func (f Format) Write(w io.Writer, rec model.Recommendation) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, rec)
	case FormatCSV:
		return WriteCSV(w, rec)
	default:
		return fmt.Errorf("unsupported report format: %q", string(f))
	}
}
