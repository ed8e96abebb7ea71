package report

import (
	"fmt"
	"io"

	"solar-calculator/internal/model"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// The core Helvetica font is WinAnsi (cp1252) encoded; UTF-8 must be converted first.
func encodeText(s string) (string, error) {
	return charmap.Windows1252.NewEncoder().String(s)
}

// ValidateCurrency rejects labels the PDF font cannot print.
func ValidateCurrency(label string) error {
	if _, err := encodeText(label); err != nil {
		return fmt.Errorf("currency %q cannot be printed in PDF reports: %w", label, err)
	}
	return nil
}

func render(rec model.Recommendation) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetCreator("solar-calculator", true)
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range Layout(rec) {
		pdf.AddPage()
		size := 0.0
		for _, l := range page.Lines {
			if l.FontSize != size {
				pdf.SetFont("Helvetica", "", l.FontSize)
				size = l.FontSize
			}
			text, err := encodeText(l.Text)
			if err != nil {
				return nil, fmt.Errorf("encode %q: %w", l.Text, err)
			}
			pdf.Text(l.X, l.Y, text)
		}
	}
	return pdf, nil
}

// WritePDF renders rec as an A4 document.
func WritePDF(w io.Writer, rec model.Recommendation) error {
	pdf, err := render(rec)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
