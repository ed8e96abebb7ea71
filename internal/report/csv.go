package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"solar-calculator/internal/model"
)

// WriteCSV writes one row per eligible system.
func WriteCSV(w io.Writer, rec model.Recommendation) error {
	cw := csv.NewWriter(w)

	header := []string{
		"size_kw",
		"monthly_benefit",
		"six_month_benefit",
		"yearly_benefit",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range rec.Systems {
		row := []string{
			strconv.Itoa(s.SizeKW),
			FormatAmount(s.Monthly),
			FormatAmount(s.SixMonth),
			FormatAmount(s.Yearly),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
