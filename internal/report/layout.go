package report

import (
	"fmt"
	"strconv"

	"solar-calculator/internal/model"

	"github.com/shopspring/decimal"
)

// Page geometry, in millimetres on A4 portrait.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0

	bottomLimitMM = 287.0
	bodyTopMM     = 20.0
	lineStepMM    = 10.0

	TitleFontSize = 18.0
	BodyFontSize  = 12.0

	Title       = "Solar Calculator Results"
	PDFFilename = "solar_calculator_results.pdf"
	CSVFilename = "solar_calculator_results.csv"
)

// Line is one piece of text placed at an absolute position (baseline).
type Line struct {
	X, Y     float64
	FontSize float64
	Text     string
}

type Page struct {
	Lines []Line
}

// FormatAmount renders a currency amount rounded to two decimals, without trailing zeros.
func FormatAmount(d decimal.Decimal) string {
	return d.Round(2).String()
}

func FormatConsumption(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type pager struct {
	pages []Page
	y     float64
}

func (p *pager) add(x float64, size float64, text string) {
	if p.y > bottomLimitMM {
		p.pages = append(p.pages, Page{})
		p.y = bodyTopMM
	}
	cur := &p.pages[len(p.pages)-1]
	cur.Lines = append(cur.Lines, Line{X: x, Y: p.y, FontSize: size, Text: text})
}

func (p *pager) advance(mm float64) { p.y += mm }

// Layout places the title, the inputs and every projection on as many pages as needed.
func Layout(rec model.Recommendation) []Page {
	p := &pager{pages: []Page{{}}}
	cur := rec.Currency

	p.pages[0].Lines = append(p.pages[0].Lines, Line{X: 10, Y: 10, FontSize: TitleFontSize, Text: Title})

	p.y = bodyTopMM
	p.add(10, BodyFontSize, fmt.Sprintf("Monthly Consumption: %s Units", FormatConsumption(rec.Consumption)))
	p.advance(lineStepMM)
	p.add(10, BodyFontSize, fmt.Sprintf("Property Type: %s", rec.Category.Label()))
	p.advance(2 * lineStepMM)

	p.add(10, BodyFontSize, "Recommended Systems and Benefits:")
	p.advance(lineStepMM)

	for _, s := range rec.Systems {
		p.add(15, BodyFontSize, fmt.Sprintf("%d kW System:", s.SizeKW))
		p.advance(lineStepMM)
		p.add(20, BodyFontSize, fmt.Sprintf("- Monthly Benefit: %s %s", cur, FormatAmount(s.Monthly)))
		p.advance(lineStepMM)
		p.add(20, BodyFontSize, fmt.Sprintf("- 6-Month Benefit: %s %s", cur, FormatAmount(s.SixMonth)))
		p.advance(lineStepMM)
		p.add(20, BodyFontSize, fmt.Sprintf("- Yearly Benefit: %s %s", cur, FormatAmount(s.Yearly)))
		p.advance(lineStepMM)
	}
	return p.pages
}
