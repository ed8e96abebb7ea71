// Package web renders the single-page calculator UI.
package web

import (
	"embed"
	"html/template"
	"net/url"

	"solar-calculator/internal/calculator"
	"solar-calculator/internal/model"
	"solar-calculator/internal/report"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// IndexTemplate is the name the calculator page is registered under.
const IndexTemplate = "index.html.tmpl"

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

type CategoryOption struct {
	Value    string
	Label    string
	Selected bool
}

type SystemCard struct {
	SizeKW   int
	Monthly  string
	SixMonth string
	Yearly   string
}

// PageView is everything the calculator page template needs.
type PageView struct {
	Title string

	ConsumptionValue string // what the field shows
	PrevValue        string // last committed consumption, round-tripped in a hidden field
	Error            string

	Category model.Category
	IsHouse  bool
	Options  []CategoryOption

	Currency        string
	ElectricityBill string

	ShowResults bool
	Cards       []SystemCard
	NoSystems   string
	ExportURL   string
}

// NewPageView builds the page for a committed input and the recommendation computed from it.
// raw is the text the user typed; it is echoed back only when it was rejected.
func NewPageView(rec model.Recommendation, in calculator.Input, raw, errMsg string) PageView {
	v := PageView{
		Title:           "Solar Calculator",
		Error:           errMsg,
		Category:        rec.Category,
		IsHouse:         rec.Category.IsHouse(),
		Currency:        rec.Currency,
		ElectricityBill: model.ElectricityBill,
	}

	if in.Set {
		v.PrevValue = report.FormatConsumption(in.Consumption)
		v.ConsumptionValue = v.PrevValue
	}
	if errMsg != "" {
		v.ConsumptionValue = raw
	}

	for _, c := range model.AllCategories() {
		v.Options = append(v.Options, CategoryOption{
			Value:    string(c),
			Label:    c.Label(),
			Selected: c == rec.Category,
		})
	}

	if !rec.HasConsumption() {
		return v
	}
	v.ShowResults = true
	if rec.Empty() {
		v.NoSystems = model.NoSystemsMessage
		return v
	}
	for _, s := range rec.Systems {
		v.Cards = append(v.Cards, SystemCard{
			SizeKW:   s.SizeKW,
			Monthly:  report.FormatAmount(s.Monthly),
			SixMonth: report.FormatAmount(s.SixMonth),
			Yearly:   report.FormatAmount(s.Yearly),
		})
	}
	q := url.Values{}
	q.Set("consumption", report.FormatConsumption(rec.Consumption))
	q.Set("category", string(rec.Category))
	v.ExportURL = "/export.pdf?" + q.Encode()
	return v
}
