package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"solar-calculator/internal/calculator"
	"solar-calculator/internal/model"
	"solar-calculator/internal/report"
)

func printCategories(w io.Writer, calc *calculator.Calculator) {
	catalog := calc.Catalog()
	fmt.Fprintf(w, "%-24s %-44s %s\n", "id", "label", "sizes (kW)")
	for _, cat := range model.AllCategories() {
		sizes := catalog.Sizes(cat)
		parts := make([]string, len(sizes))
		for i, s := range sizes {
			parts[i] = strconv.Itoa(s)
		}
		fmt.Fprintf(w, "%-24s %-44s %s\n", cat, cat.Label(), strings.Join(parts, ", "))
	}
	p := calc.Params()
	fmt.Fprintf(w, "\nunits per kW: %g   export rate: %s %g per unit\n", p.UnitsPerKW, p.Currency, p.ExportRate)
}

func printRecommendation(w io.Writer, rec model.Recommendation) {
	fmt.Fprintf(w, "Monthly Consumption: %s Units\n", report.FormatConsumption(rec.Consumption))
	fmt.Fprintf(w, "Property Type: %s\n", rec.Category.Label())
	if !rec.HasConsumption() {
		return
	}
	fmt.Fprintf(w, "Minimum system size: %.2f kW\n\n", rec.MinSystemSizeKW)
	if rec.Empty() {
		fmt.Fprintln(w, model.NoSystemsMessage)
		return
	}

	cur := rec.Currency
	fmt.Fprintf(w, "%-8s %-16s %-16s %-16s %s\n", "kW", "monthly", "6-month", "yearly", "bill")
	for _, s := range rec.Systems {
		fmt.Fprintf(w, "%-8d %-16s %-16s %-16s %s\n",
			s.SizeKW,
			cur+" "+report.FormatAmount(s.Monthly),
			cur+" "+report.FormatAmount(s.SixMonth),
			cur+" "+report.FormatAmount(s.Yearly),
			model.ElectricityBill,
		)
	}
}
