package model

import "github.com/shopspring/decimal"

const (
	// ElectricityBill is the bill shown for every recommended system.
	ElectricityBill = "Zero"
	// NoSystemsMessage is shown when consumption exceeds every catalog size.
	NoSystemsMessage = "No recommended systems found for your input."
)

// Projection is the projected benefit of one eligible system size.
// Amounts are in the configured currency and never negative.
type Projection struct {
	SizeKW   int
	Monthly  decimal.Decimal
	SixMonth decimal.Decimal
	Yearly   decimal.Decimal
}

// Recommendation bundles the inputs with every eligible system and its projections.
type Recommendation struct {
	Category    Category
	Consumption float64 // units per month
	// MinSystemSizeKW is consumption / units-per-kW.
	MinSystemSizeKW float64
	Currency        string
	Systems         []Projection
}

// HasConsumption is false when nothing was entered (or zero was entered);
// in that state no recommendation is shown at all.
func (r Recommendation) HasConsumption() bool {
	return r.Consumption > 0
}

// Empty reports a non-zero consumption for which no catalog size qualifies.
func (r Recommendation) Empty() bool {
	return r.HasConsumption() && len(r.Systems) == 0
}
