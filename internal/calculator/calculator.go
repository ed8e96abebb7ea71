package calculator

import (
	"errors"
	"fmt"
	"math"

	"solar-calculator/internal/model"

	"github.com/shopspring/decimal"
)

const (
	DefaultUnitsPerKW = 120.0
	DefaultExportRate = 10.0
	DefaultCurrency   = "Rs."
)

// ProjectionMonths are the horizons reported for each eligible system.
var ProjectionMonths = [3]int{1, 6, 12}

// Params are the process-wide constants of the benefit model.
// Units:
// - UnitsPerKW: energy units generated per kW of capacity per month
// - ExportRate: currency earned per exported unit
type Params struct {
	UnitsPerKW float64
	ExportRate float64
	Currency   string
}

func DefaultParams() Params {
	return Params{
		UnitsPerKW: DefaultUnitsPerKW,
		ExportRate: DefaultExportRate,
		Currency:   DefaultCurrency,
	}
}

func (p Params) Validate() error {
	if !(p.UnitsPerKW > 0) || math.IsInf(p.UnitsPerKW, 0) {
		return errors.New("UnitsPerKW must be > 0")
	}
	if !(p.ExportRate >= 0) || math.IsInf(p.ExportRate, 0) {
		return errors.New("ExportRate must be >= 0")
	}
	return nil
}

// Calculator sizes systems against a catalog. It is immutable after New and
// safe for concurrent use.
type Calculator struct {
	catalog Catalog
	params  Params

	unitsPerKW decimal.Decimal
	exportRate decimal.Decimal
}

func New(catalog Catalog, params Params) (*Calculator, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("calculator params invalid: %w", err)
	}
	return &Calculator{
		catalog:    catalog.Clone(),
		params:     params,
		unitsPerKW: decimal.NewFromFloat(params.UnitsPerKW),
		exportRate: decimal.NewFromFloat(params.ExportRate),
	}, nil
}

// Default is a calculator over DefaultCatalog and DefaultParams.
func Default() *Calculator {
	c, err := New(DefaultCatalog(), DefaultParams())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Calculator) Params() Params { return c.params }

// Catalog returns a copy of the catalog in use.
func (c *Calculator) Catalog() Catalog { return c.catalog.Clone() }

// MinSystemSize is the smallest capacity (kW) whose generation covers consumption.
func (c *Calculator) MinSystemSize(consumption float64) float64 {
	return consumption / c.params.UnitsPerKW
}

// SelectSystems returns every catalog size for cat that is at least
// MinSystemSize(consumption), in catalog order. Zero consumption selects nothing.
func (c *Calculator) SelectSystems(cat model.Category, consumption float64) []int {
	if !(consumption > 0) {
		return []int{}
	}
	minSize := c.MinSystemSize(consumption)
	out := []int{}
	for _, size := range c.catalog[cat] {
		if float64(size) >= minSize {
			out = append(out, size)
		}
	}
	return out
}

// EstimateBenefit is the export income of a sizeKW system over months, given
// the monthly consumption: (generated - consumed) * exportRate, floored at zero.
func (c *Calculator) EstimateBenefit(sizeKW, months int, consumption float64) decimal.Decimal {
	m := decimal.NewFromInt(int64(months))
	generated := decimal.NewFromInt(int64(sizeKW)).Mul(c.unitsPerKW).Mul(m)
	consumed := decimal.NewFromFloat(consumption).Mul(m)
	income := generated.Sub(consumed).Mul(c.exportRate)
	if income.IsPositive() {
		return income
	}
	return decimal.Zero
}

// Project estimates all reporting horizons for one size.
func (c *Calculator) Project(sizeKW int, consumption float64) model.Projection {
	return model.Projection{
		SizeKW:   sizeKW,
		Monthly:  c.EstimateBenefit(sizeKW, ProjectionMonths[0], consumption),
		SixMonth: c.EstimateBenefit(sizeKW, ProjectionMonths[1], consumption),
		Yearly:   c.EstimateBenefit(sizeKW, ProjectionMonths[2], consumption),
	}
}

// Recommend runs the eligibility filter and projects every selected size.
func (c *Calculator) Recommend(cat model.Category, consumption float64) model.Recommendation {
	sizes := c.SelectSystems(cat, consumption)
	systems := make([]model.Projection, 0, len(sizes))
	for _, size := range sizes {
		systems = append(systems, c.Project(size, consumption))
	}
	return model.Recommendation{
		Category:        cat,
		Consumption:     consumption,
		MinSystemSizeKW: c.MinSystemSize(consumption),
		Currency:        c.params.Currency,
		Systems:         systems,
	}
}
