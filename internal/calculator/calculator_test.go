package calculator

import (
	"testing"

	"solar-calculator/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSystems(t *testing.T) {
	calc := Default()

	tests := []struct {
		name        string
		category    model.Category
		consumption float64
		want        []int
	}{
		{"zero consumption selects nothing", model.CategoryHouseSinglePhase, 0, []int{}},
		{"house single phase 500 units", model.CategoryHouseSinglePhase, 500, []int{5, 7, 10, 15, 20}},
		{"small load keeps whole catalog", model.CategoryHouseSinglePhase, 200, []int{3, 5, 7, 10, 15, 20}},
		{"exact boundary is eligible", model.CategoryHouseSinglePhase, 600, []int{5, 7, 10, 15, 20}},
		{"above largest size", model.CategoryHouseSinglePhase, 2401, []int{}},
		{"three phase business keeps 100", model.CategoryBusinessThreePhase, 4900, []int{100}},
		{"bulk supply", model.CategoryBusinessBulk, 30000, []int{300, 500, 1000}},
		{"unknown category", model.Category("factory"), 100, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.SelectSystems(tt.category, tt.consumption))
		})
	}
}

func TestSelectSystemsIsOrderedCatalogSubsequence(t *testing.T) {
	calc := Default()
	catalog := DefaultCatalog()

	for _, cat := range model.AllCategories() {
		for consumption := 0.0; consumption <= 130000; consumption += 137.5 {
			got := calc.SelectSystems(cat, consumption)
			minSize := consumption / DefaultUnitsPerKW

			var want []int
			if consumption > 0 {
				for _, s := range catalog[cat] {
					if float64(s) >= minSize {
						want = append(want, s)
					}
				}
			}
			if want == nil {
				want = []int{}
			}
			require.Equal(t, want, got, "category=%s consumption=%v", cat, consumption)
			for i, s := range got {
				assert.GreaterOrEqual(t, float64(s), minSize)
				if i > 0 {
					assert.Greater(t, s, got[i-1])
				}
			}
		}
	}
}

func TestEstimateBenefit(t *testing.T) {
	calc := Default()

	// 3 kW covers 360 units/month; 200 consumed leaves 160 exported at 10.
	assert.Equal(t, "1600", calc.EstimateBenefit(3, 1, 200).String())
	assert.Equal(t, "9600", calc.EstimateBenefit(3, 6, 200).String())
	assert.Equal(t, "19200", calc.EstimateBenefit(3, 12, 200).String())

	// Fractional consumption stays exact.
	assert.Equal(t, "1595", calc.EstimateBenefit(3, 1, 200.5).String())

	// Under-generating systems never go negative.
	assert.True(t, calc.EstimateBenefit(3, 12, 1000).IsZero())
	// Generation equal to consumption yields nothing.
	assert.True(t, calc.EstimateBenefit(5, 1, 600).IsZero())
}

func TestEstimateBenefitMonotonicInSize(t *testing.T) {
	calc := Default()
	for _, consumption := range []float64{0, 150, 599.9, 2500, 70000} {
		for _, months := range ProjectionMonths {
			prev := decimal.NewFromInt(-1)
			for _, size := range []int{1, 3, 5, 7, 10, 20, 40, 100, 500, 1000} {
				b := calc.EstimateBenefit(size, months, consumption)
				assert.True(t, b.GreaterThanOrEqual(prev), "size=%d months=%d consumption=%v", size, months, consumption)
				assert.False(t, b.IsNegative())
				if float64(size)*DefaultUnitsPerKW <= consumption {
					assert.True(t, b.IsZero(), "size=%d consumption=%v", size, consumption)
				}
				prev = b
			}
		}
	}
}

func TestRecommend(t *testing.T) {
	calc := Default()

	rec := calc.Recommend(model.CategoryHouseSinglePhase, 500)
	require.Len(t, rec.Systems, 5)
	assert.Equal(t, model.CategoryHouseSinglePhase, rec.Category)
	assert.InDelta(t, 4.1667, rec.MinSystemSizeKW, 0.001)
	assert.Equal(t, "Rs.", rec.Currency)
	assert.False(t, rec.Empty())

	first := rec.Systems[0]
	assert.Equal(t, 5, first.SizeKW)
	assert.Equal(t, "1000", first.Monthly.String())
	assert.Equal(t, "6000", first.SixMonth.String())
	assert.Equal(t, "12000", first.Yearly.String())

	none := calc.Recommend(model.CategoryHouseSinglePhase, 5000)
	assert.True(t, none.Empty())
	assert.NotNil(t, none.Systems)

	unset := calc.Recommend(model.CategoryHouseSinglePhase, 0)
	assert.False(t, unset.HasConsumption())
	assert.False(t, unset.Empty())
}

func TestNewRejectsBadParams(t *testing.T) {
	_, err := New(DefaultCatalog(), Params{UnitsPerKW: 0, ExportRate: 10})
	assert.Error(t, err)

	_, err = New(DefaultCatalog(), Params{UnitsPerKW: 120, ExportRate: -1})
	assert.Error(t, err)

	calc, err := New(DefaultCatalog(), Params{UnitsPerKW: 100, ExportRate: 0.5, Currency: "$"})
	require.NoError(t, err)
	assert.Equal(t, "50", calc.EstimateBenefit(2, 1, 100).String())
}

func TestCatalogIsNotShared(t *testing.T) {
	cat := DefaultCatalog()
	calc, err := New(cat, DefaultParams())
	require.NoError(t, err)

	cat[model.CategoryHouseSinglePhase][0] = 1000
	got := calc.Catalog()
	assert.Equal(t, 3, got[model.CategoryHouseSinglePhase][0])

	got[model.CategoryHouseSinglePhase][0] = 999
	assert.Equal(t, []int{3, 5, 7, 10, 15, 20}, calc.SelectSystems(model.CategoryHouseSinglePhase, 1))
}

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())

	missing := DefaultCatalog()
	delete(missing, model.CategoryBusinessBulk)
	assert.Error(t, missing.Validate())

	unordered := DefaultCatalog()
	unordered[model.CategoryHouseThreePhase] = []int{5, 10, 7}
	assert.Error(t, unordered.Validate())

	nonPositive := DefaultCatalog()
	nonPositive[model.CategoryHouseThreePhase] = []int{0, 5}
	assert.Error(t, nonPositive.Validate())

	unknown := DefaultCatalog()
	unknown[model.Category("farm")] = []int{5}
	assert.ErrorIs(t, unknown.Validate(), model.ErrUnknownCategory)
}
