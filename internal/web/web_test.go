package web

import (
	"bytes"
	"testing"

	"solar-calculator/internal/calculator"
	"solar-calculator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v PageView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, IndexTemplate, v))
	return buf.String()
}

func TestPageWithRecommendations(t *testing.T) {
	calc := calculator.Default()
	in := calculator.Input{Consumption: 500, Set: true}
	rec := calc.Recommend(model.CategoryHouseSinglePhase, in.Value())

	v := NewPageView(rec, in, "500", "")
	assert.Len(t, v.Cards, 5)
	assert.Equal(t, "500", v.ConsumptionValue)
	assert.Equal(t, "/export.pdf?category=house-single-phase&consumption=500", v.ExportURL)

	html := render(t, v)
	assert.Contains(t, html, "5 kW System")
	assert.Contains(t, html, "Monthly Benefit: Rs. 1000")
	assert.Contains(t, html, "Electricity Bill: Zero")
	assert.Contains(t, html, "Export Results as PDF")
	assert.Contains(t, html, `<option value="house-single-phase" selected>`)
	assert.NotContains(t, html, model.NoSystemsMessage)
}

func TestPageNoSystems(t *testing.T) {
	calc := calculator.Default()
	in := calculator.Input{Consumption: 5000, Set: true}
	v := NewPageView(calc.Recommend(model.CategoryHouseSinglePhase, in.Value()), in, "5000", "")

	html := render(t, v)
	assert.Contains(t, html, "No recommended systems found for your input.")
	assert.NotContains(t, html, "Export Results as PDF")
}

func TestPageInvalidInputKeepsPrior(t *testing.T) {
	calc := calculator.Default()
	in := calculator.Input{Consumption: 200, Set: true}
	err := in.SetConsumption("-5")
	require.Error(t, err)

	v := NewPageView(calc.Recommend(model.CategoryBusinessBulk, in.Value()), in, "-5", err.Error())
	assert.Equal(t, "-5", v.ConsumptionValue)
	assert.Equal(t, "200", v.PrevValue)
	assert.False(t, v.IsHouse)

	html := render(t, v)
	assert.Contains(t, html, "Monthly consumption must be greater than 0.")
	assert.Contains(t, html, "40 kW System")
}

func TestPageUnset(t *testing.T) {
	v := NewPageView(calculator.Default().Recommend(model.DefaultCategory, 0), calculator.Input{}, "", "")
	assert.False(t, v.ShowResults)

	html := render(t, v)
	assert.NotContains(t, html, "Recommended Systems")
	assert.NotContains(t, html, model.NoSystemsMessage)
}
