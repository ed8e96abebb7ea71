package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solar-calculator/internal/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "house-single-phase")
	assert.Contains(t, out, "40, 100, 200, 300, 500, 1000")
	assert.Contains(t, out, "units per kW: 120")
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "recommend", "--consumption", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Property Type: House (Single Phase Electricity Supply)")
	assert.Contains(t, out, "Rs. 1000")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "20 "))

	out, err = run(t, "recommend", "--consumption", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "No recommended systems found for your input.")

	_, err = run(t, "recommend", "--consumption", "-5")
	assert.EqualError(t, err, "Monthly consumption must be greater than 0.")

	out, err = run(t, "recommend", "--consumption", "")
	assert.EqualError(t, err, "Monthly consumption must be greater than 0.")
	assert.NotContains(t, out, "Property Type:")

	_, err = run(t, "report", "--consumption", "  ", "--out", filepath.Join(t.TempDir(), "blank.pdf"))
	assert.ErrorIs(t, err, calculator.ErrInvalidConsumption)

	_, err = run(t, "recommend", "--consumption", "5", "--category", "igloo")
	assert.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "out", "results.pdf")

	out, err := run(t, "report", "--consumption", "500", "--category", "business-bulk", "--out", pdfPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 6 systems")
	raw, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))

	csvPath := filepath.Join(dir, "results.csv")
	_, err = run(t, "report", "--consumption", "500", "--format", "csv", "--out", csvPath)
	require.NoError(t, err)
	raw, err = os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "size_kw,"))

	_, err = run(t, "report", "--consumption", "5000", "--out", filepath.Join(dir, "none.pdf"))
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("units_per_kw: 100\ncurrency: USD\n"), 0o644))

	out, err := run(t, "--config", p, "recommend", "--consumption", "250")
	require.NoError(t, err)
	// 3 kW now yields 300 units; (300-250)*10 = 500.
	assert.Contains(t, out, "USD 500")
}
