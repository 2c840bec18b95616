package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope-dev/salescope/internal/analysis"
	"github.com/salescope-dev/salescope/internal/config"
)

func newTestApp(t *testing.T, charts bool) (*App, *bytes.Buffer, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Dataset.Path = "../../testdata/online_retail_sample.csv"
	cfg.Charts.Enabled = charts
	cfg.Charts.Dir = filepath.Join(t.TempDir(), "charts")

	var out bytes.Buffer
	a, err := Load(cfg, &out)
	require.NoError(t, err)
	return a, &out, cfg.Charts.Dir
}

func TestLoad_MissingDataset(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "missing.csv")
	_, err := Load(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYears(t *testing.T) {
	a, _, _ := newTestApp(t, false)
	assert.Equal(t, []int{2009, 2010}, a.Years())
	assert.NoError(t, a.CheckYear(2010))
	assert.ErrorIs(t, a.CheckYear(2011), analysis.ErrUnknownYear)
}

func TestMonthly_WithChart(t *testing.T) {
	a, out, dir := newTestApp(t, true)
	require.NoError(t, a.Monthly())

	assert.Contains(t, out.String(), "Monthly Sales Trend")
	assert.Contains(t, out.String(), "213.00")
	assert.Contains(t, out.String(), "Chart saved to "+filepath.Join(dir, "monthly_sales.png"))
	assert.FileExists(t, filepath.Join(dir, "monthly_sales.png"))
}

func TestYearly_NoCharts(t *testing.T) {
	a, out, dir := newTestApp(t, false)
	require.NoError(t, a.Yearly())

	assert.Contains(t, out.String(), "223.00")
	assert.NotContains(t, out.String(), "Chart saved")
	assert.NoDirExists(t, dir)
}

func TestProducts(t *testing.T) {
	a, out, _ := newTestApp(t, true)
	require.NoError(t, a.Products())

	assert.Contains(t, out.String(), "WHITE HANGING HEART T-LIGHT HOLDER contributes 26% of Top 6 product revenue")
	assert.NotContains(t, out.String(), "POSTAGE")
}

func TestSignal(t *testing.T) {
	a, out, dir := newTestApp(t, true)
	require.NoError(t, a.Signal(2010, true))

	// Too few lines for a 200-line window: no events, nothing to chart.
	assert.Contains(t, out.String(), "0 number of events")
	assert.NoFileExists(t, filepath.Join(dir, "demand_acceleration_2010.png"))
}

func TestSignal_UnknownYear(t *testing.T) {
	a, _, _ := newTestApp(t, false)
	assert.ErrorIs(t, a.Signal(2012, false), analysis.ErrUnknownYear)
}

func TestGrowth(t *testing.T) {
	a, out, dir := newTestApp(t, true)
	require.NoError(t, a.Growth(2010))

	assert.Contains(t, out.String(), "month 2 = -85 %")
	assert.Contains(t, out.String(), "month 3 = 607 %")
	assert.FileExists(t, filepath.Join(dir, "monthly_growth_2010.png"))
}

func TestGrowth_UnknownYear(t *testing.T) {
	a, _, _ := newTestApp(t, false)
	assert.ErrorIs(t, a.Growth(2012), analysis.ErrUnknownYear)
}

func TestCountries(t *testing.T) {
	a, out, dir := newTestApp(t, true)
	require.NoError(t, a.Countries())

	assert.Contains(t, out.String(), "United Kingdom")
	assert.Contains(t, out.String(), "332.50")
	assert.FileExists(t, filepath.Join(dir, "country_sales.png"))
}

func TestSummary(t *testing.T) {
	a, out, _ := newTestApp(t, false)
	require.NoError(t, a.Summary())

	assert.Contains(t, out.String(), "Dataset Summary")
	assert.Contains(t, out.String(), "436.00")
}
