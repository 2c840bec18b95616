package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope-dev/salescope/internal/analysis"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", path)
}

func TestMonthly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := NewRenderer(dir)

	path, err := r.Monthly([]analysis.MonthTotal{
		{Month: 1, Sales: decimal.NewFromInt(100)},
		{Month: 2, Sales: decimal.NewFromInt(80)},
		{Month: 12, Sales: decimal.NewFromInt(250)},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "monthly_sales.png"), path)
	assertPNG(t, path)
}

func TestYearly(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Yearly([]analysis.YearTotal{
		{Year: 2009, Sales: decimal.NewFromInt(213)},
		{Year: 2010, Sales: decimal.NewFromInt(223)},
	})
	require.NoError(t, err)
	assert.Equal(t, "yearly_sales.png", filepath.Base(path))
	assertPNG(t, path)
}

func TestGrowth(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Growth(2010, []analysis.GrowthRate{{Month: 2, Percent: -85}, {Month: 3, Percent: 607}})
	require.NoError(t, err)
	assert.Equal(t, "monthly_growth_2010.png", filepath.Base(path))
	assertPNG(t, path)
}

func TestCountries(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Countries([]analysis.CountryTotal{
		{Country: "United Kingdom", Log10: 2.52},
		{Country: "Germany", Log10: 1.79},
	})
	require.NoError(t, err)
	assert.Equal(t, "country_sales.png", filepath.Base(path))
	assertPNG(t, path)
}

func TestAcceleration(t *testing.T) {
	base := time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)
	acc := analysis.Acceleration{Year: 2011}
	for i := 0; i < 30; i++ {
		acc.Series = append(acc.Series, analysis.MAPoint{
			Date: base.AddDate(0, 0, i*5),
			Fast: 10 + float64(i%7),
			Slow: 12,
		})
	}
	acc.Events = []analysis.AccelerationEvent{{Date: base.AddDate(0, 0, 25), MA50: 13, MA200: 12}}

	r := NewRenderer(t.TempDir())
	path, err := r.Acceleration(acc)
	require.NoError(t, err)
	assert.Equal(t, "demand_acceleration_2011.png", filepath.Base(path))
	assertPNG(t, path)
}

func TestNoData(t *testing.T) {
	r := NewRenderer(t.TempDir())

	_, err := r.Monthly(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Yearly(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Growth(2010, nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Countries(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Acceleration(analysis.Acceleration{Year: 2010})
	assert.ErrorIs(t, err, ErrNoData)

	entries, err := os.ReadDir(r.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
