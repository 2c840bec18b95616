package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope-dev/salescope/internal/config"
)

const sample = "../../testdata/online_retail_sample.csv"

// run executes the root command in-process with the given stdin.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// runView runs a subcommand against the sample dataset with charts off.
func runView(t *testing.T, args ...string) (string, error) {
	t.Helper()
	base := []string{"--data", sample, "--no-charts", "--log-level", "error"}
	return run(t, "", append(base, args...)...)
}

func TestMonthly(t *testing.T) {
	out, err := runView(t, "monthly")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Sales Trend")
	assert.Contains(t, out, "213.00")
	assert.NotContains(t, out, "Chart saved")
}

func TestYearly(t *testing.T) {
	out, err := runView(t, "yearly")
	require.NoError(t, err)
	assert.Contains(t, out, "2009")
	assert.Contains(t, out, "223.00")
}

func TestProducts(t *testing.T) {
	out, err := runView(t, "products")
	require.NoError(t, err)
	assert.Contains(t, out, "revenue products are")
	assert.Contains(t, out, "WHITE HANGING HEART")
	assert.Contains(t, out, "contributes 26%")
}

func TestCountries(t *testing.T) {
	out, err := runView(t, "countries")
	require.NoError(t, err)
	assert.Contains(t, out, "Country Sales")
	assert.Contains(t, out, "332.50")
}

func TestSummary(t *testing.T) {
	out, err := runView(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset Summary")
	assert.Contains(t, out, "436.00")
}

func TestGrowth(t *testing.T) {
	out, err := runView(t, "growth", "--year", "2010")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Growth Rate-2010")
	assert.Contains(t, out, "month 2 = -85 %")
	assert.Contains(t, out, "month 3 = 607 %")
}

func TestGrowth_UnknownYear(t *testing.T) {
	_, err := runView(t, "growth", "--year", "2011")
	require.Error(t, err)
}

func TestGrowth_RequiresYear(t *testing.T) {
	_, err := runView(t, "growth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestSignal(t *testing.T) {
	out, err := runView(t, "signal", "--year", "2010")
	require.NoError(t, err)
	assert.Contains(t, out, "Demand Acceleration Events:")
	assert.Contains(t, out, "0 number of events")
}

func TestCharts_WrittenToOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "png")
	out, err := run(t, "", "--data", sample, "--out", dir, "--log-level", "error", "yearly")
	require.NoError(t, err)
	assert.Contains(t, out, "Chart saved to")
	assert.FileExists(t, filepath.Join(dir, "yearly_sales.png"))
}

func TestMenu_Default(t *testing.T) {
	out, err := run(t, "2\n0\n", "--data", sample, "--no-charts", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, " 1 for Monthly Sales Trend")
	assert.Contains(t, out, "Yearly Sales Trend")
	assert.Contains(t, out, "223.00")
}

func TestMenu_Subcommand(t *testing.T) {
	out, err := run(t, "abc\n", "--data", sample, "--no-charts", "--log-level", "error", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Please enter a valid number.")
}

func TestMissingDataset(t *testing.T) {
	_, err := run(t, "", "--data", filepath.Join(t.TempDir(), "none.csv"), "--log-level", "error", "monthly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading dataset")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dataset.Path = sample
	cfg.Analysis.TopN = 1
	cfg.Charts.Enabled = false
	cfg.Log.Level = "error"
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, config.Save(path, cfg))

	out, err := run(t, "", "--config", path, "countries")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 1 Country Sales")
	assert.NotContains(t, out, "Germany")
}

func TestConfigFile_ExplicitMissing(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "monthly")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runView(t, "--log-level", "loud", "monthly")
	require.Error(t, err)
}
