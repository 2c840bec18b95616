package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/salescope-dev/salescope/internal/analysis"
	"github.com/salescope-dev/salescope/internal/chart"
	"github.com/salescope-dev/salescope/internal/config"
	"github.com/salescope-dev/salescope/internal/dataset"
	"github.com/salescope-dev/salescope/internal/report"
)

// App holds the cleaned dataset and runs each view against it, printing to
// Out and optionally rendering charts.
type App struct {
	cfg    *config.Config
	data   *dataset.Dataset
	charts *chart.Renderer // nil when charts are disabled
	out    io.Writer
}

// New creates an App over an already loaded dataset.
func New(cfg *config.Config, data *dataset.Dataset, out io.Writer) *App {
	a := &App{cfg: cfg, data: data, out: out}
	if cfg.Charts.Enabled {
		a.charts = chart.NewRenderer(cfg.Charts.Dir)
	}
	return a
}

// Load reads the dataset named by cfg and returns an App over it.
func Load(cfg *config.Config, out io.Writer) (*App, error) {
	data, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.DateLayouts)
	if err != nil {
		return nil, err
	}
	return New(cfg, data, out), nil
}

// Years returns the years present in the dataset.
func (a *App) Years() []int {
	return analysis.Years(a.data.Transactions)
}

// CheckYear reports whether year-scoped views can run for year.
func (a *App) CheckYear(year int) error {
	return analysis.CheckYear(a.data.Transactions, year)
}

// Monthly prints and charts the monthly sales trend.
func (a *App) Monthly() error {
	months := analysis.MonthlySales(a.data.Transactions)
	report.Monthly(a.out, months)
	return a.render(func(r *chart.Renderer) (string, error) { return r.Monthly(months) })
}

// Yearly prints and charts the yearly sales trend.
func (a *App) Yearly() error {
	years := analysis.YearlySales(a.data.Transactions)
	report.Yearly(a.out, years)
	return a.render(func(r *chart.Renderer) (string, error) { return r.Yearly(years) })
}

// Products prints the top product rankings.
func (a *App) Products() error {
	ranking := analysis.TopProducts(a.data.Transactions, analysis.ProductOptions{
		TopN:     a.cfg.Analysis.TopN,
		Excluded: a.cfg.Analysis.ExcludedDescriptions,
	})
	report.Products(a.out, ranking)
	return nil
}

// Signal prints the demand acceleration events for year. withChart also
// renders the moving averages.
func (a *App) Signal(year int, withChart bool) error {
	acc, err := analysis.DemandAcceleration(a.data.Transactions, year)
	if err != nil {
		return err
	}
	report.Acceleration(a.out, acc)
	if !withChart {
		return nil
	}
	return a.render(func(r *chart.Renderer) (string, error) { return r.Acceleration(acc) })
}

// Growth prints and charts month-over-month growth for year.
func (a *App) Growth(year int) error {
	rates, err := analysis.MonthlyGrowth(a.data.Transactions, year)
	if err != nil {
		return err
	}
	report.Growth(a.out, year, rates)
	return a.render(func(r *chart.Renderer) (string, error) { return r.Growth(year, rates) })
}

// Countries prints and charts the top countries by sales.
func (a *App) Countries() error {
	countries := analysis.TopCountries(a.data.Transactions, a.cfg.Analysis.TopN)
	report.Countries(a.out, countries)
	return a.render(func(r *chart.Renderer) (string, error) { return r.Countries(countries) })
}

// Summary prints the dataset overview.
func (a *App) Summary() error {
	report.Summary(a.out, analysis.Summarize(a.data.Transactions), a.data.Report)
	return nil
}

func (a *App) render(draw func(*chart.Renderer) (string, error)) error {
	if a.charts == nil {
		return nil
	}
	path, err := draw(a.charts)
	if errors.Is(err, chart.ErrNoData) {
		log.Debug().Msg("Nothing to chart")
		return nil
	}
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	fmt.Fprintf(a.out, "Chart saved to %s\n", path)
	log.Info().Str("path", path).Msg("Chart written")
	return nil
}
