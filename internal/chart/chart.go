// Package chart renders analysis results to PNG files with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/salescope-dev/salescope/internal/analysis"
	"github.com/salescope-dev/salescope/internal/period"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

var (
	black = color.RGBA{A: 255}
	blue  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	amber = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	red   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Renderer writes charts into Dir.
type Renderer struct {
	Dir string
}

// NewRenderer creates a Renderer writing into dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{Dir: dir}
}

func (r *Renderer) save(p *plot.Plot, width, height vg.Length, name string) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating chart dir: %w", err)
	}
	path := filepath.Join(r.Dir, name)
	if err := p.Save(width, height, path); err != nil {
		return "", fmt.Errorf("saving chart %s: %w", name, err)
	}
	log.Debug().Str("path", path).Msg("Chart written")
	return path, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func monthTicks(months []int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(months))
	for i, m := range months {
		ticks[i] = plot.Tick{Value: float64(m), Label: period.MonthLabel(m)}
	}
	return ticks
}

// Monthly renders the monthly sales trend as a line with markers.
func (r *Renderer) Monthly(months []analysis.MonthTotal) (string, error) {
	if len(months) == 0 {
		return "", ErrNoData
	}

	p := newPlot("Monthly Sales Trend (UK Retail)", "Month", "Total Sales")

	pts := make(plotter.XYs, len(months))
	for i, m := range months {
		pts[i].X = float64(m.Month)
		pts[i].Y = m.Sales.InexactFloat64()
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", fmt.Errorf("building monthly line: %w", err)
	}
	line.Color = blue
	line.Width = vg.Points(1.5)
	points.Shape = draw.CircleGlyph{}
	points.Color = blue
	p.Add(line, points)

	all := make([]int, 12)
	for i := range all {
		all[i] = i + 1
	}
	p.X.Tick.Marker = monthTicks(all)
	p.X.Min, p.X.Max = 0.5, 12.5

	return r.save(p, 10*vg.Inch, 5*vg.Inch, "monthly_sales.png")
}

// Yearly renders total sales per year as bars.
func (r *Renderer) Yearly(years []analysis.YearTotal) (string, error) {
	if len(years) == 0 {
		return "", ErrNoData
	}

	p := newPlot("Yearly Sales Trend (UK Retail)", "Year", "Total Sales")

	values := make(plotter.Values, len(years))
	labels := make([]string, len(years))
	for i, y := range years {
		values[i] = y.Sales.InexactFloat64()
		labels[i] = strconv.Itoa(y.Year)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return "", fmt.Errorf("building yearly bars: %w", err)
	}
	bars.Color = blue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return r.save(p, 8*vg.Inch, 5*vg.Inch, "yearly_sales.png")
}

// Growth renders month-over-month growth for one year.
func (r *Renderer) Growth(year int, rates []analysis.GrowthRate) (string, error) {
	if len(rates) == 0 {
		return "", ErrNoData
	}

	p := newPlot(fmt.Sprintf("Monthly Growth Rate-%d", year), fmt.Sprintf("Month of year-%d", year), "Growth Rate %")

	pts := make(plotter.XYs, len(rates))
	months := make([]int, len(rates))
	for i, g := range rates {
		pts[i].X = float64(g.Month)
		pts[i].Y = float64(g.Percent)
		months[i] = g.Month
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("building growth line: %w", err)
	}
	line.Color = black
	p.Add(line)
	p.X.Tick.Marker = monthTicks(months)

	return r.save(p, 10*vg.Inch, 5*vg.Inch, fmt.Sprintf("monthly_growth_%d.png", year))
}

// Countries renders the log10-scaled country ranking as bars.
func (r *Renderer) Countries(countries []analysis.CountryTotal) (string, error) {
	if len(countries) == 0 {
		return "", ErrNoData
	}

	p := newPlot(fmt.Sprintf("Top %d Country Sales", len(countries)), "Country", "Sales (log10)")

	values := make(plotter.Values, len(countries))
	labels := make([]string, len(countries))
	for i, c := range countries {
		values[i] = c.Log10
		labels[i] = c.Country
	}
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("building country bars: %w", err)
	}
	bars.Color = black
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return r.save(p, 10*vg.Inch, 6*vg.Inch, "country_sales.png")
}

// Acceleration renders both moving averages over time and marks the
// crossover events.
func (r *Renderer) Acceleration(acc analysis.Acceleration) (string, error) {
	if len(acc.Series) == 0 {
		return "", ErrNoData
	}

	p := newPlot(fmt.Sprintf("Demand_Acceleration_Signal-%d", acc.Year), "", "")
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.Legend.Top = true

	fast := make(plotter.XYs, len(acc.Series))
	slow := make(plotter.XYs, len(acc.Series))
	for i, pt := range acc.Series {
		x := float64(pt.Date.Unix())
		fast[i] = plotter.XY{X: x, Y: pt.Fast}
		slow[i] = plotter.XY{X: x, Y: pt.Slow}
	}

	fastLine, err := plotter.NewLine(fast)
	if err != nil {
		return "", fmt.Errorf("building MA%d line: %w", analysis.FastWindow, err)
	}
	fastLine.Color = blue
	slowLine, err := plotter.NewLine(slow)
	if err != nil {
		return "", fmt.Errorf("building MA%d line: %w", analysis.SlowWindow, err)
	}
	slowLine.Color = amber
	p.Add(fastLine, slowLine)
	p.Legend.Add(fmt.Sprintf("%d-Line MA", analysis.FastWindow), fastLine)
	p.Legend.Add(fmt.Sprintf("%d-Line MA", analysis.SlowWindow), slowLine)

	if len(acc.Events) > 0 {
		events := make(plotter.XYs, len(acc.Events))
		for i, e := range acc.Events {
			events[i] = plotter.XY{X: float64(e.Date.Unix()), Y: e.MA50}
		}
		scatter, err := plotter.NewScatter(events)
		if err != nil {
			return "", fmt.Errorf("building event points: %w", err)
		}
		scatter.Color = red
		scatter.Shape = draw.CircleGlyph{}
		scatter.Radius = vg.Points(4)
		p.Add(scatter)
		p.Legend.Add("Demand Acceleration Signal", scatter)
	}

	return r.save(p, 12*vg.Inch, 5*vg.Inch, fmt.Sprintf("demand_acceleration_%d.png", acc.Year))
}
