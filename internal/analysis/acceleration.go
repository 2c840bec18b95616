package analysis

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// Moving-average windows, in transaction lines.
const (
	FastWindow = 50
	SlowWindow = 200
)

// MAPoint is one line of the year with both moving averages defined.
type MAPoint struct {
	Date   time.Time
	Fast   float64
	Slow   float64
	Signal bool
}

// AccelerationEvent marks the line where the fast average crossed above
// the slow one.
type AccelerationEvent struct {
	Date  time.Time
	MA50  float64
	MA200 float64
}

// Acceleration is the result of DemandAcceleration.
type Acceleration struct {
	Year   int
	Series []MAPoint
	Events []AccelerationEvent
}

// DemandAcceleration orders the year's lines by invoice date and flags
// every line where the 50-line mean of sales moves above the 200-line mean
// after having been at or below it on the previous line.
func DemandAcceleration(txns []model.Transaction, year int) (Acceleration, error) {
	if err := CheckYear(txns, year); err != nil {
		return Acceleration{}, err
	}

	lines := FilterYear(txns, year)
	slices.SortStableFunc(lines, func(a, b model.Transaction) int {
		return a.InvoiceDate.Compare(b.InvoiceDate)
	})

	dates := make([]time.Time, len(lines))
	values := make([]decimal.Decimal, len(lines))
	for i, t := range lines {
		dates[i] = t.InvoiceDate
		values[i] = t.Sales
	}

	series := crossovers(dates, values, FastWindow, SlowWindow)

	acc := Acceleration{Year: year, Series: series}
	for _, p := range series {
		if p.Signal {
			acc.Events = append(acc.Events, AccelerationEvent{Date: p.Date, MA50: p.Fast, MA200: p.Slow})
		}
	}
	return acc, nil
}

// crossovers computes trailing means over fast and slow windows (fast <
// slow) and returns one point per position where both are defined. Window
// sums are kept exactly, so "fast > slow" is decided without rounding.
func crossovers(dates []time.Time, values []decimal.Decimal, fast, slow int) []MAPoint {
	if len(values) < slow {
		return nil
	}

	fastN := decimal.NewFromInt(int64(fast))
	slowN := decimal.NewFromInt(int64(slow))

	var fastSum, slowSum decimal.Decimal
	points := make([]MAPoint, 0, len(values)-slow+1)
	prevAbove := false

	for i, v := range values {
		fastSum = fastSum.Add(v)
		slowSum = slowSum.Add(v)
		if i >= fast {
			fastSum = fastSum.Sub(values[i-fast])
		}
		if i >= slow {
			slowSum = slowSum.Sub(values[i-slow])
		}
		if i < slow-1 {
			continue
		}

		// fastSum/fast > slowSum/slow, cross-multiplied.
		above := fastSum.Mul(slowN).GreaterThan(slowSum.Mul(fastN))
		first := len(points) == 0

		points = append(points, MAPoint{
			Date:   dates[i],
			Fast:   fastSum.Div(fastN).InexactFloat64(),
			Slow:   slowSum.Div(slowN).InexactFloat64(),
			Signal: above && !first && !prevAbove,
		})
		prevAbove = above
	}
	return points
}
