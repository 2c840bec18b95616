package analysis

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// MonthTotal is the sales sum for one calendar month.
type MonthTotal struct {
	Month int // 1..12
	Sales decimal.Decimal
}

// YearTotal is the sales sum for one year.
type YearTotal struct {
	Year  int
	Sales decimal.Decimal
}

// MonthlySales sums sales per calendar month across all years, so December
// 2009 and December 2010 land in the same bucket. Only months with data are
// returned, ascending.
func MonthlySales(txns []model.Transaction) []MonthTotal {
	return monthTotals(txns)
}

func monthTotals(txns []model.Transaction) []MonthTotal {
	sums := sumBy(txns, func(t model.Transaction) (int, bool) { return t.Month, true }, sales)

	out := make([]MonthTotal, 0, len(sums))
	for m, s := range sums {
		out = append(out, MonthTotal{Month: m, Sales: s})
	}
	slices.SortFunc(out, func(a, b MonthTotal) int { return a.Month - b.Month })
	return out
}

// YearlySales sums sales per year, ascending.
func YearlySales(txns []model.Transaction) []YearTotal {
	sums := sumBy(txns, func(t model.Transaction) (int, bool) { return t.Year, true }, sales)

	out := make([]YearTotal, 0, len(sums))
	for y, s := range sums {
		out = append(out, YearTotal{Year: y, Sales: s})
	}
	slices.SortFunc(out, func(a, b YearTotal) int { return a.Year - b.Year })
	return out
}
