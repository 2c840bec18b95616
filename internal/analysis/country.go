package analysis

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// CountryTotal is one row of the country ranking.
type CountryTotal struct {
	Country string
	Sales   decimal.Decimal
	Log10   float64 // log10(Sales + 1)
}

// TopCountries ranks countries by sales, descending, keeping n.
func TopCountries(txns []model.Transaction, n int) []CountryTotal {
	sums := sumBy(txns, func(t model.Transaction) (string, bool) { return t.Country, t.Country != "" }, sales)

	ranking := rank(sums, n)
	out := make([]CountryTotal, len(ranking))
	for i, r := range ranking {
		out[i] = CountryTotal{
			Country: r.Key,
			Sales:   r.Value,
			Log10:   math.Log10(r.Value.InexactFloat64() + 1),
		}
	}
	return out
}
