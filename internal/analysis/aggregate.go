// Package analysis computes the grouped aggregates behind each sales view.
// Every function is a single pass over cleaned transactions; money is summed
// exactly with decimal and only converted to float64 for presentation.
package analysis

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// ErrUnknownYear is returned when a year-scoped view is asked for a year
// with no transactions.
var ErrUnknownYear = errors.New("year not present in dataset")

var hundred = decimal.NewFromInt(100)

// sumBy groups txns by key and sums val per group. Rows for which key
// reports false are skipped.
func sumBy[K comparable](txns []model.Transaction, key func(model.Transaction) (K, bool), val func(model.Transaction) decimal.Decimal) map[K]decimal.Decimal {
	sums := make(map[K]decimal.Decimal)
	for _, t := range txns {
		k, ok := key(t)
		if !ok {
			continue
		}
		sums[k] = sums[k].Add(val(t))
	}
	return sums
}

func sales(t model.Transaction) decimal.Decimal { return t.Sales }

func quantity(t model.Transaction) decimal.Decimal { return decimal.NewFromInt(int64(t.Quantity)) }

// ranked is one group of a descending ranking.
type ranked struct {
	Key   string
	Value decimal.Decimal
}

// rank sorts groups by value descending, breaking ties by key ascending,
// and keeps at most n (n <= 0 keeps all).
func rank(sums map[string]decimal.Decimal, n int) []ranked {
	out := make([]ranked, 0, len(sums))
	for k, v := range sums {
		out = append(out, ranked{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b ranked) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Years returns the distinct years present, ascending.
func Years(txns []model.Transaction) []int {
	seen := make(map[int]bool)
	var years []int
	for _, t := range txns {
		if !seen[t.Year] {
			seen[t.Year] = true
			years = append(years, t.Year)
		}
	}
	slices.Sort(years)
	return years
}

// FilterYear returns the transactions dated in year, in input order.
func FilterYear(txns []model.Transaction, year int) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Year == year {
			out = append(out, t)
		}
	}
	return out
}

// CheckYear returns ErrUnknownYear if year has no transactions.
func CheckYear(txns []model.Transaction, year int) error {
	if slices.Contains(Years(txns), year) {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownYear, year)
}
