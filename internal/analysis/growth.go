package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// GrowthRate is the month-over-month change into Month.
type GrowthRate struct {
	Month    int
	Previous decimal.Decimal
	Current  decimal.Decimal
	Percent  int64 // rounded half to even; 0 when Previous is zero
}

// MonthlyGrowth computes the month-over-month sales growth within year.
// Months without sales are skipped, so a rate compares consecutive months
// that have data.
func MonthlyGrowth(txns []model.Transaction, year int) ([]GrowthRate, error) {
	if err := CheckYear(txns, year); err != nil {
		return nil, err
	}

	months := monthTotals(FilterYear(txns, year))

	var rates []GrowthRate
	for i := 1; i < len(months); i++ {
		pre, cur := months[i-1].Sales, months[i].Sales
		rate := GrowthRate{Month: months[i].Month, Previous: pre, Current: cur}
		if !pre.IsZero() {
			rate.Percent = cur.Sub(pre).Div(pre).Mul(hundred).RoundBank(0).IntPart()
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
