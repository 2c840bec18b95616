package analysis

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// ProductTotal is one row of a product ranking.
type ProductTotal struct {
	Description string
	Value       decimal.Decimal // revenue or units, depending on the ranking
}

// ProductRanking holds the revenue and volume leaderboards.
type ProductRanking struct {
	ByRevenue []ProductTotal
	ByVolume  []ProductTotal
	// TopShare is the top product's share of the listed revenue, as a
	// whole percent rounded half to even.
	TopShare int64
}

// Top returns the highest-revenue product, if any.
func (r ProductRanking) Top() (ProductTotal, bool) {
	if len(r.ByRevenue) == 0 {
		return ProductTotal{}, false
	}
	return r.ByRevenue[0], true
}

// ProductOptions configures TopProducts.
type ProductOptions struct {
	TopN int
	// Excluded holds lower-case substrings marking non-product lines
	// (postage, fees, manual adjustments).
	Excluded []string
}

// TopProducts ranks products by revenue and by units sold. Non-product
// lines and lines without a customer are ignored, as are blank descriptions.
func TopProducts(txns []model.Transaction, opts ProductOptions) ProductRanking {
	excluded := make([]string, 0, len(opts.Excluded))
	for _, w := range opts.Excluded {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			excluded = append(excluded, w)
		}
	}

	key := func(t model.Transaction) (string, bool) {
		if t.Description == "" || !t.HasCustomer() {
			return "", false
		}
		desc := strings.ToLower(t.Description)
		for _, w := range excluded {
			if strings.Contains(desc, w) {
				return "", false
			}
		}
		return t.Description, true
	}

	revenue := rank(sumBy(txns, key, sales), opts.TopN)
	volume := rank(sumBy(txns, key, quantity), opts.TopN)

	ranking := ProductRanking{
		ByRevenue: toProductTotals(revenue),
		ByVolume:  toProductTotals(volume),
	}

	listed := decimal.Zero
	for _, r := range revenue {
		listed = listed.Add(r.Value)
	}
	if len(revenue) > 0 && listed.IsPositive() {
		ranking.TopShare = revenue[0].Value.Div(listed).Mul(hundred).RoundBank(0).IntPart()
	}

	return ranking
}

func toProductTotals(rs []ranked) []ProductTotal {
	out := make([]ProductTotal, len(rs))
	for i, r := range rs {
		out[i] = ProductTotal{Description: r.Key, Value: r.Value}
	}
	return out
}
