package analysis

import (
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/salescope-dev/salescope/internal/model"
)

// Summary is a one-screen overview of the cleaned dataset.
type Summary struct {
	Lines      int
	Invoices   int
	Customers  int
	Products   int
	Countries  int
	From       time.Time
	To         time.Time
	TotalSales decimal.Decimal
	MeanLine   float64 // mean sales per line
	StdDevLine float64 // sample standard deviation of sales per line
	Years      []int
}

// Summarize computes a Summary over txns.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{Lines: len(txns), Years: Years(txns)}
	if len(txns) == 0 {
		return s
	}

	invoices := make(map[string]struct{})
	customers := make(map[string]struct{})
	products := make(map[string]struct{})
	countries := make(map[string]struct{})
	values := make([]float64, len(txns))

	s.From, s.To = txns[0].InvoiceDate, txns[0].InvoiceDate
	for i, t := range txns {
		s.TotalSales = s.TotalSales.Add(t.Sales)
		values[i] = t.Sales.InexactFloat64()

		if t.InvoiceDate.Before(s.From) {
			s.From = t.InvoiceDate
		}
		if t.InvoiceDate.After(s.To) {
			s.To = t.InvoiceDate
		}
		if t.Invoice != "" {
			invoices[t.Invoice] = struct{}{}
		}
		if t.HasCustomer() {
			customers[t.CustomerID] = struct{}{}
		}
		if t.StockCode != "" {
			products[t.StockCode] = struct{}{}
		}
		if t.Country != "" {
			countries[t.Country] = struct{}{}
		}
	}

	s.Invoices = len(invoices)
	s.Customers = len(customers)
	s.Products = len(products)
	s.Countries = len(countries)
	if len(values) > 1 {
		s.MeanLine, s.StdDevLine = stat.MeanStdDev(values, nil)
	} else {
		s.MeanLine = values[0]
	}
	return s
}
