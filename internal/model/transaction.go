package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one invoice line from the retail sales CSV.
type Transaction struct {
	Invoice     string
	StockCode   string
	Description string
	Quantity    int
	InvoiceDate time.Time
	Price       decimal.Decimal // unit price
	CustomerID  string          // empty for guest purchases
	Country     string

	// Derived by cleaning.
	Sales decimal.Decimal // Quantity * Price
	Year  int
	Month int // 1..12
}

// HasCustomer reports whether the line is attributed to a known customer.
func (t Transaction) HasCustomer() bool {
	return t.CustomerID != ""
}

// LineTotal returns Quantity * Price.
func (t Transaction) LineTotal() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
