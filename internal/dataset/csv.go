package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/model"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// Header names as they appear in the Online Retail II export.
const (
	colInvoice     = "invoice"
	colStockCode   = "stockcode"
	colDescription = "description"
	colQuantity    = "quantity"
	colInvoiceDate = "invoicedate"
	colPrice       = "price"
	colCustomerID  = "customer id"
	colCountry     = "country"
)

var requiredColumns = []string{colQuantity, colInvoiceDate, colPrice}

// headerAliases maps the older Online Retail (I) spellings.
var headerAliases = map[string]string{
	"invoiceno":  colInvoice,
	"unitprice":  colPrice,
	"customerid": colCustomerID,
}

// DefaultDateLayouts are tried in order when no layouts are configured.
var DefaultDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// columns maps a header name to its index. Absent names have no entry.
type columns map[string]int

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func indexHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if alias, ok := headerAliases[key]; ok {
			key = alias
		}
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	for _, req := range requiredColumns {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, req)
		}
	}
	return cols, nil
}

// ReadTransactions reads all rows of a retail sales CSV. Columns are located
// by header name. layouts lists the accepted InvoiceDate formats; nil means
// DefaultDateLayouts.
func ReadTransactions(r io.Reader, layouts []string) ([]model.Transaction, error) {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sales CSV header: %w", err)
	}

	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sales CSV: %w", err)
		}

		txn, err := unmarshalTransaction(rec, cols, layouts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func unmarshalTransaction(rec []string, cols columns, layouts []string) (model.Transaction, error) {
	rawQty := cols.get(rec, colQuantity)
	qty, err := strconv.Atoi(rawQty)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing quantity %q: %w", rawQty, err)
	}

	rawPrice := cols.get(rec, colPrice)
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing price %q: %w", rawPrice, err)
	}

	rawDate := cols.get(rec, colInvoiceDate)
	date, err := ParseDate(rawDate, layouts)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Invoice:     cols.get(rec, colInvoice),
		StockCode:   cols.get(rec, colStockCode),
		Description: cols.get(rec, colDescription),
		Quantity:    qty,
		InvoiceDate: date,
		Price:       price,
		CustomerID:  cols.get(rec, colCustomerID),
		Country:     cols.get(rec, colCountry),
	}, nil
}

// ParseDate tries each layout in order and returns the first match in UTC.
func ParseDate(s string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: no layout matched", s)
}
