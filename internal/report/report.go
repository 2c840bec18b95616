// Package report renders analysis results as console tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/salescope-dev/salescope/internal/analysis"
	"github.com/salescope-dev/salescope/internal/dataset"
	"github.com/salescope-dev/salescope/internal/period"
)

const (
	dateTimeFormat = "2006-01-02 15:04:05"
	dateFormat     = "2006-01-02"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)

	align := make([]int, len(header))
	for i := range align {
		align[i] = tablewriter.ALIGN_RIGHT
	}
	align[0] = tablewriter.ALIGN_LEFT
	t.SetColumnAlignment(align)
	return t
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Monthly prints sales per calendar month.
func Monthly(w io.Writer, months []analysis.MonthTotal) {
	fmt.Fprintln(w, "Monthly Sales Trend")
	t := newTable(w, "Month", "Sales")
	for _, m := range months {
		t.Append([]string{period.MonthLabel(m.Month), money(m.Sales)})
	}
	t.Render()
}

// Yearly prints sales per year.
func Yearly(w io.Writer, years []analysis.YearTotal) {
	fmt.Fprintln(w, "Yearly Sales Trend")
	t := newTable(w, "Year", "Sales")
	for _, y := range years {
		t.Append([]string{strconv.Itoa(y.Year), money(y.Sales)})
	}
	t.Render()
}

// Products prints the revenue and volume leaderboards and the top product's
// share of listed revenue.
func Products(w io.Writer, r analysis.ProductRanking) {
	fmt.Fprintf(w, "Top %d revenue products are\n\n", len(r.ByRevenue))
	t := newTable(w, "Description", "Sales")
	for _, p := range r.ByRevenue {
		t.Append([]string{p.Description, money(p.Value)})
	}
	t.Render()

	fmt.Fprintf(w, "\n\nTop %d no of product sold are\n", len(r.ByVolume))
	t = newTable(w, "Description", "Quantity")
	for _, p := range r.ByVolume {
		t.Append([]string{p.Description, p.Value.String()})
	}
	t.Render()

	top, ok := r.Top()
	if !ok {
		fmt.Fprintln(w, "\nNo product sales to rank")
		return
	}
	fmt.Fprintf(w, "\n%s contributes %d%% of Top %d product revenue\n", top.Description, r.TopShare, len(r.ByRevenue))
}

// Acceleration prints the demand acceleration events.
func Acceleration(w io.Writer, acc analysis.Acceleration) {
	fmt.Fprintln(w, "\nDemand Acceleration Events:")
	if len(acc.Events) == 0 {
		fmt.Fprintln(w, "(none)")
	} else {
		t := newTable(w, "InvoiceDate", "MA50", "MA200")
		for _, e := range acc.Events {
			t.Append([]string{
				e.Date.Format(dateTimeFormat),
				strconv.FormatFloat(e.MA50, 'f', 6, 64),
				strconv.FormatFloat(e.MA200, 'f', 6, 64),
			})
		}
		t.Render()
	}
	fmt.Fprintln(w, len(acc.Events), "number of events")
}

// Growth prints one "month M = G %" line per rate.
func Growth(w io.Writer, year int, rates []analysis.GrowthRate) {
	fmt.Fprintf(w, "Monthly Growth Rate-%d\n", year)
	if len(rates) == 0 {
		fmt.Fprintln(w, "(fewer than two months with sales)")
		return
	}
	for _, r := range rates {
		fmt.Fprintln(w, "month", r.Month, "=", r.Percent, "%")
	}
}

// Countries prints the country ranking with raw and log-scaled sales.
func Countries(w io.Writer, countries []analysis.CountryTotal) {
	fmt.Fprintf(w, "Top %d Country Sales\n", len(countries))
	t := newTable(w, "Country", "Sales", "Sales (log10)")
	for _, c := range countries {
		t.Append([]string{c.Country, money(c.Sales), strconv.FormatFloat(c.Log10, 'f', 6, 64)})
	}
	t.Render()
}

// Summary prints the dataset overview and cleaning tallies.
func Summary(w io.Writer, s analysis.Summary, cr dataset.CleanReport) {
	fmt.Fprintln(w, "Dataset Summary")
	t := newTable(w, "Metric", "Value")
	t.AppendBulk([][]string{
		{"Rows read", strconv.Itoa(cr.Read)},
		{"Dropped (quantity <= 0)", strconv.Itoa(cr.DroppedQuantity)},
		{"Dropped (price <= 0)", strconv.Itoa(cr.DroppedPrice)},
		{"Rows dropped", strconv.Itoa(cr.Dropped())},
		{"Lines analysed", strconv.Itoa(s.Lines)},
		{"Invoices", strconv.Itoa(s.Invoices)},
		{"Customers", strconv.Itoa(s.Customers)},
		{"Products", strconv.Itoa(s.Products)},
		{"Countries", strconv.Itoa(s.Countries)},
	})
	if s.Lines > 0 {
		t.AppendBulk([][]string{
			{"From", s.From.Format(dateFormat)},
			{"To", s.To.Format(dateFormat)},
			{"Total sales", money(s.TotalSales)},
			{"Mean line sales", strconv.FormatFloat(s.MeanLine, 'f', 2, 64)},
			{"Std dev line sales", strconv.FormatFloat(s.StdDevLine, 'f', 2, 64)},
		})
	}
	t.Render()
}
