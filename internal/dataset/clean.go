package dataset

import (
	"fmt"

	"github.com/salescope-dev/salescope/internal/model"
)

// CleanReport tallies what Clean kept and dropped.
type CleanReport struct {
	Read            int
	DroppedQuantity int // Quantity <= 0 (returns, adjustments)
	DroppedPrice    int // Price <= 0 with a positive quantity
	Kept            int
}

// Dropped returns the total number of rows removed.
func (r CleanReport) Dropped() int {
	return r.DroppedQuantity + r.DroppedPrice
}

func (r CleanReport) String() string {
	return fmt.Sprintf("read %d rows, kept %d, dropped %d (quantity<=0: %d, price<=0: %d)",
		r.Read, r.Kept, r.Dropped(), r.DroppedQuantity, r.DroppedPrice)
}

// Clean keeps rows with a positive quantity and a positive price, and fills
// the derived Sales, Year and Month fields. The input slice is not modified.
func Clean(txns []model.Transaction) ([]model.Transaction, CleanReport) {
	report := CleanReport{Read: len(txns)}

	kept := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Quantity <= 0 {
			report.DroppedQuantity++
			continue
		}
		if !txn.Price.IsPositive() {
			report.DroppedPrice++
			continue
		}

		txn.Sales = txn.LineTotal()
		txn.Year = txn.InvoiceDate.Year()
		txn.Month = int(txn.InvoiceDate.Month())
		kept = append(kept, txn)
	}
	report.Kept = len(kept)

	return kept, report
}
