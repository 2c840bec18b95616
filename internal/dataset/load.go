package dataset

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salescope-dev/salescope/internal/model"
)

// Dataset is the cleaned, in-memory sales table.
type Dataset struct {
	Path         string
	Transactions []model.Transaction
	Report       CleanReport
}

// Load reads and cleans the sales CSV at path.
func Load(path string, layouts []string) (*Dataset, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	raw, err := ReadTransactions(f, layouts)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	txns, report := Clean(raw)

	log.Info().
		Str("path", path).
		Int("kept", report.Kept).
		Int("dropped", report.Dropped()).
		Stringer("clean", report).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset loaded")

	return &Dataset{Path: path, Transactions: txns, Report: report}, nil
}
