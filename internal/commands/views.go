package commands

import (
	"github.com/spf13/cobra"

	"github.com/salescope-dev/salescope/internal/app"
)

// newViewCommand builds a no-argument subcommand that loads the dataset and
// runs one view.
func newViewCommand(opts *rootOptions, use, short string, run func(*app.App) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}
			return run(a)
		},
	}
}

func newMonthlyCommand(opts *rootOptions) *cobra.Command {
	return newViewCommand(opts, "monthly", "Monthly sales trend", (*app.App).Monthly)
}

func newYearlyCommand(opts *rootOptions) *cobra.Command {
	return newViewCommand(opts, "yearly", "Yearly sales trend", (*app.App).Yearly)
}

func newProductsCommand(opts *rootOptions) *cobra.Command {
	return newViewCommand(opts, "products", "Top products by revenue and volume", (*app.App).Products)
}

func newCountriesCommand(opts *rootOptions) *cobra.Command {
	return newViewCommand(opts, "countries", "Top countries by sales", (*app.App).Countries)
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	return newViewCommand(opts, "summary", "Dataset overview", (*app.App).Summary)
}

func newSignalCommand(opts *rootOptions) *cobra.Command {
	var year int
	var withChart bool

	cmd := newViewCommand(opts, "signal", "Demand acceleration (MA50/MA200 crossover) events for a year", func(a *app.App) error {
		return a.Signal(year, withChart)
	})
	cmd.Flags().IntVar(&year, "year", 0, "year to analyse (required)")
	_ = cmd.MarkFlagRequired("year")
	cmd.Flags().BoolVar(&withChart, "chart", false, "also chart the moving averages")
	return cmd
}

func newGrowthCommand(opts *rootOptions) *cobra.Command {
	var year int

	cmd := newViewCommand(opts, "growth", "Month-over-month growth rate for a year", func(a *app.App) error {
		return a.Growth(year)
	})
	cmd.Flags().IntVar(&year, "year", 0, "year to analyse (required)")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
