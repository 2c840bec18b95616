package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salescope-dev/salescope/internal/app"
	"github.com/salescope-dev/salescope/internal/buildinfo"
	"github.com/salescope-dev/salescope/internal/config"
	"github.com/salescope-dev/salescope/internal/logger"
)

// rootOptions carries persistent flags and the resolved config.
type rootOptions struct {
	configPath string
	dataPath   string
	outDir     string
	logLevel   string
	noCharts   bool

	cfg *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "salescope",
		Short:   "Retail sales trend analysis",
		Long:    "salescope loads an Online Retail II style sales CSV, cleans it, and reports\nmonthly/yearly trends, top products, demand acceleration, growth and country rankings.",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.FileName, "config file")
	flags.StringVar(&opts.dataPath, "data", "", "sales CSV (overrides dataset.path)")
	flags.StringVar(&opts.outDir, "out", "", "chart output directory (overrides charts.dir)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noCharts, "no-charts", false, "print results without writing charts")

	rootCmd.AddCommand(
		newInitCommand(),
		newMenuCommand(opts),
		newMonthlyCommand(opts),
		newYearlyCommand(opts),
		newProductsCommand(opts),
		newSignalCommand(opts),
		newGrowthCommand(opts),
		newCountriesCommand(opts),
		newSummaryCommand(opts),
	)

	return rootCmd
}

// resolve loads the config file, applies flag overrides, and sets up logging.
// An explicitly named config file must exist; the default one is optional.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOrDefault(o.configPath)
	}
	if err != nil {
		return err
	}

	if o.dataPath != "" {
		cfg.Dataset.Path = o.dataPath
	}
	if o.outDir != "" {
		cfg.Charts.Dir = o.outDir
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.noCharts {
		cfg.Charts.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Version: buildinfo.Version,
	}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	o.cfg = cfg
	return nil
}

func (o *rootOptions) loadApp(cmd *cobra.Command) (*app.App, error) {
	a, err := app.Load(o.cfg, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return a, nil
}
