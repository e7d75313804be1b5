package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/logging"
	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rootCmd = &cobra.Command{
	Use:   "tradeplan",
	Short: "Position sizing and trade journal for USD-denominated instruments",
	Long: `Tradeplan sizes trades from a fixed dollar risk and keeps a journal of
executed trades per portfolio.

It provides tools for:
  - Planning lot size and estimated margin from risk, stop distance and pip value
  - Logging trades with derived stop/target pips and realized P/L
  - Daily P/L rollups and best/worst/total summaries per portfolio
  - Managing portfolios (accounts) and instrument reference data

Data lives in a single local SQLite file (see --db).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if syncLog != nil {
			syncLog()
		}
	},
}

var (
	cfgFile  string
	dbPath   string
	logLevel string

	cfg     *config.Config
	logger  = zap.NewNop()
	syncLog func()
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}

	l, sync, err := logging.New(c.Log.Level)
	if err != nil {
		return err
	}
	cfg, logger, syncLog = c, l, sync
	return nil
}

// openJournal opens the store and makes sure the seed rows exist. The
// caller closes it.
func openJournal(ctx context.Context) (*journal.SQLite, error) {
	j, err := journal.NewSQLite(cfg.Database.Path,
		journal.WithLogger(logger),
		journal.WithZeroAsUnset(cfg.Journal.ZeroIsUnset),
	)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	seeds := journal.Seeds{Instruments: cfg.Seed.Instruments, Portfolios: cfg.Seed.Portfolios}
	if err := journal.Bootstrap(ctx, j, seeds, logger); err != nil {
		_ = j.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return j, nil
}

// resolvePortfolio looks up name, or picks the newest portfolio when
// name is empty.
func resolvePortfolio(ctx context.Context, j *journal.SQLite, name string) (risk.Portfolio, error) {
	if name == "" {
		return j.LatestPortfolio(ctx)
	}
	return j.PortfolioByName(ctx, name)
}

// resolveInstrument looks up symbol, or the first instrument by symbol
// when it is empty.
func resolveInstrument(ctx context.Context, j *journal.SQLite, symbol string) (market.Instrument, error) {
	if symbol != "" {
		return j.InstrumentBySymbol(ctx, symbol)
	}
	all, err := j.Instruments(ctx)
	if err != nil {
		return market.Instrument{}, err
	}
	if len(all) == 0 {
		return market.Instrument{}, fmt.Errorf("instrument %w", journal.ErrNotFound)
	}
	return all[0], nil
}

// optFloat returns &v only when the flag was given on the command line.
func optFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return journal.Day(time.Now()), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

var printer = message.NewPrinter(language.English)

// usd formats x with thousands separators, e.g. 2,400.00.
func usd(x float64) string {
	return printer.Sprintf("%.2f", x)
}
