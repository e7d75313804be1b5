package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/spf13/cobra"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Log and inspect journal trades",
	Long: `Trades are immutable once logged. Pip distances and realized P/L are
derived from the instrument at the time the trade is recorded.`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade in the journal",
	Long: `Record a trade. Leave --exit off for a trade that is still open.

Example:
  tradeplan trade add --symbol XAUUSD --side buy --entry 2400 --sl 2390 --tp 2420 --exit 2410`,
	Args: cobra.NoArgs,
	RunE: runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a portfolio's trades, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one trade as an Org entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var (
	tradePortfolio string
	tradeSymbol    string
	tradeSide      string
	tradeDate      string
	tradeLots      float64
	tradeEntry     float64
	tradeSL        float64
	tradeTP        float64
	tradeExit      float64

	tradeFormat string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd, tradeListCmd, tradeShowCmd)

	tradeAddCmd.Flags().StringVarP(&tradePortfolio, "portfolio", "p", "", "portfolio name (default: most recent)")
	tradeAddCmd.Flags().StringVarP(&tradeSymbol, "symbol", "s", "", "instrument symbol (default: first by symbol)")
	tradeAddCmd.Flags().StringVar(&tradeSide, "side", "", "buy or sell (required)")
	tradeAddCmd.Flags().StringVar(&tradeDate, "date", "", "trade date YYYY-MM-DD (default: today)")
	tradeAddCmd.Flags().Float64Var(&tradeLots, "lots", 1.0, "position size in lots")
	tradeAddCmd.Flags().Float64Var(&tradeEntry, "entry", 0, "entry price")
	tradeAddCmd.Flags().Float64Var(&tradeSL, "sl", 0, "stop-loss price")
	tradeAddCmd.Flags().Float64Var(&tradeTP, "tp", 0, "take-profit price")
	tradeAddCmd.Flags().Float64Var(&tradeExit, "exit", 0, "exit price (omit for an open trade)")
	_ = tradeAddCmd.MarkFlagRequired("side")

	tradeListCmd.Flags().StringVarP(&tradePortfolio, "portfolio", "p", "", "portfolio name (default: most recent)")
	tradeListCmd.Flags().StringVarP(&tradeFormat, "format", "f", "table", "output format: table, org or csv")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	side, err := market.ParseSide(tradeSide)
	if err != nil {
		return err
	}
	date, err := parseDay(tradeDate)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	p, err := resolvePortfolio(ctx, j, tradePortfolio)
	if err != nil {
		return err
	}
	inst, err := resolveInstrument(ctx, j, tradeSymbol)
	if err != nil {
		return err
	}

	t := journal.Trade{
		PortfolioID:  p.ID,
		InstrumentID: inst.ID,
		Date:         date,
		Legs: risk.Legs{
			Side:  side,
			Entry: optFloat(cmd, "entry", tradeEntry),
			SL:    optFloat(cmd, "sl", tradeSL),
			TP:    optFloat(cmd, "tp", tradeTP),
			Exit:  optFloat(cmd, "exit", tradeExit),
			Lots:  tradeLots,
		},
	}
	if err := j.AddTrade(ctx, &t); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	p, err := resolvePortfolio(ctx, j, tradePortfolio)
	if err != nil {
		return err
	}
	trades, err := j.Trades(ctx, p.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch tradeFormat {
	case "org":
		fmt.Fprint(out, journal.FormatTradesOrg(trades))
		return nil
	case "csv":
		return journal.WriteTradesCSV(out, trades)
	case "table", "":
	default:
		return fmt.Errorf("unknown format %q (want table, org or csv)", tradeFormat)
	}

	if len(trades) == 0 {
		fmt.Fprintf(out, "no trades in %s\n", p.Name)
		return nil
	}
	writeTradeTable(out, trades)

	entries, err := j.PLEntries(ctx, p.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tP/L")
	for _, d := range journal.DailyPLSeries(entries) {
		fmt.Fprintf(tw, "%s\t%s\n", d.Date.Format("2006-01-02"), usd(d.PL))
	}
	return tw.Flush()
}

func writeTradeTable(w io.Writer, trades []journal.Trade) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSYMBOL\tSIDE\tLOTS\tENTRY\tEXIT\tSL_PIPS\tTP_PIPS\tRESULT\tP/L")
	for _, t := range trades {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date.Format("2006-01-02"), t.Symbol, t.Side, t.Lots,
			cell(t.Entry, 2), cell(t.Exit, 2),
			cell(t.SLPips, 1), cell(t.TPPips, 1), cell(t.ResultPips, 1),
			cell(t.PLUSD, 2))
	}
	tw.Flush()
}

func cell(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid trade id %q", args[0])
	}

	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := j.GetTrade(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
	return nil
}
