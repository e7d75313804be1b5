package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/spf13/cobra"
)

var portfolioCmd = &cobra.Command{
	Use:     "portfolio",
	Aliases: []string{"portfolios"},
	Short:   "Manage portfolios",
}

var portfolioAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a portfolio",
	Long: `Create a portfolio. Unset limits take the 25k-account defaults.

Example:
  tradeplan portfolio add "Swing 10k" --balance 10000 --risk-per-trade 25`,
	Args: cobra.ExactArgs(1),
	RunE: runPortfolioAdd,
}

var portfolioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portfolios, newest first",
	Args:  cobra.NoArgs,
	RunE:  runPortfolioList,
}

var newPortfolio = risk.NewPortfolio("")

func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.AddCommand(portfolioAddCmd, portfolioListCmd)

	f := portfolioAddCmd.Flags()
	f.Float64Var(&newPortfolio.Balance, "balance", newPortfolio.Balance, "account balance in USD")
	f.IntVar(&newPortfolio.Leverage, "leverage", newPortfolio.Leverage, "account leverage (1:N)")
	f.Float64Var(&newPortfolio.DailyLossLimit, "daily-loss-limit", newPortfolio.DailyLossLimit, "daily loss limit in USD")
	f.Float64Var(&newPortfolio.TotalLossLimit, "total-loss-limit", newPortfolio.TotalLossLimit, "total loss limit in USD")
	f.Float64Var(&newPortfolio.RiskPerTradeUSD, "risk-per-trade", newPortfolio.RiskPerTradeUSD, "risk per trade in USD")
	f.Float64Var(&newPortfolio.MaxDailyRiskUSD, "max-daily-risk", newPortfolio.MaxDailyRiskUSD, "max daily risk in USD")
}

func runPortfolioAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	p := newPortfolio
	p.ID = 0
	p.Name = args[0]
	if err := j.CreatePortfolio(ctx, &p); err != nil {
		if errors.Is(err, journal.ErrDuplicate) {
			return fmt.Errorf("portfolio name already exists: %w", err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created portfolio %q (id %d)\n", p.Name, p.ID)
	return nil
}

func runPortfolioList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	ports, err := j.Portfolios(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBALANCE\tLEVERAGE\tRISK/TRADE\tMAX DAILY\tDAILY LIMIT\tTOTAL LIMIT\tCREATED")
	for _, p := range ports {
		fmt.Fprintf(tw, "%d\t%s\t%s\t1:%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, usd(p.Balance), p.Leverage,
			usd(p.RiskPerTradeUSD), usd(p.MaxDailyRiskUSD),
			usd(p.DailyLossLimit), usd(p.TotalLossLimit),
			p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
