package cmd

import (
	"time"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the portfolio summary and daily P/L as Org",
	Long: `Print total, best and worst P/L, win rate and the daily P/L table for
a portfolio. Without closed trades it reports that there is no data yet.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

var (
	dashPortfolio string
	dashAll       bool
)

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringVarP(&dashPortfolio, "portfolio", "p", "", "portfolio name (default: most recent)")
	dashboardCmd.Flags().BoolVarP(&dashAll, "all", "a", false, "report every portfolio")
}

func runDashboard(cmd *cobra.Command, args []string) error {
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
	if !dashAll {
		p, err := resolvePortfolio(ctx, j, dashPortfolio)
		if err != nil {
			return err
		}
		ports = []risk.Portfolio{p}
	}

	now := time.Now()
	for _, p := range ports {
		entries, err := j.PLEntries(ctx, p.ID)
		if err != nil {
			return err
		}
		if err := journal.NewPortfolioReport(p, entries, now).WriteOrg(cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}
