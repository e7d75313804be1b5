package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradeplan/risk"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Size a trade from dollar risk and stop distance",
	Long: `Compute lot size and estimated margin for a planned trade.

Risk defaults to the portfolio's risk per trade and the stop distance to
the configured default. When both --entry and --sl are given the stop
distance is taken from them instead. Warnings against the portfolio
limits are advisory only.

Example:
  tradeplan plan --symbol XAUUSD --risk 62.5 --sl-pips 625`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

var (
	planPortfolio string
	planSymbol    string
	planRisk      float64
	planSLPips    float64
	planPipValue  float64
	planEntry     float64
	planSL        float64
	planTP        float64
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planPortfolio, "portfolio", "p", "", "portfolio name (default: most recent)")
	planCmd.Flags().StringVarP(&planSymbol, "symbol", "s", "", "instrument symbol (default: first by symbol)")
	planCmd.Flags().Float64VarP(&planRisk, "risk", "r", 0, "dollar risk (default: portfolio risk per trade)")
	planCmd.Flags().Float64Var(&planSLPips, "sl-pips", 0, "stop distance in pips (default: config planner.default_sl_pips)")
	planCmd.Flags().Float64Var(&planPipValue, "pip-value", 0, "pip value per lot (default: instrument)")
	planCmd.Flags().Float64Var(&planEntry, "entry", 0, "planned entry price")
	planCmd.Flags().Float64Var(&planSL, "sl", 0, "planned stop-loss price")
	planCmd.Flags().Float64Var(&planTP, "tp", 0, "planned take-profit price")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	p, err := resolvePortfolio(ctx, j, planPortfolio)
	if err != nil {
		return err
	}
	inst, err := resolveInstrument(ctx, j, planSymbol)
	if err != nil {
		return err
	}

	in := risk.Inputs{
		RiskUSD:        p.RiskPerTradeUSD,
		SLPips:         cfg.Planner.DefaultSLPips,
		PipValuePerLot: inst.PipValuePerLot,
		ContractSize:   inst.ContractSize,
		Price:          inst.Price,
		Leverage:       p.Leverage,
	}
	if cmd.Flags().Changed("risk") {
		in.RiskUSD = planRisk
	}
	if cmd.Flags().Changed("pip-value") {
		in.PipValuePerLot = planPipValue
	}

	entry := optFloat(cmd, "entry", planEntry)
	sl := optFloat(cmd, "sl", planSL)
	tp := optFloat(cmd, "tp", planTP)
	switch {
	case cmd.Flags().Changed("sl-pips"):
		in.SLPips = planSLPips
	case entry != nil && sl != nil:
		if d := risk.DeriveTradeFields(risk.Legs{Entry: entry, SL: sl}, inst); d.SLPips != nil {
			in.SLPips = *d.SLPips
		}
	}
	if entry != nil {
		in.Price = *entry
	}
	if in.RiskUSD < 0 || in.SLPips < 0 || in.PipValuePerLot < 0 {
		return fmt.Errorf("risk, sl-pips and pip-value must not be negative")
	}

	res := risk.Calculate(in)

	now := time.Now()
	today, err := j.RealizedBetween(ctx, p.ID, now, now.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	total, err := j.RealizedBetween(ctx, p.ID, time.Time{}, now.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	rep := risk.Evaluate(p, res, today, total)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Portfolio:  %s (1:%d)\n", p.Name, p.Leverage)
	fmt.Fprintf(out, "Instrument: %s @ %s\n", inst.Symbol, usd(in.Price))
	fmt.Fprintf(out, "Risk:       $%s over %.1f pips at $%s/pip/lot\n", usd(res.RiskUSD), in.SLPips, usd(in.PipValuePerLot))
	fmt.Fprintf(out, "Lots:       %.3f\n", res.Lots)
	fmt.Fprintf(out, "Margin:     $%s\n", usd(res.Margin))
	if entry != nil && sl != nil && tp != nil {
		fmt.Fprintf(out, "R:R:        %.2f\n", risk.RR(*entry, *sl, *tp))
	}
	fmt.Fprintf(out, "Realized:   today $%s, total $%s\n", usd(today), usd(total))

	if rep.OK() {
		fmt.Fprintln(out, "Checks:     ok")
		return nil
	}
	for _, w := range rep.Warnings {
		fmt.Fprintf(out, "WARNING %s: %s\n", w.Code, w.Msg)
	}
	return nil
}
