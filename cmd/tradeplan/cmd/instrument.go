package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/market"
	"github.com/spf13/cobra"
)

var instrumentCmd = &cobra.Command{
	Use:     "instrument",
	Aliases: []string{"instruments"},
	Short:   "Manage instrument reference data",
}

var instrumentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List instruments",
	Args:  cobra.NoArgs,
	RunE:  runInstrumentList,
}

var instrumentAddCmd = &cobra.Command{
	Use:   "add <symbol>",
	Short: "Add an instrument",
	Long: `Add an instrument. Pip size and pip value per lot are required.

Example:
  tradeplan instrument add XAGUSD --pip-size 0.001 --pip-value 5 --contract-size 5000 --price 30`,
	Args: cobra.ExactArgs(1),
	RunE: runInstrumentAdd,
}

var instrumentPriceCmd = &cobra.Command{
	Use:   "price <symbol> <price>",
	Short: "Set the reference price used for the margin estimate",
	Args:  cobra.ExactArgs(2),
	RunE:  runInstrumentPrice,
}

var newInstrument market.Instrument

func init() {
	rootCmd.AddCommand(instrumentCmd)
	instrumentCmd.AddCommand(instrumentListCmd, instrumentAddCmd, instrumentPriceCmd)

	f := instrumentAddCmd.Flags()
	f.Float64Var(&newInstrument.PipSize, "pip-size", 0, "price change of one pip")
	f.Float64Var(&newInstrument.PipValuePerLot, "pip-value", 0, "USD value of one pip per lot")
	f.Float64Var(&newInstrument.ContractSize, "contract-size", 0, "units per lot")
	f.Float64Var(&newInstrument.Price, "price", 0, "reference price")
	_ = instrumentAddCmd.MarkFlagRequired("pip-size")
	_ = instrumentAddCmd.MarkFlagRequired("pip-value")
}

func runInstrumentList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	insts, err := j.Instruments(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tPIP SIZE\tPIP VALUE\tCONTRACT\tPRICE")
	for _, i := range insts {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\n", i.Symbol, i.PipSize, i.PipValuePerLot, i.ContractSize, usd(i.Price))
	}
	return tw.Flush()
}

func runInstrumentAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	inst := newInstrument
	inst.ID = 0
	inst.Symbol = args[0]
	if err := j.CreateInstrument(ctx, &inst); err != nil {
		if errors.Is(err, journal.ErrDuplicate) {
			return fmt.Errorf("instrument symbol already exists: %w", err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created instrument %s (id %d)\n", inst.Symbol, inst.ID)
	return nil
}

func runInstrumentPrice(cmd *cobra.Command, args []string) error {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", args[1])
	}

	ctx := cmd.Context()
	j, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.SetInstrumentPrice(ctx, args[0], price); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s price set to %s\n", args[0], usd(price))
	return nil
}
