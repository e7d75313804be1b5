package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradeplan/risk"
)

// FormatTradeOrg renders a Trade as an Org-mode block suitable for
// pasting into a journal. Structured facts go in the PROPERTIES drawer;
// unset values are written as "-".
func FormatTradeOrg(t Trade) string {
	status := "CLOSED"
	if t.Open() {
		status = "OPEN"
	}
	heading := fmt.Sprintf("** %s %s %s %.2f lots (#%d)", status, t.Side, t.Symbol, t.Lots, t.ID)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %d\n", t.ID))
	b.WriteString(fmt.Sprintf(":SEQ: %s\n", t.Seq))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date.Format(time.DateOnly)))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", t.Side))
	b.WriteString(fmt.Sprintf(":LOTS: %.2f\n", t.Lots))
	b.WriteString(fmt.Sprintf(":ENTRY: %s\n", optf(t.Entry, 5)))
	b.WriteString(fmt.Sprintf(":SL: %s\n", optf(t.SL, 5)))
	b.WriteString(fmt.Sprintf(":TP: %s\n", optf(t.TP, 5)))
	b.WriteString(fmt.Sprintf(":EXIT: %s\n", optf(t.Exit, 5)))
	b.WriteString(fmt.Sprintf(":PIP_SIZE: %g\n", t.PipSize))
	b.WriteString(fmt.Sprintf(":PIP_VALUE: %g\n", t.PipValuePerLot))
	b.WriteString(fmt.Sprintf(":SL_PIPS: %s\n", optf(t.SLPips, 1)))
	b.WriteString(fmt.Sprintf(":TP_PIPS: %s\n", optf(t.TPPips, 1)))
	if t.Entry != nil && t.SL != nil && t.TP != nil {
		b.WriteString(fmt.Sprintf(":PLANNED_RR: %.2f\n", risk.RR(*t.Entry, *t.SL, *t.TP)))
	}
	b.WriteString(fmt.Sprintf(":RESULT_PIPS: %s\n", optf(t.ResultPips, 1)))
	b.WriteString(fmt.Sprintf(":REALIZED_PL: %s\n", optf(t.PLUSD, 2)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func optf(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}
