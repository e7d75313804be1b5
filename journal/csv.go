package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var tradeCSVHeader = []string{
	"id", "date", "symbol", "side", "lots", "entry", "sl", "tp", "exit",
	"sl_pips", "tp_pips", "result_pips", "pl_usd",
}

// WriteTradesCSV writes trades with a header row. Unset values are
// empty cells.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tradeCSVHeader); err != nil {
		return err
	}

	for _, t := range trades {
		err := cw.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Date.Format(time.DateOnly),
			t.Symbol,
			t.Side.String(),
			f(t.Lots),
			opt(t.Entry),
			opt(t.SL),
			opt(t.TP),
			opt(t.Exit),
			opt(t.SLPips),
			opt(t.TPPips),
			opt(t.ResultPips),
			opt(t.PLUSD),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func opt(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
