package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generated = time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC)

func TestPortfolioReportWithData(t *testing.T) {
	t.Parallel()

	r := NewPortfolioReport(risk.NewPortfolio("Main"), sampleEntries(), generated)
	assert.True(t, r.HasData)
	assert.Equal(t, 1, r.Open)
	require.Len(t, r.Daily, 2)

	var buf bytes.Buffer
	require.NoError(t, r.WriteOrg(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "* PORTFOLIO: Main\n"))
	assert.Contains(t, out, ":BALANCE:     25000.00")
	assert.Contains(t, out, ":GENERATED:   [2024-01-03 Wed 09:30]")
	assert.Contains(t, out, "- Total P/L (USD):  *90.00*")
	assert.Contains(t, out, "- Best Trade:       *100.00*")
	assert.Contains(t, out, "- Worst Trade:      *-40.00*")
	assert.Contains(t, out, "- Win Rate:         *66.67%*")
	assert.Contains(t, out, "| 2024-01-01 | 60.00 |")
	assert.Contains(t, out, "| 2024-01-02 | 30.00 |")
	assert.Contains(t, out, "| Open    | 1 |")
	assert.NotContains(t, out, "no trade data")
}

func TestPortfolioReportNoData(t *testing.T) {
	t.Parallel()

	r := NewPortfolioReport(risk.NewPortfolio("Empty"), nil, generated)
	assert.False(t, r.HasData)
	assert.Empty(t, r.Daily)

	var buf bytes.Buffer
	require.NoError(t, r.WriteOrg(&buf))
	assert.Contains(t, buf.String(), "no trade data yet")
	assert.NotContains(t, buf.String(), "Performance Summary")

	r = NewPortfolioReport(risk.NewPortfolio("OpenOnly"), []PLEntry{{Date: generated}}, generated)
	buf.Reset()
	require.NoError(t, r.WriteOrg(&buf))
	assert.Contains(t, buf.String(), "no trade data yet (1 open)")
}

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	tr := Trade{
		ID:     7,
		Seq:    "01HN0000000000000000000000",
		Symbol: "XAUUSD",
		Date:   day(2024, 1, 1),
		Legs:   risk.Legs{Side: market.Buy, Entry: fp(2400), SL: fp(2390), TP: fp(2420), Exit: fp(2410), Lots: 1},
	}
	tr.Derive(market.DefaultInstruments[0])

	out := FormatTradeOrg(tr)
	assert.True(t, strings.HasPrefix(out, "** CLOSED Buy XAUUSD 1.00 lots (#7)\n"))
	assert.Contains(t, out, ":DATE: 2024-01-01\n")
	assert.Contains(t, out, ":SL_PIPS: 1000.0\n")
	assert.Contains(t, out, ":TP_PIPS: 2000.0\n")
	assert.Contains(t, out, ":PLANNED_RR: 2.00\n")
	assert.Contains(t, out, ":RESULT_PIPS: 1000.0\n")
	assert.Contains(t, out, ":REALIZED_PL: 100.00\n")
	assert.Contains(t, out, "*** Review\n")

	open := Trade{ID: 8, Symbol: "BTCUSD", Legs: risk.Legs{Side: market.Sell, Lots: 0.1}}
	out = FormatTradeOrg(open)
	assert.True(t, strings.HasPrefix(out, "** OPEN Sell BTCUSD 0.10 lots (#8)"))
	assert.Contains(t, out, ":EXIT: -\n")
	assert.Contains(t, out, ":REALIZED_PL: -\n")
	assert.NotContains(t, out, "PLANNED_RR")

	both := FormatTradesOrg([]Trade{tr, open})
	assert.Equal(t, 2, strings.Count(both, ":PROPERTIES:"))
}
