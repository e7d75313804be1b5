package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTradesCSV(t *testing.T) {
	t.Parallel()

	closed := Trade{ID: 1, Symbol: "XAUUSD", Date: day(2024, 1, 2),
		Legs: risk.Legs{Side: market.Buy, Entry: fp(2400), SL: fp(2390), Exit: fp(2410), Lots: 1}}
	closed.Derive(market.DefaultInstruments[0])
	open := Trade{ID: 2, Symbol: "BTCUSD", Date: day(2024, 1, 3),
		Legs: risk.Legs{Side: market.Sell, Entry: fp(60000), Lots: 0.5}}
	open.Derive(market.DefaultInstruments[1])

	var buf bytes.Buffer
	require.NoError(t, WriteTradesCSV(&buf, []Trade{closed, open}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, tradeCSVHeader, rows[0])
	assert.Equal(t, []string{
		"1", "2024-01-02", "XAUUSD", "Buy", "1.000000",
		"2400.000000", "2390.000000", "", "2410.000000",
		"1000.000000", "", "1000.000000", "100.000000",
	}, rows[1])

	assert.Equal(t, "Sell", rows[2][3])
	assert.Equal(t, "", rows[2][8])  // exit
	assert.Equal(t, "", rows[2][12]) // pl_usd
}

func TestWriteTradesCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTradesCSV(&buf, nil))
	assert.Equal(t, "id,date,symbol,side,lots,entry,sl,tp,exit,sl_pips,tp_pips,result_pips,pl_usd\n", buf.String())
}
