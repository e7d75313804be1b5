package risk

import (
	"testing"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xau = market.Instrument{Symbol: "XAUUSD", PipSize: 0.01, PipValuePerLot: 0.1, ContractSize: 100, Price: 2400}

func TestDeriveTradeFieldsClosedBuy(t *testing.T) {
	t.Parallel()

	d := DeriveTradeFields(Legs{
		Side:  market.Buy,
		Entry: fp(2400),
		SL:    fp(2390),
		TP:    fp(2420),
		Exit:  fp(2410),
		Lots:  1,
	}, xau)

	assert.Equal(t, 0.01, d.PipSize)
	assert.Equal(t, 0.1, d.PipValuePerLot)
	require.NotNil(t, d.SLPips)
	require.NotNil(t, d.TPPips)
	require.NotNil(t, d.ResultPips)
	require.NotNil(t, d.PLUSD)
	assert.InDelta(t, 1000.0, *d.SLPips, 1e-6)
	assert.InDelta(t, 2000.0, *d.TPPips, 1e-6)
	assert.InDelta(t, 1000.0, *d.ResultPips, 1e-6)
	assert.InDelta(t, 100.0, *d.PLUSD, 1e-6)
}

func TestDeriveTradeFieldsClosedSellLoss(t *testing.T) {
	t.Parallel()

	d := DeriveTradeFields(Legs{
		Side:  market.Sell,
		Entry: fp(2400),
		SL:    fp(2410),
		Exit:  fp(2410),
		Lots:  2,
	}, xau)

	require.NotNil(t, d.SLPips)
	assert.InDelta(t, 1000.0, *d.SLPips, 1e-6)
	assert.Nil(t, d.TPPips)
	require.NotNil(t, d.PLUSD)
	assert.InDelta(t, -200.0, *d.PLUSD, 1e-6)
}

func TestDeriveTradeFieldsOpen(t *testing.T) {
	t.Parallel()

	for _, side := range []market.Side{market.Buy, market.Sell} {
		d := DeriveTradeFields(Legs{
			Side:  side,
			Entry: fp(2400),
			SL:    fp(2390),
			TP:    fp(2420),
			Lots:  1,
		}, xau)
		assert.Nil(t, d.ResultPips, side)
		assert.Nil(t, d.PLUSD, side)
		assert.NotNil(t, d.SLPips, side)
	}

	d := DeriveTradeFields(Legs{Side: market.Buy}, xau)
	assert.Nil(t, d.SLPips)
	assert.Nil(t, d.TPPips)
	assert.Nil(t, d.ResultPips)
	assert.Nil(t, d.PLUSD)
}

func TestDeriveTradeFieldsExitWithoutEntry(t *testing.T) {
	t.Parallel()

	// No entry means no pip distance, but the trade is still closed
	// and books a zero P/L.
	d := DeriveTradeFields(Legs{Side: market.Buy, Exit: fp(2410), Lots: 1}, xau)
	assert.Nil(t, d.ResultPips)
	require.NotNil(t, d.PLUSD)
	assert.Equal(t, 0.0, *d.PLUSD)
}

func TestDeriveTradeFieldsZeroLotsCountsAsOne(t *testing.T) {
	t.Parallel()

	d := DeriveTradeFields(Legs{Side: market.Buy, Entry: fp(2400), Exit: fp(2410)}, xau)
	require.NotNil(t, d.PLUSD)
	assert.InDelta(t, 100.0, *d.PLUSD, 1e-6)
}

func TestDeriveTradeFieldsZeroPipSize(t *testing.T) {
	t.Parallel()

	broken := xau
	broken.PipSize = 0

	d := DeriveTradeFields(Legs{Side: market.Buy, Entry: fp(2400), SL: fp(2390), Exit: fp(2410), Lots: 1}, broken)
	assert.Nil(t, d.SLPips)
	assert.Nil(t, d.ResultPips)
	require.NotNil(t, d.PLUSD)
	assert.Equal(t, 0.0, *d.PLUSD)
}

func TestZeroAsUnset(t *testing.T) {
	t.Parallel()

	l := Legs{Side: market.Buy, Entry: fp(2400), SL: fp(0), TP: fp(0), Exit: fp(0), Lots: 1}
	got := l.ZeroAsUnset()

	require.NotNil(t, got.Entry)
	assert.Equal(t, 2400.0, *got.Entry)
	assert.Nil(t, got.SL)
	assert.Nil(t, got.TP)
	assert.Nil(t, got.Exit)
	assert.True(t, got.Open())

	// the receiver is left alone
	require.NotNil(t, l.Exit)
	assert.Equal(t, 0.0, *l.Exit)
}

func TestZeroPriceIsRealWithoutCompat(t *testing.T) {
	t.Parallel()

	d := DeriveTradeFields(Legs{Side: market.Sell, Entry: fp(1), Exit: fp(0), Lots: 1}, market.Instrument{PipSize: 1, PipValuePerLot: 1})
	require.NotNil(t, d.ResultPips)
	assert.InDelta(t, 1.0, *d.ResultPips, 1e-12)
}
