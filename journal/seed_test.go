package journal

import (
	"context"
	"testing"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSeedsDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, p, xau := seeded(t)

	assert.Equal(t, "WeMaster 510zero 25k", p.Name)
	assert.Equal(t, 25000.0, p.Balance)
	assert.Equal(t, 2400.0, xau.Price)

	btc, err := j.InstrumentBySymbol(ctx, "BTCUSD")
	require.NoError(t, err)
	assert.Equal(t, 1.0, btc.PipSize)
	assert.Equal(t, 60000.0, btc.Price)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, p, _ := seeded(t)

	// user edits after the first start must survive the next one
	require.NoError(t, j.SetInstrumentPrice(ctx, "XAUUSD", 2500))

	seeds := Seeds{
		Instruments: market.DefaultInstruments,
		Portfolios:  []risk.Portfolio{risk.DefaultPortfolio},
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, Bootstrap(ctx, j, seeds, nil))
	}

	insts, err := j.Instruments(ctx)
	require.NoError(t, err)
	assert.Len(t, insts, 2)

	xau, err := j.InstrumentBySymbol(ctx, "XAUUSD")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, xau.Price)

	ports, err := j.Portfolios(ctx)
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.Equal(t, p.ID, ports[0].ID)
}

func TestBootstrapDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)

	mine := market.Instrument{Symbol: "XAUUSD", PipSize: 0.1, PipValuePerLot: 1, ContractSize: 100, Price: 1}
	require.NoError(t, j.CreateInstrument(ctx, &mine))

	require.NoError(t, Bootstrap(ctx, j, Seeds{Instruments: market.DefaultInstruments}, nil))

	got, err := j.InstrumentBySymbol(ctx, "XAUUSD")
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)
	assert.Equal(t, 0.1, got.PipSize)
	assert.Equal(t, 1.0, got.Price)

	// the defaults do not leak the assigned ids back
	assert.Zero(t, market.DefaultInstruments[0].ID)
}
