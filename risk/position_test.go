package risk

import (
	"testing"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestLotSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		risk     float64
		slPips   float64
		pipValue float64
		want     float64
	}{
		{"xau default plan", 62.5, 625, 0.1, 1.0},
		{"btc", 100, 50, 1.0, 2.0},
		{"zero stop", 62.5, 0, 0.1, 0},
		{"zero pip value", 62.5, 625, 0, 0},
		{"both zero", 62.5, 0, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LotSize(tt.risk, tt.slPips, tt.pipValue)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestLotSizeFormula(t *testing.T) {
	t.Parallel()

	for _, risk := range []float64{1, 25, 62.5, 1000} {
		for _, sl := range []float64{1, 10, 625} {
			for _, pv := range []float64{0.1, 1, 10} {
				assert.InDelta(t, risk/(sl*pv), LotSize(risk, sl, pv), 1e-12)
			}
		}
	}
}

func TestEstimatedMargin(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2400.0, EstimatedMargin(100, 2400, 1, 100), 1e-9)
	assert.InDelta(t, 600.0, EstimatedMargin(1, 60000, 1, 100), 1e-9)
	assert.Equal(t, 0.0, EstimatedMargin(100, 2400, 1, 0))

	// negative or fractional leverage is passed straight through
	assert.InDelta(t, -2400.0, EstimatedMargin(100, 2400, 1, -100), 1e-9)
	assert.InDelta(t, 480000.0, EstimatedMargin(100, 2400, 1, 0.5), 1e-6)
}

func TestPipDistance(t *testing.T) {
	t.Parallel()

	got := PipDistance(fp(2400), fp(2410), 0.01, market.Buy)
	require.NotNil(t, got)
	assert.InDelta(t, 1000.0, *got, 1e-6)

	got = PipDistance(fp(2400), fp(2410), 0.01, market.Sell)
	require.NotNil(t, got)
	assert.InDelta(t, -1000.0, *got, 1e-6)

	assert.Nil(t, PipDistance(nil, fp(2410), 0.01, market.Buy))
	assert.Nil(t, PipDistance(fp(2400), nil, 0.01, market.Buy))
	assert.Nil(t, PipDistance(fp(2400), fp(2410), 0, market.Buy))
}

func TestRR(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.0, RR(2400, 2390, 2420), 1e-9)
	assert.InDelta(t, 2.0, RR(2400, 2410, 2380), 1e-9)
	assert.Equal(t, 0.0, RR(2400, 2400, 2420))
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	got := Calculate(Inputs{
		RiskUSD:        62.5,
		SLPips:         DefaultSLPips,
		PipValuePerLot: 0.1,
		ContractSize:   100,
		Price:          2400,
		Leverage:       100,
	})

	assert.InDelta(t, 1.0, got.Lots, 1e-9)
	assert.InDelta(t, 2400.0, got.Margin, 1e-6)
	assert.Equal(t, 62.5, got.RiskUSD)
}

func TestCalculateCannotSize(t *testing.T) {
	t.Parallel()

	got := Calculate(Inputs{RiskUSD: 62.5, SLPips: 0, PipValuePerLot: 0.1, ContractSize: 100, Price: 2400, Leverage: 100})
	assert.Equal(t, 0.0, got.Lots)
	assert.Equal(t, 0.0, got.Margin)
}
