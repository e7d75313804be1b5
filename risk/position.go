package risk

import (
	"math"

	"github.com/rustyeddy/tradeplan/market"
)

// LotSize returns the lots that lose riskUSD when the stop is hit.
// It returns 0 when either slPips or pipValuePerLot is zero, meaning
// the position cannot be sized.
func LotSize(riskUSD, slPips, pipValuePerLot float64) float64 {
	if slPips == 0 || pipValuePerLot == 0 {
		return 0.0
	}
	return riskUSD / (slPips * pipValuePerLot)
}

// EstimatedMargin approximates collateral as notional / leverage.
// Leverage is not validated beyond the zero guard.
func EstimatedMargin(contractSize, price, lots, leverage float64) float64 {
	if leverage == 0 {
		return 0.0
	}
	return (contractSize * price * lots) / leverage
}

// PipDistance is the signed move from entry to ref in pips, positive
// when the move is in the trade's favour. It returns nil when entry or
// ref is unset or pipSize is zero.
func PipDistance(entry, ref *float64, pipSize float64, side market.Side) *float64 {
	if entry == nil || ref == nil || pipSize == 0 {
		return nil
	}
	move := (*ref - *entry) / pipSize
	if side != market.Buy {
		move = -move
	}
	return &move
}

// RR is the reward/risk multiple of a planned trade.
func RR(entry, stop, takeProfit float64) float64 {
	risk := math.Abs(entry - stop)
	reward := math.Abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

// absPips is |a-b| / pipSize, nil when either price is unset.
func absPips(a, b *float64, pipSize float64) *float64 {
	if a == nil || b == nil || pipSize == 0 {
		return nil
	}
	v := math.Abs(*a-*b) / pipSize
	return &v
}
