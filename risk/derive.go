package risk

import "github.com/rustyeddy/tradeplan/market"

// Legs are the user-entered prices and size of a trade. A nil price is
// unset; a nil Exit means the position is still open.
type Legs struct {
	Side  market.Side `db:"side" json:"side"`
	Entry *float64    `db:"entry" json:"entry,omitempty"`
	SL    *float64    `db:"sl" json:"sl,omitempty"`
	TP    *float64    `db:"tp" json:"tp,omitempty"`
	Exit  *float64    `db:"exit" json:"exit,omitempty"`
	Lots  float64     `db:"lots" json:"lots"`
}

// Derived holds the fields computed once when a trade is logged. The
// pip values are a point-in-time copy of the instrument.
type Derived struct {
	PipSize        float64  `db:"pip_size" json:"pip_size"`
	PipValuePerLot float64  `db:"pip_value_per_lot" json:"pip_value_per_lot"`
	SLPips         *float64 `db:"sl_pips" json:"sl_pips,omitempty"`
	TPPips         *float64 `db:"tp_pips" json:"tp_pips,omitempty"`
	ResultPips     *float64 `db:"result_pips" json:"result_pips,omitempty"`
	PLUSD          *float64 `db:"pl_usd" json:"pl_usd,omitempty"`
}

// Open reports whether the trade has no exit yet.
func (l Legs) Open() bool { return l.Exit == nil }

// ZeroAsUnset clears any price that is exactly zero. Journals written
// by the form-based planner stored 0 for "not entered", so this keeps
// that data meaning what it meant.
func (l Legs) ZeroAsUnset() Legs {
	for _, p := range []**float64{&l.Entry, &l.SL, &l.TP, &l.Exit} {
		if *p != nil && **p == 0 {
			*p = nil
		}
	}
	return l
}

// DeriveTradeFields computes stop/target distances and, for closed
// trades, the realized pips and USD P/L using inst's pip values.
func DeriveTradeFields(l Legs, inst market.Instrument) Derived {
	d := Derived{
		PipSize:        inst.PipSize,
		PipValuePerLot: inst.PipValuePerLot,
		SLPips:         absPips(l.Entry, l.SL, inst.PipSize),
		TPPips:         absPips(l.TP, l.Entry, inst.PipSize),
	}
	if l.Open() {
		return d
	}

	d.ResultPips = PipDistance(l.Entry, l.Exit, inst.PipSize, l.Side)

	var pips float64
	if d.ResultPips != nil {
		pips = *d.ResultPips
	}
	lots := l.Lots
	if lots == 0 {
		lots = 1.0
	}
	pl := pips * inst.PipValuePerLot * lots
	d.PLUSD = &pl
	return d
}
