package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rustyeddy/tradeplan/market"
	"go.uber.org/zap"
)

const tradeSelect = `
	SELECT t.id, t.seq, t.portfolio_id, t.instrument_id, i.symbol, t.date, t.side,
		t.entry, t.sl, t.tp, t.exit, t.lots,
		t.pip_size, t.pip_value_per_lot, t.sl_pips, t.tp_pips, t.result_pips, t.pl_usd,
		t.created_at
	FROM trades t
	JOIN instruments i ON i.id = t.instrument_id`

// AddTrade derives t's pip and P/L fields from the instrument as it is
// now and appends the trade to the journal. t.ID, t.Seq and t.Symbol are
// filled in.
func (j *SQLite) AddTrade(ctx context.Context, t *Trade) error {
	if t.Side != market.Buy && t.Side != market.Sell {
		return fmt.Errorf("invalid side %q", t.Side)
	}
	if t.Lots < 0 {
		return fmt.Errorf("lots must be positive")
	}
	if t.Lots == 0 {
		t.Lots = 1.0
	}
	if j.zeroIsUnset {
		t.Legs = t.Legs.ZeroAsUnset()
	}
	if t.Date.IsZero() {
		t.Date = j.now()
	}
	t.Date = Day(t.Date)
	t.CreatedAt = j.now().UTC()

	err := j.withTx(ctx, func(tx *sqlx.Tx) error {
		inst, err := getInstrument(ctx, tx, t.InstrumentID)
		if err != nil {
			return err
		}
		t.Symbol = inst.Symbol
		t.Derive(inst)

		if t.Seq, err = j.seq.Next(); err != nil {
			return err
		}

		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO trades
			(seq, portfolio_id, instrument_id, date, side, entry, sl, tp, exit, lots,
			 pip_size, pip_value_per_lot, sl_pips, tp_pips, result_pips, pl_usd, created_at)
			VALUES
			(:seq, :portfolio_id, :instrument_id, :date, :side, :entry, :sl, :tp, :exit, :lots,
			 :pip_size, :pip_value_per_lot, :sl_pips, :tp_pips, :result_pips, :pl_usd, :created_at)`, t)
		if err != nil {
			return fmt.Errorf("insert trade: %w", err)
		}
		t.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.Int64("id", t.ID),
		zap.Int64("portfolio_id", t.PortfolioID),
		zap.String("symbol", t.Symbol),
		zap.String("side", t.Side.String()),
		zap.Bool("open", t.Open()),
	}
	if t.PLUSD != nil {
		fields = append(fields, zap.Float64("pl_usd", *t.PLUSD))
	}
	j.log.Info("trade recorded", fields...)
	return nil
}

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(ctx context.Context, tradeID int64) (Trade, error) {
	var t Trade
	err := j.db.GetContext(ctx, &t, tradeSelect+` WHERE t.id = ?`, tradeID)
	if err != nil {
		return Trade{}, notFound(err, fmt.Sprintf("trade %d", tradeID))
	}
	return t, nil
}

// Trades returns a portfolio's trades, newest first.
func (j *SQLite) Trades(ctx context.Context, portfolioID int64) ([]Trade, error) {
	var out []Trade
	err := j.db.SelectContext(ctx, &out, tradeSelect+` WHERE t.portfolio_id = ? ORDER BY t.seq DESC`, portfolioID)
	return out, err
}

// PLEntries returns (date, pl_usd) for every trade of a portfolio in
// date order. Open trades have a nil PL.
func (j *SQLite) PLEntries(ctx context.Context, portfolioID int64) ([]PLEntry, error) {
	var out []PLEntry
	err := j.db.SelectContext(ctx, &out,
		`SELECT date, pl_usd FROM trades WHERE portfolio_id = ? ORDER BY date ASC, seq ASC`, portfolioID)
	return out, err
}

// RealizedBetween sums closed P/L for trades dated within [start, end).
func (j *SQLite) RealizedBetween(ctx context.Context, portfolioID int64, start, end time.Time) (float64, error) {
	var total float64
	err := j.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(pl_usd), 0) FROM trades
		WHERE portfolio_id = ? AND date >= ? AND date < ? AND pl_usd IS NOT NULL`,
		portfolioID, Day(start), Day(end))
	return total, err
}
