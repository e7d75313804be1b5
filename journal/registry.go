package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"go.uber.org/zap"
)

const portfolioCols = `id, name, balance, leverage, daily_loss_limit, total_loss_limit,
	risk_per_trade_usd, max_daily_risk_usd, created_at`

// CreatePortfolio inserts p and sets its ID. A name already in use
// yields ErrDuplicate and the stored portfolio is not modified.
func (j *SQLite) CreatePortfolio(ctx context.Context, p *risk.Portfolio) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	p.CreatedAt = j.now().UTC()

	err := j.withTx(ctx, func(tx *sqlx.Tx) error {
		var n int
		if err := tx.GetContext(ctx, &n, `SELECT COUNT(*) FROM portfolios WHERE name = ?`, p.Name); err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("portfolio %q %w", p.Name, ErrDuplicate)
		}

		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO portfolios
			(name, balance, leverage, daily_loss_limit, total_loss_limit, risk_per_trade_usd, max_daily_risk_usd, created_at)
			VALUES (:name, :balance, :leverage, :daily_loss_limit, :total_loss_limit, :risk_per_trade_usd, :max_daily_risk_usd, :created_at)`, p)
		if err != nil {
			// lost a race with another writer between the check and the insert
			if isUniqueViolation(err) {
				return fmt.Errorf("portfolio %q %w", p.Name, ErrDuplicate)
			}
			return err
		}
		p.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		j.log.Info("portfolio not created", zap.String("name", p.Name), zap.Error(err))
		return err
	}

	j.log.Debug("portfolio created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return nil
}

// Portfolios lists every portfolio, most recently created first.
func (j *SQLite) Portfolios(ctx context.Context) ([]risk.Portfolio, error) {
	var out []risk.Portfolio
	err := j.db.SelectContext(ctx, &out,
		`SELECT `+portfolioCols+` FROM portfolios ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (j *SQLite) Portfolio(ctx context.Context, id int64) (risk.Portfolio, error) {
	var p risk.Portfolio
	err := j.db.GetContext(ctx, &p, `SELECT `+portfolioCols+` FROM portfolios WHERE id = ?`, id)
	if err != nil {
		return risk.Portfolio{}, notFound(err, fmt.Sprintf("portfolio %d", id))
	}
	return p, nil
}

func (j *SQLite) PortfolioByName(ctx context.Context, name string) (risk.Portfolio, error) {
	var p risk.Portfolio
	name = strings.TrimSpace(name)
	err := j.db.GetContext(ctx, &p, `SELECT `+portfolioCols+` FROM portfolios WHERE name = ?`, name)
	if err != nil {
		return risk.Portfolio{}, notFound(err, fmt.Sprintf("portfolio %q", name))
	}
	return p, nil
}

// LatestPortfolio is the most recently created portfolio.
func (j *SQLite) LatestPortfolio(ctx context.Context) (risk.Portfolio, error) {
	var p risk.Portfolio
	err := j.db.GetContext(ctx, &p,
		`SELECT `+portfolioCols+` FROM portfolios ORDER BY created_at DESC, id DESC LIMIT 1`)
	if err != nil {
		return risk.Portfolio{}, notFound(err, "portfolio")
	}
	return p, nil
}

// DeletePortfolio removes the portfolio and, by cascade, its trades.
func (j *SQLite) DeletePortfolio(ctx context.Context, id int64) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM portfolios WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("portfolio %d %w", id, ErrNotFound)
	}
	j.log.Info("portfolio deleted", zap.Int64("id", id))
	return nil
}

const instrumentCols = `id, symbol, pip_size, pip_value_per_lot, contract_size, price, created_at`

// CreateInstrument inserts inst and sets its ID. A symbol already in
// use yields ErrDuplicate.
func (j *SQLite) CreateInstrument(ctx context.Context, inst *market.Instrument) error {
	inst.Symbol = strings.ToUpper(strings.TrimSpace(inst.Symbol))
	if err := inst.Validate(); err != nil {
		return err
	}
	inst.CreatedAt = j.now().UTC()

	res, err := j.db.NamedExecContext(ctx, `
		INSERT INTO instruments (symbol, pip_size, pip_value_per_lot, contract_size, price, created_at)
		VALUES (:symbol, :pip_size, :pip_value_per_lot, :contract_size, :price, :created_at)`, inst)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("instrument %s %w", inst.Symbol, ErrDuplicate)
		}
		return err
	}
	if inst.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	j.log.Debug("instrument created", zap.Int64("id", inst.ID), zap.String("symbol", inst.Symbol))
	return nil
}

// Instruments lists every instrument by symbol.
func (j *SQLite) Instruments(ctx context.Context) ([]market.Instrument, error) {
	var out []market.Instrument
	err := j.db.SelectContext(ctx, &out, `SELECT `+instrumentCols+` FROM instruments ORDER BY symbol ASC`)
	return out, err
}

func (j *SQLite) Instrument(ctx context.Context, id int64) (market.Instrument, error) {
	return getInstrument(ctx, j.db, id)
}

func getInstrument(ctx context.Context, q sqlx.QueryerContext, id int64) (market.Instrument, error) {
	var inst market.Instrument
	err := sqlx.GetContext(ctx, q, &inst, `SELECT `+instrumentCols+` FROM instruments WHERE id = ?`, id)
	if err != nil {
		return market.Instrument{}, notFound(err, fmt.Sprintf("instrument %d", id))
	}
	return inst, nil
}

func (j *SQLite) InstrumentBySymbol(ctx context.Context, symbol string) (market.Instrument, error) {
	var inst market.Instrument
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	err := j.db.GetContext(ctx, &inst, `SELECT `+instrumentCols+` FROM instruments WHERE symbol = ?`, symbol)
	if err != nil {
		return market.Instrument{}, notFound(err, fmt.Sprintf("instrument %s", symbol))
	}
	return inst, nil
}

// SetInstrumentPrice updates the reference price. Trades already logged
// keep the pip values they were recorded with.
func (j *SQLite) SetInstrumentPrice(ctx context.Context, symbol string, price float64) error {
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	res, err := j.db.ExecContext(ctx, `UPDATE instruments SET price = ? WHERE symbol = ?`, price, symbol)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("instrument %s %w", symbol, ErrNotFound)
	}
	j.log.Info("instrument price updated", zap.String("symbol", symbol), zap.Float64("price", price))
	return nil
}
