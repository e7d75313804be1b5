// journal/journal.go
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
)

var (
	// ErrDuplicate is returned when a portfolio name or instrument
	// symbol is already taken. The existing row is left untouched.
	ErrDuplicate = errors.New("already exists")
	ErrNotFound  = errors.New("not found")
)

// Trade is one journal entry. Derived fields are computed once, when
// the trade is recorded, from the instrument as it was at that moment.
type Trade struct {
	ID           int64     `db:"id"`
	Seq          string    `db:"seq"` // ULID, creation order
	PortfolioID  int64     `db:"portfolio_id"`
	InstrumentID int64     `db:"instrument_id"`
	Symbol       string    `db:"symbol"` // from instruments, read only
	Date         time.Time `db:"date"`
	risk.Legs
	risk.Derived
	CreatedAt time.Time `db:"created_at"`
}

// Derive fills the derived fields in place from inst.
func (t *Trade) Derive(inst market.Instrument) {
	t.Derived = risk.DeriveTradeFields(t.Legs, inst)
}

// PLEntry is the slice of a trade the rollups need. PL is nil for open
// trades.
type PLEntry struct {
	Date time.Time `db:"date"`
	PL   *float64  `db:"pl_usd"`
}

// Registry is the portfolio and instrument side of the store.
type Registry interface {
	CreatePortfolio(ctx context.Context, p *risk.Portfolio) error
	PortfolioByName(ctx context.Context, name string) (risk.Portfolio, error)
	CreateInstrument(ctx context.Context, inst *market.Instrument) error
	InstrumentBySymbol(ctx context.Context, symbol string) (market.Instrument, error)
}

// Journal records and reads back trades.
type Journal interface {
	AddTrade(ctx context.Context, t *Trade) error
	GetTrade(ctx context.Context, id int64) (Trade, error)
	Trades(ctx context.Context, portfolioID int64) ([]Trade, error)
	PLEntries(ctx context.Context, portfolioID int64) ([]PLEntry, error)
	Close() error
}

// Day truncates t to its calendar date in UTC. Trades are grouped by
// this value.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
