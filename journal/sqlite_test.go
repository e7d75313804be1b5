package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, opts ...Option) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

// seeded returns a store with XAUUSD, BTCUSD and one portfolio.
func seeded(t *testing.T, opts ...Option) (*SQLite, risk.Portfolio, market.Instrument) {
	t.Helper()

	j, _ := newTestSQLite(t, opts...)
	ctx := context.Background()
	require.NoError(t, Bootstrap(ctx, j, Seeds{
		Instruments: market.DefaultInstruments,
		Portfolios:  []risk.Portfolio{risk.DefaultPortfolio},
	}, nil))

	p, err := j.PortfolioByName(ctx, risk.DefaultPortfolio.Name)
	require.NoError(t, err)
	inst, err := j.InstrumentBySymbol(ctx, "XAUUSD")
	require.NoError(t, err)
	return j, p, inst
}

func fp(v float64) *float64 { return &v }

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var names []string
	err = db.Select(&names, `SELECT name FROM sqlite_master WHERE type='table' AND name IN ('portfolios','instruments','trades') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"instruments", "portfolios", "trades"}, names)
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, path := newTestSQLite(t)
	p := risk.NewPortfolio("Reopen")
	require.NoError(t, j.CreatePortfolio(ctx, &p))
	require.NoError(t, j.Close())

	j2, err := NewSQLite(path)
	require.NoError(t, err)
	defer j2.Close()

	got, err := j2.PortfolioByName(ctx, "Reopen")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.db?_fk=1&_busy_timeout=5000", dsn("a.db"))
	assert.Equal(t, "file:a.db?mode=rwc&_fk=1&_busy_timeout=5000", dsn("file:a.db?mode=rwc"))
}
