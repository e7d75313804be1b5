// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS portfolios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	balance REAL NOT NULL DEFAULT 25000,
	leverage INTEGER NOT NULL DEFAULT 100,
	daily_loss_limit REAL NOT NULL DEFAULT 1250,
	total_loss_limit REAL NOT NULL DEFAULT 2500,
	risk_per_trade_usd REAL NOT NULL DEFAULT 62.5,
	max_daily_risk_usd REAL NOT NULL DEFAULT 500,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS instruments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL UNIQUE,
	pip_size REAL NOT NULL CHECK (pip_size > 0),
	pip_value_per_lot REAL NOT NULL CHECK (pip_value_per_lot > 0),
	contract_size REAL NOT NULL,
	price REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	seq TEXT NOT NULL UNIQUE,
	portfolio_id INTEGER NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
	instrument_id INTEGER NOT NULL REFERENCES instruments(id),
	date DATE NOT NULL,
	side TEXT NOT NULL CHECK (side IN ('Buy', 'Sell')),
	entry REAL,
	sl REAL,
	tp REAL,
	exit REAL,
	lots REAL NOT NULL DEFAULT 1.0,
	pip_size REAL NOT NULL,
	pip_value_per_lot REAL NOT NULL,
	sl_pips REAL,
	tp_pips REAL,
	result_pips REAL,
	pl_usd REAL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_portfolio_date ON trades(portfolio_id, date);
`
