package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/tradeplan/pkg/id"
	"go.uber.org/zap"
)

// SQLite is the journal store. Each method acquires what it needs from
// the connection pool for the duration of the call only.
type SQLite struct {
	db          *sqlx.DB
	log         *zap.Logger
	zeroIsUnset bool
	seq         *id.Generator
	now         func() time.Time
}

type Option func(*SQLite)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(j *SQLite) {
		if l != nil {
			j.log = l
		}
	}
}

// WithZeroAsUnset makes AddTrade treat a price of exactly 0 as not
// entered.
func WithZeroAsUnset(on bool) Option {
	return func(j *SQLite) { j.zeroIsUnset = on }
}

// NewSQLite opens (creating if needed) the database at path with
// foreign keys enforced and applies the schema.
func NewSQLite(path string, opts ...Option) (*SQLite, error) {
	db, err := sqlx.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	j := &SQLite{
		db:  db,
		log: zap.NewNop(),
		seq: id.NewGenerator(),
		now: time.Now,
	}
	for _, o := range opts {
		o(j)
	}
	return j, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_fk=1&_busy_timeout=5000"
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// withTx runs fn in a transaction, rolling back on any error.
func (j *SQLite) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := j.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}
