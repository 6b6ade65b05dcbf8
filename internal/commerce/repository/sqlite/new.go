package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"customer-support/internal/commerce/repository"
	"customer-support/pkg/log"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `
	CREATE TABLE IF NOT EXISTS refund_logs (
		log_id         TEXT PRIMARY KEY,
		transaction_id TEXT UNIQUE,
		order_id       TEXT NOT NULL,
		amount         REAL NOT NULL,
		fee            REAL NOT NULL,
		reason         TEXT NOT NULL,
		method         TEXT NOT NULL,
		status         TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		completed_at   TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_refund_logs_order ON refund_logs(order_id);`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

var _ repository.TransactionLog = (*implRepository)(nil)

// Open opens the SQLite database at dsn and applies the schema.
// In-memory databases are pinned to a single connection so every query sees the same data.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open transaction log: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply transaction log schema: %w", err)
	}
	return db, nil
}

// New creates a SQLite-backed TransactionLog.
func New(db *sql.DB, l log.Logger, now func() time.Time) repository.TransactionLog {
	if db == nil {
		panic("commerce/repository/sqlite: db is required")
	}
	if now == nil {
		now = time.Now
	}
	return &implRepository{db: db, l: l, now: now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("commerce/repository/sqlite.%s", method)
}
