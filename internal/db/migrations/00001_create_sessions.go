package migrations

// The sessions table layout differs by driver because each scs store adapter
// expects its own column types.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSessions, downCreateSessions)
}

func upCreateSessions(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BYTEA NOT NULL,
    expiry TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS sessions (
    token  CHAR(43) PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry TIMESTAMP(6) NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry REAL NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	if dialect == "mysql" {
		_, err := tx.ExecContext(ctx, `CREATE INDEX sessions_expiry_idx ON sessions (expiry)`)
		return err
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`)
	return err
}

func downCreateSessions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS sessions`)
	return err
}
