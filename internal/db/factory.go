// Package db opens the optional SQL database that backs draft sessions.
package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// sqlDrivers maps a session store kind to its database/sql driver name.
// modernc/sqlite registers as "sqlite" (CGO-free).
var sqlDrivers = map[string]string{
	"sqlite3":  "sqlite",
	"mysql":    "mysql",
	"postgres": "postgres",
}

// Open connects to the database for a SQL session store kind and checks it is
// reachable, so a bad PB_SESSION_DSN fails at startup rather than on the
// first form post.
func Open(ctx context.Context, kind, dsn string) (*sqlx.DB, error) {
	driver, ok := sqlDrivers[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported session database %q: must be sqlite3, mysql, or postgres", kind)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", kind, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect %s: %w", kind, err)
	}

	if kind == "sqlite3" {
		// scs cleanup and request writes share the file.
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}
	return db, nil
}
