package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/prompt-builder/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB and creates the session table.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Use a file URI with shared cache so all pool connections share the
	// same in-memory database. Each test gets a unique name to avoid
	// cross-test interference.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_busy_timeout=5000"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return conn
}
