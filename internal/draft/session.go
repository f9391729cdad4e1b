package draft

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/jmoiron/sqlx"
)

// NewSessionStore returns the scs store for kind. db may be nil for "memory".
func NewSessionStore(kind string, db *sqlx.DB) (scs.Store, error) {
	switch kind {
	case "", "memory":
		return memstore.New(), nil
	case "mysql", "postgres", "sqlite3":
		if db == nil {
			return nil, fmt.Errorf("session store %q needs a database", kind)
		}
	default:
		return nil, fmt.Errorf("unsupported session store %q", kind)
	}
	switch kind {
	case "mysql":
		return mysqlstore.New(db.DB), nil
	case "postgres":
		return postgresstore.New(db.DB), nil
	default:
		return sqlite3store.New(db.DB), nil
	}
}

// NewSessionManager creates the scs session manager that carries drafts.
func NewSessionManager(store scs.Store, lifetime time.Duration, secureCookies bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = store
	sm.Lifetime = lifetime
	sm.IdleTimeout = lifetime
	sm.Cookie.Name = "pb_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secureCookies
	return sm
}
