package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session store kinds.
const (
	SessionMemory   = "memory"
	SessionSQLite   = "sqlite3"
	SessionMySQL    = "mysql"
	SessionPostgres = "postgres"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Templates struct {
		// Dir is a catalog directory on disk; empty means the built-in catalog.
		Dir   string
		Watch bool
	}
	Session struct {
		Store           string
		DSN             string
		Lifetime        time.Duration
		InsecureCookies bool
	}
	Log struct {
		Mode string
	}
	Metrics struct {
		Enabled bool
	}
}

// Load reads config from environment (PB_ prefix) and optional prompt-builder.yaml.
func Load() (*Config, error) {
	return fromViper(newViper())
}

// TemplatesDir returns templates.dir from the same sources as Load. The
// offline CLI commands use it so they read the catalog serve would, without
// requiring valid session settings.
func TemplatesDir() string {
	return newViper().GetString("templates.dir")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("prompt-builder")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("templates.watch", true)
	v.SetDefault("session.store", SessionMemory)
	v.SetDefault("session.lifetime", "12h")
	v.SetDefault("log.mode", "dev")
	v.SetDefault("metrics.enabled", true)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Templates.Dir = v.GetString("templates.dir")
	cfg.Templates.Watch = v.GetBool("templates.watch")
	cfg.Session.Store = strings.ToLower(v.GetString("session.store"))
	cfg.Session.DSN = v.GetString("session.dsn")
	cfg.Session.InsecureCookies = v.GetBool("session.insecure_cookies")
	cfg.Log.Mode = v.GetString("log.mode")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid PB_SESSION_LIFETIME: %w", err)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("PB_SESSION_LIFETIME must be positive, got %s", lifetime)
	}
	cfg.Session.Lifetime = lifetime

	switch cfg.Session.Store {
	case SessionMemory:
	case SessionSQLite, SessionMySQL, SessionPostgres:
		if cfg.Session.DSN == "" {
			return nil, fmt.Errorf("PB_SESSION_DSN is required when PB_SESSION_STORE is %s", cfg.Session.Store)
		}
	default:
		return nil, fmt.Errorf("PB_SESSION_STORE must be memory, sqlite3, mysql, or postgres, got %q", cfg.Session.Store)
	}

	return cfg, nil
}

// UsesSQL reports whether drafts are kept in a SQL database.
func (c *Config) UsesSQL() bool {
	return c.Session.Store != SessionMemory
}
