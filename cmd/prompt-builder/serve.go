package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joestump/prompt-builder/internal/build"
	"github.com/joestump/prompt-builder/internal/catalog"
	"github.com/joestump/prompt-builder/internal/config"
	"github.com/joestump/prompt-builder/internal/db"
	"github.com/joestump/prompt-builder/internal/draft"
	"github.com/joestump/prompt-builder/internal/handler"
	"github.com/joestump/prompt-builder/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log.Mode)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	cat, err := openCatalog(cfg.Templates.Dir, log)
	if err != nil {
		return err
	}

	var database *sqlx.DB
	if cfg.UsesSQL() {
		database, err = db.Open(ctx, cfg.Session.Store, cfg.Session.DSN)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close() }()

		if err := db.Migrate(database, cfg.Session.Store); err != nil {
			return err
		}
	}

	store, err := draft.NewSessionStore(cfg.Session.Store, database)
	if err != nil {
		return err
	}
	drafts := draft.New(draft.NewSessionManager(store, cfg.Session.Lifetime, !cfg.Session.InsecureCookies))

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: handler.NewRouter(handler.Deps{
			Catalog: cat,
			Drafts:  drafts,
			Logger:  log,
			Metrics: cfg.Metrics.Enabled,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.HTTP.Addr, "version", build.Version, "session_store", cfg.Session.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.Templates.Watch {
		g.Go(func() error {
			return cat.Watch(gctx, catalog.DefaultDebounce)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
