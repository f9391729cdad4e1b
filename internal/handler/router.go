package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/prompt-builder/docs/swagger"
	"github.com/joestump/prompt-builder/internal/api"
	"github.com/joestump/prompt-builder/internal/catalog"
	"github.com/joestump/prompt-builder/internal/draft"
	"github.com/joestump/prompt-builder/internal/logger"
	"github.com/joestump/prompt-builder/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Catalog *catalog.Catalog
	Drafts  *draft.Store
	Logger  *logger.Logger
	Metrics bool
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css and js/app.js directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Get("/healthz", healthz(deps.Catalog))
	if deps.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Theme toggle needs no session.
	r.Post("/theme", NewThemeHandler().Toggle)

	// Browser UI. Drafts live in the session, so only these routes load it.
	index := NewIndexHandler(deps.Catalog)
	builder := NewBuilderHandler(deps.Catalog, deps.Drafts, log)
	r.Group(func(r chi.Router) {
		r.Use(deps.Drafts.Sessions().LoadAndSave)

		r.Get("/", index.Index)
		r.Get("/t/{id}", builder.Show)
		r.Post("/t/{id}", builder.Save)
		r.Post("/t/{id}/assemble", builder.Assemble)
		r.Post("/t/{id}/reset", builder.Reset)
	})

	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Catalog: deps.Catalog,
		Logger:  log,
	}))

	return r
}
