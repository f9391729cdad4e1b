package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/prompt-builder/internal/catalog"
	"github.com/joestump/prompt-builder/internal/logger"
)

// maxBodyBytes bounds POST /assemble bodies; two long responses plus history
// fit comfortably.
const maxBodyBytes = 8 << 20

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Catalog *catalog.Catalog
	Logger  *logger.Logger
}

// NewAPIRouter creates a chi sub-router for /api/v1. All routes return
// application/json.
func NewAPIRouter(deps Deps) chi.Router {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(jsonContentType)

	templates := &templatesAPIHandler{catalog: deps.Catalog}
	r.Get("/templates", templates.List)
	r.Get("/templates/{id}", templates.Get)

	r.Get("/dimensions", Dimensions)
	r.Get("/schema", Schema)

	assemble := &assembleAPIHandler{catalog: deps.Catalog, log: log}
	r.Post("/assemble", assemble.Assemble)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
