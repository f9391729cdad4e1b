package handler

import (
	"encoding/json"
	"net/http"

	"github.com/joestump/prompt-builder/internal/build"
	"github.com/joestump/prompt-builder/internal/catalog"
)

// healthz reports liveness and how many templates are loaded.
func healthz(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"version":   build.Version,
			"templates": len(c.List()),
		})
	}
}
