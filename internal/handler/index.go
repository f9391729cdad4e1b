package handler

import (
	"net/http"

	"github.com/joestump/prompt-builder/internal/catalog"
)

// IndexPage is the template data for the template picker.
type IndexPage struct {
	BasePage
	Templates []*catalog.Entry
}

// IndexHandler serves the template picker.
type IndexHandler struct {
	catalog *catalog.Catalog
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(c *catalog.Catalog) *IndexHandler { return &IndexHandler{catalog: c} }

// Index serves GET /. A catalog with a single template goes straight to its form.
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	entries := h.catalog.List()
	if len(entries) == 1 {
		http.Redirect(w, r, "/t/"+h.catalog.Default().ID, http.StatusFound)
		return
	}
	render(w, http.StatusOK, "index.html", IndexPage{BasePage: newBasePage(r, nil), Templates: entries})
}
