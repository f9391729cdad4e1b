package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/prompt-builder/internal/catalog"
)

// templatesAPIHandler provides the catalog endpoints.
type templatesAPIHandler struct {
	catalog *catalog.Catalog
}

func templateResponse(e *catalog.Entry) TemplateResponse {
	markers := e.Template.Markers()
	if markers == nil {
		markers = []string{}
	}
	return TemplateResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Markers:     markers,
	}
}

// List returns catalog templates in manifest order.
// GET /api/v1/templates
//
// @Summary      List templates
// @Description  Returns the prompt templates in catalog order. Paginated by opaque cursor.
// @Tags         Templates
// @Produce      json
// @Param        cursor  query     string  false  "Pagination cursor"
// @Param        limit   query     int     false  "Page size (default 50, max 200)"
// @Success      200     {object}  TemplateListResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /templates [get]
func (h *templatesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), codeBadRequest)
		return
	}
	entries, next, err := p.slice(h.catalog.List())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), codeBadRequest)
		return
	}

	resp := TemplateListResponse{
		Templates:  make([]TemplateResponse, 0, len(entries)),
		NextCursor: next,
	}
	for _, e := range entries {
		resp.Templates = append(resp.Templates, templateResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one template with its raw content and marker issues.
// GET /api/v1/templates/{id}
//
// @Summary      Get a template
// @Tags         Templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  TemplateDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /templates/{id} [get]
func (h *templatesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.catalog.Get(chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrTemplateNotFound) {
		writeError(w, http.StatusNotFound, "template not found", codeNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL")
		return
	}
	writeJSON(w, http.StatusOK, TemplateDetailResponse{
		TemplateResponse: templateResponse(e),
		Content:          e.Content(),
		Issues:           e.Issues,
	})
}
