package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/joestump/prompt-builder/internal/catalog"
	"github.com/joestump/prompt-builder/internal/draft"
	"github.com/joestump/prompt-builder/internal/form"
	"github.com/joestump/prompt-builder/internal/logger"
	"github.com/joestump/prompt-builder/internal/metrics"
)

const flashKey = "flash"

// BuilderPage is the template data for the builder form.
type BuilderPage struct {
	BasePage
	Template      *catalog.Entry
	Values        form.FieldValues
	Response1Rows []RatingRow
	Response2Rows []RatingRow
	Likert        Picker
	Output        string
	AssemblyID    string
	Error         string
}

// BuilderHandler serves the form for one catalog template.
type BuilderHandler struct {
	catalog *catalog.Catalog
	drafts  *draft.Store
	log     *logger.Logger
}

// NewBuilderHandler creates a new BuilderHandler.
func NewBuilderHandler(c *catalog.Catalog, d *draft.Store, log *logger.Logger) *BuilderHandler {
	return &BuilderHandler{catalog: c, drafts: d, log: log}
}

func (h *BuilderHandler) page(r *http.Request, entry *catalog.Entry, v form.FieldValues, flash *Flash) BuilderPage {
	return BuilderPage{
		BasePage:      newBasePage(r, flash),
		Template:      entry,
		Values:        v,
		Response1Rows: ratingRows(response1Prefix, v.Response1Ratings),
		Response2Rows: ratingRows(response2Prefix, v.Response2Ratings),
		Likert:        newPicker("likert", form.LikertScale(), v.Likert),
	}
}

// entry resolves {id} or writes a 404.
func (h *BuilderHandler) entry(w http.ResponseWriter, r *http.Request) (*catalog.Entry, bool) {
	e, err := h.catalog.Get(chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrTemplateNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return e, true
}

// Show serves GET /t/{id}: the form, prefilled from the session draft.
func (h *BuilderHandler) Show(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entry(w, r)
	if !ok {
		return
	}
	v, err := h.drafts.Load(r.Context(), e.ID)
	if err != nil {
		h.log.Warn("discarding unreadable draft", "template", e.ID, "error", err)
		h.drafts.Reset(r.Context(), e.ID)
	}
	var flash *Flash
	if msg := h.drafts.Sessions().PopString(r.Context(), flashKey); msg != "" {
		flash = &Flash{Type: "success", Message: msg}
	}
	render(w, http.StatusOK, "builder.html", h.page(r, e, v, flash))
}

// Save serves POST /t/{id}: stores the posted values as the draft.
func (h *BuilderHandler) Save(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entry(w, r)
	if !ok {
		return
	}
	v, err := decodeValues(r)
	if err != nil {
		h.invalid(w, r, e, v, err)
		return
	}
	if err := h.drafts.Save(r.Context(), e.ID, v); err != nil {
		h.log.Error("save draft", "template", e.ID, "error", err)
		http.Error(w, "could not save draft", http.StatusInternalServerError)
		return
	}
	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.drafts.Sessions().Put(r.Context(), flashKey, "Draft saved.")
	http.Redirect(w, r, "/t/"+e.ID, http.StatusSeeOther)
}

// Assemble serves POST /t/{id}/assemble: saves the draft and renders the
// substituted prompt. HTMX requests get only the output fragment.
func (h *BuilderHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entry(w, r)
	if !ok {
		return
	}
	v, err := decodeValues(r)
	if err != nil {
		h.invalid(w, r, e, v, err)
		return
	}
	if err := h.drafts.Save(r.Context(), e.ID, v); err != nil {
		// The prompt can still be assembled without a saved draft.
		h.log.Warn("save draft", "template", e.ID, "error", err)
	}

	started := time.Now()
	out := e.Assemble(v)
	metrics.ObserveAssembly(e.ID, "web", started, out)

	data := h.page(r, e, v, nil)
	data.Output = out
	data.AssemblyID = uuid.NewString()
	h.log.Info("prompt assembled", "template", e.ID, "assembly_id", data.AssemblyID, "bytes", len(out))

	if isHTMX(r) {
		renderPageFragment(w, http.StatusOK, "builder.html", "output", data)
		return
	}
	render(w, http.StatusOK, "builder.html", data)
}

// Reset serves POST /t/{id}/reset: discards the draft.
func (h *BuilderHandler) Reset(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entry(w, r)
	if !ok {
		return
	}
	h.drafts.Reset(r.Context(), e.ID)
	metrics.DraftResetsTotal.Inc()
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/t/"+e.ID)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.drafts.Sessions().Put(r.Context(), flashKey, "Draft cleared.")
	http.Redirect(w, r, "/t/"+e.ID, http.StatusSeeOther)
}

// invalid re-renders the form with the rejected values and the error.
func (h *BuilderHandler) invalid(w http.ResponseWriter, r *http.Request, e *catalog.Entry, v form.FieldValues, err error) {
	metrics.ValidationFailuresTotal.WithLabelValues("web").Inc()
	h.log.Debug("rejected form post", "template", e.ID, "error", err)
	data := h.page(r, e, v, nil)
	data.Error = err.Error()
	if isHTMX(r) {
		renderPageFragment(w, http.StatusUnprocessableEntity, "builder.html", "output", data)
		return
	}
	render(w, http.StatusUnprocessableEntity, "builder.html", data)
}
