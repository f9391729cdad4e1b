package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joestump/prompt-builder/internal/assembler"
	"github.com/joestump/prompt-builder/internal/catalog"
	"github.com/joestump/prompt-builder/internal/logger"
	"github.com/joestump/prompt-builder/internal/metrics"
)

// assembleAPIHandler provides POST /api/v1/assemble.
type assembleAPIHandler struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

// Assemble substitutes values into a catalog template or a raw template.
// POST /api/v1/assemble
//
// @Summary      Assemble a prompt
// @Description  Substitutes the field values into the template. Give either template_id (catalog) or template (raw text).
// @Tags         Assembly
// @Accept       json
// @Produce      json
// @Param        request  body      AssembleRequest  true  "Template and field values"
// @Success      200      {object}  AssembleResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Router       /assemble [post]
func (h *assembleAPIHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req AssembleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}

	if (req.TemplateID == "") == (req.Template == "") {
		writeError(w, http.StatusBadRequest, "exactly one of template_id or template is required", codeBadRequest)
		return
	}

	if err := req.Values.Validate(); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("api").Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error(), codeValidationFailed)
		return
	}

	started := time.Now()
	var (
		out   string
		label = "raw"
	)
	if req.TemplateID != "" {
		e, err := h.catalog.Get(req.TemplateID)
		if errors.Is(err, catalog.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, "template not found", codeNotFound)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL")
			return
		}
		out = e.Assemble(req.Values)
		label = e.ID
	} else {
		out = assembler.Assemble(req.Template, req.Values)
	}
	metrics.ObserveAssembly(label, "api", started, out)

	id := uuid.NewString()
	h.log.Info("prompt assembled", "template", label, "assembly_id", id, "bytes", len(out))

	w.Header().Set("X-Assembly-ID", id)
	writeJSON(w, http.StatusOK, AssembleResponse{ID: id, TemplateID: req.TemplateID, Output: out})
}
