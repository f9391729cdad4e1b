package api

import (
	"github.com/joestump/prompt-builder/internal/assembler"
	"github.com/joestump/prompt-builder/internal/form"
)

// --- Template types ---

// TemplateResponse describes one catalog template.
type TemplateResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Markers     []string `json:"markers"`
}

// TemplateListResponse is the paginated response for GET /templates.
type TemplateListResponse struct {
	Templates  []TemplateResponse `json:"templates"`
	NextCursor *string            `json:"next_cursor"`
}

// TemplateDetailResponse is one template with its raw content and any
// marker problems.
type TemplateDetailResponse struct {
	TemplateResponse
	Content string            `json:"content"`
	Issues  []assembler.Issue `json:"issues"`
}

// --- Vocabulary types ---

// DimensionResponse is one rating dimension and the scores it accepts.
type DimensionResponse struct {
	Name    string       `json:"name"`
	Slug    string       `json:"slug"`
	Allowed []form.Score `json:"allowed"`
}

// DimensionsResponse lists every dimension in table order plus the Likert scale.
type DimensionsResponse struct {
	Dimensions []DimensionResponse `json:"dimensions"`
	Likert     []form.Score        `json:"likert"`
}

// --- Assembly types ---

// AssembleRequest is the request body for POST /assemble. Exactly one of
// TemplateID or Template must be set.
type AssembleRequest struct {
	TemplateID string           `json:"template_id,omitempty"`
	Template   string           `json:"template,omitempty"`
	Values     form.FieldValues `json:"values"`
}

// AssembleResponse carries the substituted prompt.
type AssembleResponse struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id,omitempty"`
	Output     string `json:"output"`
}
