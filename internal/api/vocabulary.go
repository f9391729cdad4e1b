package api

import (
	"net/http"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/joestump/prompt-builder/internal/form"
)

// Dimensions lists the rating dimensions and the Likert scale.
// GET /api/v1/dimensions
//
// @Summary      List rating dimensions
// @Description  Dimensions in table order with the scores each accepts, plus the Likert scale.
// @Tags         Vocabulary
// @Produce      json
// @Success      200  {object}  DimensionsResponse
// @Router       /dimensions [get]
func Dimensions(w http.ResponseWriter, r *http.Request) {
	dims := form.Dimensions()
	resp := DimensionsResponse{
		Dimensions: make([]DimensionResponse, 0, len(dims)),
		Likert:     form.LikertScale(),
	}
	for _, d := range dims {
		resp.Dimensions = append(resp.Dimensions, DimensionResponse{
			Name:    string(d),
			Slug:    d.Slug(),
			Allowed: d.Allowed(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
)

// ValuesSchema returns the JSON Schema describing a field-values document,
// as accepted by POST /assemble and the CLI --values flag.
func ValuesSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}
		schema = reflector.Reflect(&form.FieldValues{})
		schema.Title = "Prompt builder field values"
	})
	return schema
}

// Schema returns the JSON Schema of the values object.
// GET /api/v1/schema
//
// @Summary      Field values JSON Schema
// @Tags         Vocabulary
// @Produce      json
// @Success      200  {object}  object
// @Router       /schema [get]
func Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ValuesSchema())
}
