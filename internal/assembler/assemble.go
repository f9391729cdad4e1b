package assembler

import (
	"strings"

	"github.com/joestump/prompt-builder/internal/form"
)

// Marker names recognised in prompt templates.
const (
	MarkerTaskConfig          = "TASKCONFIG"
	MarkerSystemPrompt        = "SYSTEM_PROMPT"
	MarkerConversationHistory = "CONVERSATION_HISTORY"
	MarkerPrompt              = "PROMPT"
	MarkerResponse1           = "RESPONSE1"
	MarkerResponse2           = "RESPONSE2"
	MarkerResponse1Ratings    = "RESPONSE1_ORIGINAL_RATINGS"
	MarkerResponse2Ratings    = "RESPONSE2_ORIGINAL_RATINGS"
	MarkerLikert              = "ORIGINAL_LIKERT_AND_JUSTIFICATION"
)

// Placeholders written for values the annotator left empty.
const (
	RatingPlaceholder        = "[leave blank]"
	JustificationPlaceholder = "[...]"
	LikertPlaceholder        = "Likert: [1..7 or leave blank]\nJustification: [...]"
)

const (
	ratingsHeader    = "| Dimension                     | Rating                       | Justification |"
	ratingsSeparator = "| ----------------------------- | ---------------------------- | ------------- |"
)

var markers = []string{
	MarkerTaskConfig,
	MarkerSystemPrompt,
	MarkerConversationHistory,
	MarkerPrompt,
	MarkerResponse1,
	MarkerResponse2,
	MarkerResponse1Ratings,
	MarkerResponse2Ratings,
	MarkerLikert,
}

// Markers returns the standard marker names in substitution order.
func Markers() []string {
	out := make([]string, len(markers))
	copy(out, markers)
	return out
}

// Assemble substitutes values into tmpl. Markers missing from tmpl are
// skipped and malformed ones are left as they are; Assemble never fails.
func Assemble(tmpl string, values form.FieldValues) string {
	return Parse(tmpl).Render(Slots(values))
}

// Slots renders the content for every standard marker.
func Slots(v form.FieldValues) map[string]string {
	return map[string]string{
		MarkerTaskConfig:          v.TaskConfig,
		MarkerSystemPrompt:        v.SystemPrompt,
		MarkerConversationHistory: v.ConversationHistory,
		MarkerPrompt:              v.Prompt,
		MarkerResponse1:           v.Response1,
		MarkerResponse2:           v.Response2,
		MarkerResponse1Ratings:    RatingsTable(v.Response1Ratings),
		MarkerResponse2Ratings:    RatingsTable(v.Response2Ratings),
		MarkerLikert:              Likert(v.Likert, v.LikertJustification),
	}
}

// RatingsTable renders a markdown table with one row per dimension in
// declaration order. Unrated dimensions still get a row, filled with
// placeholders. The table is preceded by an empty line.
func RatingsTable(r form.Ratings) string {
	dims := form.Dimensions()
	lines := make([]string, 0, len(dims)+3)
	lines = append(lines, "", ratingsHeader, ratingsSeparator)
	for _, d := range dims {
		dr := r.Get(d)
		rating := RatingPlaceholder
		if dr.Rating != nil {
			rating = dr.Rating.String()
		}
		lines = append(lines, "| "+string(d)+" | "+rating+" | "+orPlaceholder(dr.Justification)+" |")
	}
	return strings.Join(lines, "\n")
}

// Likert renders the overall score block. Without a score the justification
// is dropped and the range placeholder is returned.
func Likert(score *form.Score, justification string) string {
	if score == nil {
		return LikertPlaceholder
	}
	return "Likert: " + score.String() + "\nJustification: " + orPlaceholder(justification)
}

func orPlaceholder(s string) string {
	if s == "" {
		return JustificationPlaceholder
	}
	return s
}
