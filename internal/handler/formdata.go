package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/joestump/prompt-builder/internal/form"
)

// Form field names for the two ratings tables use a per-response prefix.
const (
	response1Prefix = "r1"
	response2Prefix = "r2"
)

func ratingField(prefix string, d form.Dimension) string {
	return prefix + "." + d.Slug() + ".rating"
}

func justificationField(prefix string, d form.Dimension) string {
	return prefix + "." + d.Slug() + ".justification"
}

// normalizeNewlines undoes the CRLF line endings browsers send for textareas.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// decodeValues reads a builder form post. The returned values are always
// usable for re-rendering the form, even when err is non-nil.
func decodeValues(r *http.Request) (form.FieldValues, error) {
	if err := r.ParseForm(); err != nil {
		return form.FieldValues{}, err
	}
	text := func(name string) string { return normalizeNewlines(r.PostFormValue(name)) }

	v := form.FieldValues{
		TaskConfig:          text("task_config"),
		SystemPrompt:        text("system_prompt"),
		ConversationHistory: text("conversation_history"),
		Prompt:              text("prompt"),
		Response1:           text("response1"),
		Response2:           text("response2"),
		LikertJustification: text("likert_justification"),
	}

	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, side := range []struct {
		prefix string
		dst    *form.Ratings
	}{
		{response1Prefix, &v.Response1Ratings},
		{response2Prefix, &v.Response2Ratings},
	} {
		for _, d := range form.Dimensions() {
			score, err := form.ParseScore(r.PostFormValue(ratingField(side.prefix, d)))
			if err != nil {
				keep(fmt.Errorf("%s: %w", d, err))
			}
			side.dst.Set(d, score)
			side.dst.SetJustification(d, text(justificationField(side.prefix, d)))
		}
	}

	likert, err := form.ParseScore(r.PostFormValue("likert"))
	if err != nil {
		keep(fmt.Errorf("likert: %w", err))
	}
	v.Likert = likert

	if firstErr != nil {
		return v, firstErr
	}
	return v, v.Validate()
}

// Picker is a radio group rendered as a row of toggle buttons.
type Picker struct {
	Name    string
	Options []PickerOption
}

// PickerOption is one button in a Picker. The empty value means "unset".
type PickerOption struct {
	Value    string
	Label    string
	Selected bool
}

func newPicker(name string, scores []form.Score, selected *form.Score) Picker {
	p := Picker{Name: name, Options: make([]PickerOption, 0, len(scores)+1)}
	p.Options = append(p.Options, PickerOption{Value: "", Label: "–", Selected: selected == nil})
	for _, s := range scores {
		p.Options = append(p.Options, PickerOption{
			Value:    s.String(),
			Label:    s.String(),
			Selected: selected != nil && *selected == s,
		})
	}
	return p
}

// RatingRow is one dimension row of a ratings table.
type RatingRow struct {
	Dimension         form.Dimension
	Picker            Picker
	JustificationName string
	Justification     string
}

func ratingRows(prefix string, r form.Ratings) []RatingRow {
	dims := form.Dimensions()
	rows := make([]RatingRow, 0, len(dims))
	for _, d := range dims {
		dr := r.Get(d)
		rows = append(rows, RatingRow{
			Dimension:         d,
			Picker:            newPicker(ratingField(prefix, d), d.Allowed(), dr.Rating),
			JustificationName: justificationField(prefix, d),
			Justification:     dr.Justification,
		})
	}
	return rows
}
