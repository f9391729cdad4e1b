package form

import "fmt"

// DimensionRating is the rating and note given for one dimension.
type DimensionRating struct {
	Rating        *Score `json:"rating" yaml:"rating" jsonschema:"description=Score from the dimension's allowed set; null when unrated"`
	Justification string `json:"justification" yaml:"justification"`
}

// Ratings holds one response's per-dimension ratings. Dimensions the
// annotator never touched are absent.
type Ratings map[Dimension]DimensionRating

// FieldValues is everything an annotator enters on the form.
type FieldValues struct {
	TaskConfig          string  `json:"task_config" yaml:"task_config"`
	SystemPrompt        string  `json:"system_prompt" yaml:"system_prompt"`
	ConversationHistory string  `json:"conversation_history" yaml:"conversation_history"`
	Prompt              string  `json:"prompt" yaml:"prompt"`
	Response1           string  `json:"response1" yaml:"response1"`
	Response2           string  `json:"response2" yaml:"response2"`
	Response1Ratings    Ratings `json:"response1_ratings,omitempty" yaml:"response1_ratings,omitempty"`
	Response2Ratings    Ratings `json:"response2_ratings,omitempty" yaml:"response2_ratings,omitempty"`
	Likert              *Score  `json:"likert" yaml:"likert" jsonschema:"minimum=1,maximum=7"`
	LikertJustification string  `json:"likert_justification" yaml:"likert_justification"`
}

// Get returns the rating for d. The zero value means unrated.
func (r Ratings) Get(d Dimension) DimensionRating {
	return r[d]
}

// Set records a score for d, keeping any justification. A nil score clears
// the rating; the entry is dropped once both parts are empty.
func (r *Ratings) Set(d Dimension, s *Score) {
	r.update(d, func(dr *DimensionRating) { dr.Rating = s })
}

// SetJustification records the note for d, keeping any score.
func (r *Ratings) SetJustification(d Dimension, text string) {
	r.update(d, func(dr *DimensionRating) { dr.Justification = text })
}

func (r *Ratings) update(d Dimension, fn func(*DimensionRating)) {
	if *r == nil {
		*r = Ratings{}
	}
	dr := (*r)[d]
	fn(&dr)
	if dr.Rating == nil && dr.Justification == "" {
		delete(*r, d)
		return
	}
	(*r)[d] = dr
}

// Validate checks every rating against its dimension's allowed set.
func (r Ratings) Validate() error {
	for _, d := range dimensions {
		dr, ok := r[d]
		if !ok || dr.Rating == nil {
			continue
		}
		if !d.Accepts(*dr.Rating) {
			return fmt.Errorf("%s: %w: %d", d, ErrRatingOutOfRange, *dr.Rating)
		}
	}
	for d := range r {
		if !d.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownDimension, string(d))
		}
	}
	return nil
}

// Validate checks the controlled-vocabulary fields. Free text is never rejected.
func (v FieldValues) Validate() error {
	if err := v.Response1Ratings.Validate(); err != nil {
		return fmt.Errorf("response 1 ratings: %w", err)
	}
	if err := v.Response2Ratings.Validate(); err != nil {
		return fmt.Errorf("response 2 ratings: %w", err)
	}
	if v.Likert != nil && (*v.Likert < 1 || *v.Likert > 7) {
		return fmt.Errorf("%w: got %d", ErrLikertOutOfRange, *v.Likert)
	}
	return nil
}

// IsZero reports whether nothing has been entered.
func (v FieldValues) IsZero() bool {
	return v.TaskConfig == "" && v.SystemPrompt == "" && v.ConversationHistory == "" &&
		v.Prompt == "" && v.Response1 == "" && v.Response2 == "" &&
		len(v.Response1Ratings) == 0 && len(v.Response2Ratings) == 0 &&
		v.Likert == nil && v.LikertJustification == ""
}
