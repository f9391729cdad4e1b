// Package form defines the field-value record an annotator fills in and the
// controlled vocabularies its rating widgets draw from.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dimension is one of the fixed evaluation criteria a response is rated on.
type Dimension string

const (
	Localization         Dimension = "Localization"
	InstructionFollowing Dimension = "Instruction Following"
	Truthfulness         Dimension = "Truthfulness"
	Verbosity            Dimension = "Verbosity"
	StyleClarity         Dimension = "Style & Clarity"
	HarmlessnessSafety   Dimension = "Harmlessness/Safety"
	OverallQuality       Dimension = "Overall Quality"
)

// Score is a rating value. Which scores are legal depends on the dimension.
type Score int

var (
	// ErrUnknownDimension is returned when a rating names a dimension outside the fixed set.
	ErrUnknownDimension = errors.New("unknown rating dimension")

	// ErrRatingOutOfRange is returned when a score is not in the dimension's allowed set.
	ErrRatingOutOfRange = errors.New("rating is not an allowed value for this dimension")

	// ErrLikertOutOfRange is returned when the Likert score is outside 1..7.
	ErrLikertOutOfRange = errors.New("likert rating must be between 1 and 7")

	// ErrScoreFormat is returned when a score cannot be parsed as an integer.
	ErrScoreFormat = errors.New("score must be an integer")

	dimensions = []Dimension{
		Localization,
		InstructionFollowing,
		Truthfulness,
		Verbosity,
		StyleClarity,
		HarmlessnessSafety,
		OverallQuality,
	}

	threePoint = []Score{1, 2, 3}

	allowed = map[Dimension][]Score{
		Localization:         threePoint,
		InstructionFollowing: threePoint,
		Truthfulness:         threePoint,
		Verbosity:            {-2, -1, 0, 1, 2},
		StyleClarity:         threePoint,
		HarmlessnessSafety:   threePoint,
		OverallQuality:       {1, 2, 3, 4, 5},
	}

	likertScale = []Score{1, 2, 3, 4, 5, 6, 7}
)

// Dimensions returns every dimension in declaration order. The slice is a copy.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensions))
	copy(out, dimensions)
	return out
}

// LikertScale returns the allowed Likert scores, 1 through 7.
func LikertScale() []Score {
	out := make([]Score, len(likertScale))
	copy(out, likertScale)
	return out
}

// Valid reports whether d is one of the fixed dimensions.
func (d Dimension) Valid() bool {
	_, ok := allowed[d]
	return ok
}

// Allowed returns the scores d accepts, in ascending order.
func (d Dimension) Allowed() []Score {
	set := allowed[d]
	out := make([]Score, len(set))
	copy(out, set)
	return out
}

// Accepts reports whether s is in d's allowed set.
func (d Dimension) Accepts(s Score) bool {
	for _, v := range allowed[d] {
		if v == s {
			return true
		}
	}
	return false
}

// Signed reports whether the dimension uses a range centred on zero.
func (d Dimension) Signed() bool {
	set := allowed[d]
	return len(set) > 0 && set[0] < 0
}

// Slug is a form-safe identifier for d, e.g. "style-clarity".
func (d Dimension) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(string(d)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DimensionFromSlug is the inverse of Dimension.Slug.
func DimensionFromSlug(slug string) (Dimension, bool) {
	for _, d := range dimensions {
		if d.Slug() == slug {
			return d, true
		}
	}
	return "", false
}

func (s Score) String() string {
	return strconv.Itoa(int(s))
}

// ParseScore parses a form value. An empty (or all-space) string means unset
// and yields nil.
func ParseScore(raw string) (*Score, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrScoreFormat, raw)
	}
	s := Score(n)
	return &s, nil
}

// ScorePtr returns a pointer to s.
func ScorePtr(s Score) *Score {
	return &s
}
