package assembler

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/prompt-builder/internal/form"
)

const fullTemplate = `# Task
<TASKCONFIG>paste config</TASKCONFIG>

<SYSTEM_PROMPT>
system goes here
</SYSTEM_PROMPT>

<CONVERSATION_HISTORY></CONVERSATION_HISTORY>

<PROMPT>user prompt</PROMPT>

<RESPONSE1>one</RESPONSE1>
<RESPONSE2>two</RESPONSE2>

<RESPONSE1_ORIGINAL_RATINGS>table</RESPONSE1_ORIGINAL_RATINGS>
<RESPONSE2_ORIGINAL_RATINGS>table</RESPONSE2_ORIGINAL_RATINGS>

<ORIGINAL_LIKERT_AND_JUSTIFICATION>
Likert: ?
</ORIGINAL_LIKERT_AND_JUSTIFICATION>
end
`

func TestAssemble_SinglePrompt(t *testing.T) {
	got := Assemble("<PROMPT></PROMPT>", form.FieldValues{Prompt: "hello"})
	assert.Equal(t, "<PROMPT>\nhello\n</PROMPT>", got)
}

func TestAssemble_PlainFieldsVerbatim(t *testing.T) {
	v := form.FieldValues{
		TaskConfig:          "category: coding",
		SystemPrompt:        "You are helpful.\n\nBe brief.",
		ConversationHistory: "user: hi\nassistant: hello",
		Prompt:              "Write <b>bold</b> text",
		Response1:           "  leading spaces kept  ",
		Response2:           "ünïcödé ✓",
	}
	got := Assemble(fullTemplate, v)

	for marker, want := range map[string]string{
		MarkerTaskConfig:          v.TaskConfig,
		MarkerSystemPrompt:        v.SystemPrompt,
		MarkerConversationHistory: v.ConversationHistory,
		MarkerPrompt:              v.Prompt,
		MarkerResponse1:           v.Response1,
		MarkerResponse2:           v.Response2,
	} {
		block := "<" + marker + ">\n" + want + "\n</" + marker + ">"
		assert.Contains(t, got, block, marker)
	}
	assert.True(t, strings.HasPrefix(got, "# Task\n"))
	assert.True(t, strings.HasSuffix(got, "</ORIGINAL_LIKERT_AND_JUSTIFICATION>\nend\n"))
}

func TestAssemble_EmptyValuesClearContent(t *testing.T) {
	got := Assemble("a <PROMPT>old text</PROMPT> b", form.FieldValues{})
	assert.Equal(t, "a <PROMPT>\n\n</PROMPT> b", got)
}

func TestAssemble_MissingMarkerSkipped(t *testing.T) {
	tmpl := "intro\n<PROMPT>x</PROMPT>\noutro"
	got := Assemble(tmpl, form.FieldValues{Prompt: "p", Response1: "ignored"})
	assert.Equal(t, "intro\n<PROMPT>\np\n</PROMPT>\noutro", got)
}

func TestAssemble_NoMarkersIsIdentity(t *testing.T) {
	tmpl := "nothing to see <here> </here>"
	assert.Equal(t, tmpl, Assemble(tmpl, form.FieldValues{Prompt: "p"}))
}

func TestAssemble_UnclosedMarkerLeftAlone(t *testing.T) {
	tmpl := "<PROMPT>never closed\n<RESPONSE1>r</RESPONSE1>"
	got := Assemble(tmpl, form.FieldValues{Prompt: "p", Response1: "one"})
	assert.Equal(t, "<PROMPT>never closed\n<RESPONSE1>\none\n</RESPONSE1>", got)
}

func TestAssemble_NonGreedy(t *testing.T) {
	tmpl := "<PROMPT>a</PROMPT> middle <PROMPT>b</PROMPT>"
	got := Assemble(tmpl, form.FieldValues{Prompt: "x"})
	assert.Equal(t, "<PROMPT>\nx\n</PROMPT> middle <PROMPT>\nx\n</PROMPT>", got)
}

func TestAssemble_SimilarNamesDoNotCollide(t *testing.T) {
	tmpl := "<SYSTEM_PROMPT>s</SYSTEM_PROMPT><PROMPT>p</PROMPT><RESPONSE1>r</RESPONSE1><RESPONSE1_ORIGINAL_RATINGS>t</RESPONSE1_ORIGINAL_RATINGS>"
	v := form.FieldValues{SystemPrompt: "S", Prompt: "P", Response1: "R"}
	got := Assemble(tmpl, v)
	want := "<SYSTEM_PROMPT>\nS\n</SYSTEM_PROMPT>" +
		"<PROMPT>\nP\n</PROMPT>" +
		"<RESPONSE1>\nR\n</RESPONSE1>" +
		"<RESPONSE1_ORIGINAL_RATINGS>\n" + RatingsTable(nil) + "\n</RESPONSE1_ORIGINAL_RATINGS>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_ValuesAreNotRescanned(t *testing.T) {
	tmpl := "<PROMPT></PROMPT>\n<RESPONSE1></RESPONSE1>"
	v := form.FieldValues{
		Prompt:    "inject <RESPONSE1>gotcha</RESPONSE1>",
		Response1: "real",
	}
	got := Assemble(tmpl, v)
	assert.Equal(t, "<PROMPT>\ninject <RESPONSE1>gotcha</RESPONSE1>\n</PROMPT>\n<RESPONSE1>\nreal\n</RESPONSE1>", got)
}

func TestAssemble_Idempotent(t *testing.T) {
	v := form.FieldValues{Prompt: "p", Likert: form.ScorePtr(4)}
	v.Response1Ratings.Set(form.Verbosity, form.ScorePtr(0))
	first := Assemble(fullTemplate, v)
	second := Assemble(fullTemplate, v)
	assert.Equal(t, first, second)
}

func TestAssemble_LikertUnset(t *testing.T) {
	got := Assemble("<ORIGINAL_LIKERT_AND_JUSTIFICATION>x</ORIGINAL_LIKERT_AND_JUSTIFICATION>", form.FieldValues{
		LikertJustification: "dropped without a score",
	})
	assert.Equal(t, "<ORIGINAL_LIKERT_AND_JUSTIFICATION>\nLikert: [1..7 or leave blank]\nJustification: [...]\n</ORIGINAL_LIKERT_AND_JUSTIFICATION>", got)
}

func TestLikert(t *testing.T) {
	tests := []struct {
		name          string
		score         *form.Score
		justification string
		want          string
	}{
		{name: "unset", score: nil, want: LikertPlaceholder},
		{name: "unset ignores text", score: nil, justification: "why", want: LikertPlaceholder},
		{name: "set without text", score: form.ScorePtr(6), want: "Likert: 6\nJustification: [...]"},
		{name: "set with text", score: form.ScorePtr(1), justification: "R2 is far better", want: "Likert: 1\nJustification: R2 is far better"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Likert(tt.score, tt.justification))
		})
	}
}

func TestRatingsTable_Empty(t *testing.T) {
	got := RatingsTable(nil)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3+7)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, ratingsHeader, lines[1])
	assert.Equal(t, ratingsSeparator, lines[2])
	for i, d := range form.Dimensions() {
		assert.Equal(t, "| "+string(d)+" | [leave blank] | [...] |", lines[3+i])
	}
}

func TestRatingsTable_Partial(t *testing.T) {
	var r form.Ratings
	r.Set(form.Truthfulness, form.ScorePtr(2))
	r.SetJustification(form.Truthfulness, "one factual slip")
	r.Set(form.Verbosity, form.ScorePtr(-2))
	r.SetJustification(form.OverallQuality, "solid")

	want := strings.Join([]string{
		"",
		ratingsHeader,
		ratingsSeparator,
		"| Localization | [leave blank] | [...] |",
		"| Instruction Following | [leave blank] | [...] |",
		"| Truthfulness | 2 | one factual slip |",
		"| Verbosity | -2 | [...] |",
		"| Style & Clarity | [leave blank] | [...] |",
		"| Harmlessness/Safety | [leave blank] | [...] |",
		"| Overall Quality | [leave blank] | solid |",
	}, "\n")
	if diff := cmp.Diff(want, RatingsTable(r)); diff != "" {
		t.Errorf("RatingsTable mismatch (-want +got):\n%s", diff)
	}
}

func TestRatingsTable_ZeroScoreIsNotBlank(t *testing.T) {
	var r form.Ratings
	r.Set(form.Verbosity, form.ScorePtr(0))
	assert.Contains(t, RatingsTable(r), "| Verbosity | 0 | [...] |")
}

func TestRatingsTable_IgnoresUnknownDimensions(t *testing.T) {
	r := form.Ratings{"Creativity": {Rating: form.ScorePtr(3)}}
	assert.Equal(t, RatingsTable(nil), RatingsTable(r))
}
