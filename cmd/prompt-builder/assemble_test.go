package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/prompt-builder/internal/assembler"
	"github.com/joestump/prompt-builder/internal/form"
)

const rawTemplate = "Q:\n<PROMPT>\n</PROMPT>\nR1:\n<RESPONSE1_ORIGINAL_RATINGS>\n</RESPONSE1_ORIGINAL_RATINGS>\n"

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func stubClipboard(t *testing.T, fail error) *string {
	t.Helper()
	var got string
	prev := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		if fail != nil {
			return fail
		}
		got = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = prev })
	return &got
}

func TestAssembleTemplateFileJSON(t *testing.T) {
	tmpl := writeFile(t, "t.md", rawTemplate)
	values := writeFile(t, "v.json", `{"prompt":"hi","response1_ratings":{"Verbosity":{"rating":0,"justification":"ok"}}}`)

	stdout, _, err := runCmd(t, "", "assemble", "--template-file", tmpl, "--values", values)
	require.NoError(t, err)

	want := assembler.Assemble(rawTemplate, form.FieldValues{
		Prompt:           "hi",
		Response1Ratings: form.Ratings{form.Verbosity: {Rating: form.ScorePtr(0), Justification: "ok"}},
	})
	assert.Equal(t, want, stdout)
	assert.Contains(t, stdout, "| Verbosity | 0 | ok |")
}

func TestAssembleYAMLFromStdin(t *testing.T) {
	tmpl := writeFile(t, "t.md", rawTemplate)
	yml := "prompt: |-\n  line one\n  line two\nlikert: 4\n"

	stdout, _, err := runCmd(t, yml, "assemble", "-f", tmpl, "--values", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<PROMPT>\nline one\nline two\n</PROMPT>")
}

func TestAssembleCatalogTemplate(t *testing.T) {
	values := writeFile(t, "v.yaml", "response2: the second\n")

	stdout, _, err := runCmd(t, "", "assemble", "--template-id", "pairwise", "--values", values)
	require.NoError(t, err)
	assert.Contains(t, stdout, "<RESPONSE2>\nthe second\n</RESPONSE2>")
	assert.Contains(t, stdout, assembler.LikertPlaceholder)

	_, _, err = runCmd(t, "", "assemble", "--template-id", "nope", "--values", values)
	assert.Error(t, err)
}

func TestAssembleCopy(t *testing.T) {
	tmpl := writeFile(t, "t.md", "<PROMPT></PROMPT>")
	values := writeFile(t, "v.json", `{"prompt":"copied"}`)

	got := stubClipboard(t, nil)
	stdout, stderr, err := runCmd(t, "", "assemble", "-f", tmpl, "--values", values, "--copy")
	require.NoError(t, err)
	assert.Equal(t, "<PROMPT>\ncopied\n</PROMPT>", *got)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Prompt copied to clipboard!")
}

func TestAssembleCopyFailureFallsBackToStdout(t *testing.T) {
	tmpl := writeFile(t, "t.md", "<PROMPT></PROMPT>")
	values := writeFile(t, "v.json", `{"prompt":"p"}`)

	stubClipboard(t, errors.New("no display"))
	stdout, stderr, err := runCmd(t, "", "assemble", "-f", tmpl, "--values", values, "--copy")
	require.NoError(t, err)
	assert.Equal(t, "<PROMPT>\np\n</PROMPT>", stdout)
	assert.Contains(t, stderr, "Failed to copy to clipboard")
}

func TestAssembleOutFile(t *testing.T) {
	tmpl := writeFile(t, "t.md", "<PROMPT></PROMPT>")
	values := writeFile(t, "v.json", `{"prompt":"p"}`)
	out := filepath.Join(t.TempDir(), "prompt.txt")

	stdout, _, err := runCmd(t, "", "assemble", "-f", tmpl, "--values", values, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<PROMPT>\np\n</PROMPT>", string(data))
}

func TestAssembleErrors(t *testing.T) {
	tmpl := writeFile(t, "t.md", rawTemplate)

	tests := []struct {
		name   string
		values string
		args   []string
	}{
		{name: "no template", values: `{}`, args: []string{}},
		{name: "both templates", values: `{}`, args: []string{"-f", tmpl, "-t", "pairwise"}},
		{name: "out of range likert", values: `{"likert":8}`, args: []string{"-f", tmpl}},
		{name: "out of range rating", values: `{"response2_ratings":{"Overall Quality":{"rating":6}}}`, args: []string{"-f", tmpl}},
		{name: "unknown field", values: `{"promt":"typo"}`, args: []string{"-f", tmpl}},
		{name: "unknown yaml field", values: "promt: typo\n", args: []string{"-f", tmpl}},
		{name: "missing template file", values: `{}`, args: []string{"-f", filepath.Join(t.TempDir(), "gone.md")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := writeFile(t, "v", tt.values)
			args := append([]string{"assemble", "--values", values}, tt.args...)
			_, _, err := runCmd(t, "", args...)
			assert.Error(t, err)
		})
	}
}

func TestTemplatesCommand(t *testing.T) {
	stdout, _, err := runCmd(t, "", "templates", "--templates-dir", "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pairwise")
	assert.Contains(t, stdout, "pairwise-review")
}

func TestTemplatesCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("templates:\n  - id: broken\n    file: b.md\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("<PROMPT> never closed"), 0o644))

	stdout, _, err := runCmd(t, "", "templates", "--templates-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "broken: <PROMPT> has no closing tag")
}

func TestSchemaCommand(t *testing.T) {
	stdout, _, err := runCmd(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"likert_justification"`)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCmd(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "prompt-builder "))
}

func TestCatalogCommandsUseConfigFile(t *testing.T) {
	catalogDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "catalog.yaml"), []byte("templates:\n  - id: mine\n    file: mine.md\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "mine.md"), []byte("<PROMPT></PROMPT>"), 0o644))

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "prompt-builder.yaml"), []byte("templates:\n  dir: "+catalogDir+"\n"), 0o644))
	values := writeFile(t, "v.json", `{"prompt":"from config"}`)
	t.Chdir(workDir)

	stdout, _, err := runCmd(t, "", "assemble", "--template-id", "mine", "--values", values)
	require.NoError(t, err)
	assert.Equal(t, "<PROMPT>\nfrom config\n</PROMPT>", stdout)

	stdout, _, err = runCmd(t, "", "templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mine")
	assert.NotContains(t, stdout, "pairwise")

	// An explicit flag still wins over the config file.
	stdout, _, err = runCmd(t, "", "templates", "--templates-dir", "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pairwise")
}

func TestCatalogCommandsUseEnv(t *testing.T) {
	catalogDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "catalog.yaml"), []byte("templates:\n  - id: from-env\n    file: e.md\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "e.md"), nil, 0o644))
	t.Chdir(t.TempDir())
	t.Setenv("PB_TEMPLATES_DIR", catalogDir)

	stdout, _, err := runCmd(t, "", "templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "from-env")
}
