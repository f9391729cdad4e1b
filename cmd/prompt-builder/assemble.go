package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joestump/prompt-builder/internal/assembler"
	"github.com/joestump/prompt-builder/internal/form"
	"github.com/joestump/prompt-builder/internal/logger"
	"github.com/joestump/prompt-builder/internal/metrics"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

type assembleOptions struct {
	templateFile string
	templateID   string
	templatesDir string
	valuesFile   string
	outFile      string
	copy         bool
}

func newAssembleCmd() *cobra.Command {
	var opts assembleOptions
	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Fill a values file into a template",
		Long: `Fill a values file (JSON or YAML, "-" for stdin) into a template and write
the prompt to stdout, a file, or the system clipboard.

Run "prompt-builder schema" for the values file format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.templateFile, "template-file", "f", "", "template file to fill")
	f.StringVarP(&opts.templateID, "template-id", "t", "", "catalog template id")
	f.StringVar(&opts.valuesFile, "values", "", `values file (JSON or YAML); "-" reads stdin`)
	f.StringVarP(&opts.outFile, "out", "o", "", "write the prompt to this file")
	f.BoolVarP(&opts.copy, "copy", "c", false, "copy the prompt to the system clipboard")
	addTemplatesDirFlag(cmd, &opts.templatesDir)
	cmd.MarkFlagsMutuallyExclusive("template-file", "template-id")
	cmd.MarkFlagsOneRequired("template-file", "template-id")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func runAssemble(cmd *cobra.Command, opts assembleOptions) error {
	values, err := readValues(cmd.InOrStdin(), opts.valuesFile)
	if err != nil {
		return err
	}
	if err := values.Validate(); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("cli").Inc()
		return fmt.Errorf("invalid values: %w", err)
	}

	started := time.Now()
	var out, label string
	if opts.templateID != "" {
		cat, err := openCatalog(templatesDir(cmd, opts.templatesDir), logger.Nop())
		if err != nil {
			return err
		}
		e, err := cat.Get(opts.templateID)
		if err != nil {
			return err
		}
		out, label = e.Assemble(values), e.ID
	} else {
		src, err := os.ReadFile(opts.templateFile)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		out, label = assembler.Assemble(string(src), values), "raw"
	}
	metrics.ObserveAssembly(label, "cli", started, out)

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if opts.copy {
		if err := clipboardWriteAll(out); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Prompt copied to clipboard!")
			return nil
		}
	} else if opts.outFile != "" {
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// readValues decodes a values document. JSON input is decoded as JSON; anything
// else as YAML. Unknown fields are rejected either way.
func readValues(stdin io.Reader, path string) (form.FieldValues, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return form.FieldValues{}, fmt.Errorf("read values: %w", err)
	}

	var v form.FieldValues
	if json.Valid(raw) {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return form.FieldValues{}, fmt.Errorf("parse values: %w", err)
		}
		return v, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return form.FieldValues{}, fmt.Errorf("parse values: %w", err)
	}
	return v, nil
}
