package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/joestump/prompt-builder/internal/api"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a values file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(api.ValuesSchema())
		},
	}
}
