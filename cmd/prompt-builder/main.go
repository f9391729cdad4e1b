package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prompt-builder",
		Short:         "Assemble pairwise evaluation prompts from a template",
		Long:          "Prompt Builder fills annotation fields into a prompt template and hands the result to the clipboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAssembleCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
