package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joestump/prompt-builder/internal/logger"
)

func newTemplatesCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List catalog templates and their marker issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(templatesDir(cmd, dir), logger.Nop())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tFILE\tISSUES")
			for _, e := range cat.List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", e.ID, e.Title, e.File, len(e.Issues))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, e := range cat.List() {
				for _, issue := range e.Issues {
					fmt.Fprintf(out, "%s: %s\n", e.ID, issue)
				}
			}
			return nil
		},
	}
	addTemplatesDirFlag(cmd, &dir)
	return cmd
}
