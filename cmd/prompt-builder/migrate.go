package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/prompt-builder/internal/config"
	"github.com/joestump/prompt-builder/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the session table for a SQL session store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesSQL() {
				fmt.Fprintln(cmd.OutOrStdout(), "session store is memory; nothing to migrate")
				return nil
			}

			database, err := db.Open(cmd.Context(), cfg.Session.Store, cfg.Session.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.Session.Store); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations complete")
			return nil
		},
	}
}
