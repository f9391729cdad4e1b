package main

import (
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/joestump/prompt-builder/internal/catalog"
	"github.com/joestump/prompt-builder/internal/config"
	"github.com/joestump/prompt-builder/internal/logger"
	"github.com/joestump/prompt-builder/web"
)

// openCatalog loads the catalog from dir, or the built-in one when dir is empty.
func openCatalog(dir string, log *logger.Logger) (*catalog.Catalog, error) {
	if dir != "" {
		return catalog.Open(dir, log)
	}
	sub, err := fs.Sub(web.PromptFS, "prompts")
	if err != nil {
		return nil, err
	}
	return catalog.Load(sub, log)
}

// addTemplatesDirFlag registers --templates-dir. When the flag is not given,
// templates.dir from PB_TEMPLATES_DIR or prompt-builder.yaml applies.
func addTemplatesDirFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVar(dst, "templates-dir", "",
		"catalog directory (catalog.yaml + templates); default templates.dir, else the built-in catalog")
}

// templatesDir resolves the catalog directory for cmd.
func templatesDir(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("templates-dir") {
		return flag
	}
	return config.TemplatesDir()
}
