// Package web holds embedded static assets, HTML templates and the default
// prompt catalog.
package web

import "embed"

// TemplateFS contains all HTML templates.
//
//go:embed templates
var TemplateFS embed.FS

// StaticFS contains CSS, JS, and other static assets.
//
//go:embed static
var StaticFS embed.FS

// PromptFS contains the built-in prompt catalog (catalog.yaml and the
// template files it lists).
//
//go:embed prompts
var PromptFS embed.FS
