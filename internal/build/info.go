// Package build exposes build-time metadata injected via ldflags.
package build

// Version, Commit, and Branch are set at build time by:
//
//	-ldflags "-X github.com/joestump/prompt-builder/internal/build.Version=... ..."
//
// They appear in the page footer, /healthz and "prompt-builder version".
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)
