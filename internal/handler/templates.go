package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/joestump/prompt-builder/internal/build"
	"github.com/joestump/prompt-builder/web"
)

const (
	themeLight = "pb-light"
	themeDark  = "pb-dark"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Theme   string // "pb-light", "pb-dark", or "" (let inline script decide)
	Version string
	Flash   *Flash
}

func newBasePage(r *http.Request, flash *Flash) BasePage {
	return BasePage{Theme: themeFromRequest(r), Version: build.Version, Flash: flash}
}

// themeFromRequest reads the "theme" cookie. Returns "" if absent or invalid,
// so the server omits data-theme and lets the anti-flash inline script handle it.
func themeFromRequest(r *http.Request) string {
	c, err := r.Cookie("theme")
	if err != nil {
		return ""
	}
	if c.Value == themeLight || c.Value == themeDark {
		return c.Value
	}
	return ""
}

// pageCache maps a page file name (e.g. "builder.html") to a compiled template
// set containing base.html + partials + that one page file. Each page gets its
// own set so {{define "content"}} blocks don't collide.
var pageCache map[string]*template.Template

func init() {
	partials, err := fs.Glob(web.TemplateFS, "templates/partials/*.html")
	if err != nil {
		panic("glob partials: " + err.Error())
	}

	pageCache = make(map[string]*template.Template)
	err = fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").ParseFS(web.TemplateFS, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// Flash represents a one-time notification message shown to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// isHTMX returns true when the request was sent by HTMX or by app.js, which
// sets the same header when it wants a fragment back.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render executes a full-page template (base layout + named page).
func render(w http.ResponseWriter, status int, page string, data any) {
	renderPageFragment(w, status, page, "base", data)
}

// renderPageFragment executes a named template from a specific page's
// template set, e.g. the "output" block of builder.html. Output is buffered so
// a template error never produces a half-written page.
func renderPageFragment(w http.ResponseWriter, status int, page, tmpl string, data any) {
	t, ok := pageCache[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, tmpl, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
