// Package catalog loads the prompt templates the builder offers.
//
// A catalog is a directory (or embedded FS) holding a catalog.yaml manifest
// and the template files it lists:
//
//	templates:
//	  - id: pairwise
//	    title: Apron Evals Prompt Builder
//	    description: Fill in the fields below to generate the full prompt.
//	    file: prompt-format.md
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/joestump/prompt-builder/internal/assembler"
	"github.com/joestump/prompt-builder/internal/form"
	"github.com/joestump/prompt-builder/internal/logger"
)

// ManifestName is the manifest file read from the catalog root.
const ManifestName = "catalog.yaml"

var (
	// ErrTemplateNotFound is returned by Get for an unknown id.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrEmptyCatalog is returned when the manifest lists no templates.
	ErrEmptyCatalog = errors.New("catalog lists no templates")
)

// Manifest is the decoded catalog.yaml.
type Manifest struct {
	Templates []ManifestEntry `yaml:"templates"`
}

// ManifestEntry describes one template file.
type ManifestEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	File        string `yaml:"file"`
}

// Entry is a loaded, parsed template.
type Entry struct {
	ID          string
	Title       string
	Description string
	File        string
	Template    *assembler.Template
	Issues      []assembler.Issue
}

// Content returns the raw template text.
func (e *Entry) Content() string { return e.Template.Source() }

// Catalog is the current set of templates. Reload swaps the whole set at once,
// so readers see either the old catalog or the new one.
type Catalog struct {
	fsys fs.FS
	dir  string
	log  *logger.Logger

	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]*Entry
}

// Load reads a catalog from fsys.
func Load(fsys fs.FS, log *logger.Logger) (*Catalog, error) {
	if log == nil {
		log = logger.Nop()
	}
	c := &Catalog{fsys: fsys, log: log}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads a catalog from a directory on disk. Catalogs opened this way can
// be watched for changes.
func Open(dir string, log *logger.Logger) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open catalog: %s is not a directory", dir)
	}
	if log == nil {
		log = logger.Nop()
	}
	c := &Catalog{fsys: os.DirFS(dir), dir: dir, log: log}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the manifest and every template. On error the current
// catalog is left untouched.
func (c *Catalog) Reload() error {
	entries, err := read(c.fsys)
	if err != nil {
		return err
	}
	byID := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
		for _, issue := range e.Issues {
			c.log.Warn("template marker issue", "template", e.ID, "file", e.File, "issue", issue.String())
		}
	}

	c.mu.Lock()
	c.entries = entries
	c.byID = byID
	c.mu.Unlock()

	c.log.Info("catalog loaded", "templates", len(entries))
	return nil
}

func read(fsys fs.FS) ([]*Entry, error) {
	raw, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	if len(m.Templates) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := map[string]bool{}
	entries := make([]*Entry, 0, len(m.Templates))
	for _, me := range m.Templates {
		if err := ValidateID(me.ID); err != nil {
			return nil, err
		}
		if seen[me.ID] {
			return nil, fmt.Errorf("%w: %q", ErrIDDuplicate, me.ID)
		}
		seen[me.ID] = true

		if me.File == "" {
			return nil, fmt.Errorf("template %q: file is required", me.ID)
		}
		src, err := fs.ReadFile(fsys, me.File)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", me.ID, err)
		}

		tmpl := assembler.Parse(string(src))
		title := me.Title
		if title == "" {
			title = me.ID
		}
		entries = append(entries, &Entry{
			ID:          me.ID,
			Title:       title,
			Description: me.Description,
			File:        me.File,
			Template:    tmpl,
			Issues:      tmpl.Lint(),
		})
	}
	return entries, nil
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return e, nil
}

// List returns all templates in manifest order.
func (c *Catalog) List() []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Default returns the first template in the manifest.
func (c *Catalog) Default() *Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[0]
}

// Dir returns the directory the catalog was opened from, or "" for an
// embedded catalog.
func (c *Catalog) Dir() string { return c.dir }

// Assemble substitutes values into the entry's template.
func (e *Entry) Assemble(values form.FieldValues) string {
	return e.Template.Render(assembler.Slots(values))
}
