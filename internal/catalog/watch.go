package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/joestump/prompt-builder/internal/metrics"
)

// DefaultDebounce batches the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads the catalog whenever a file in its directory changes, until
// ctx is cancelled. A failed reload is logged and the previous catalog stays
// in place. Embedded catalogs have nothing to watch and return immediately.
func (c *Catalog) Watch(ctx context.Context, debounce time.Duration) error {
	if c.dir == "" {
		return nil
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(c.dir); err != nil {
		return fmt.Errorf("watch %s: %w", c.dir, err)
	}
	watched := map[string]bool{filepath.Clean(c.dir): true}
	c.watchTemplateDirs(w, watched)
	c.log.Info("watching catalog", "dir", c.dir, "dirs", len(watched))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&relevant == 0 {
				continue
			}
			c.log.Debug("catalog change", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Warn("catalog watcher error", "error", err)

		case <-fire:
			fire = nil
			if err := c.Reload(); err != nil {
				metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
				c.log.Error("catalog reload failed; keeping previous templates", "error", err)
				continue
			}
			metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
			c.watchTemplateDirs(w, watched)
		}
	}
}

// watchTemplateDirs adds the directory of every template file to w. fsnotify
// is not recursive, so templates under nested/ paths need their own watch.
func (c *Catalog) watchTemplateDirs(w *fsnotify.Watcher, watched map[string]bool) {
	for _, e := range c.List() {
		dir := filepath.Join(c.dir, filepath.Dir(filepath.FromSlash(e.File)))
		if watched[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			c.log.Warn("cannot watch template directory", "dir", dir, "error", err)
			continue
		}
		watched[dir] = true
		c.log.Debug("watching template directory", "dir", dir)
	}
}
