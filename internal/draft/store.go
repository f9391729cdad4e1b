// Package draft keeps the annotator's in-progress field values in their
// browser session, one draft per template.
package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/prompt-builder/internal/form"
)

// Store reads and writes drafts. Every call needs a request context that has
// passed through the session manager's LoadAndSave middleware.
type Store struct {
	sessions *scs.SessionManager
}

// New creates a Store on top of sm.
func New(sm *scs.SessionManager) *Store {
	return &Store{sessions: sm}
}

// Sessions returns the underlying session manager.
func (s *Store) Sessions() *scs.SessionManager { return s.sessions }

func key(templateID string) string { return "draft:" + templateID }

// Load returns the draft for templateID, or empty values when there is none.
func (s *Store) Load(ctx context.Context, templateID string) (form.FieldValues, error) {
	var v form.FieldValues
	raw := s.sessions.GetBytes(ctx, key(templateID))
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return form.FieldValues{}, fmt.Errorf("decode draft %q: %w", templateID, err)
	}
	return v, nil
}

// Save replaces the draft for templateID. Drafts are stored as JSON because
// gob drops pointers to zero and would lose a Verbosity rating of 0.
func (s *Store) Save(ctx context.Context, templateID string, v form.FieldValues) error {
	if v.IsZero() {
		s.sessions.Remove(ctx, key(templateID))
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode draft %q: %w", templateID, err)
	}
	s.sessions.Put(ctx, key(templateID), raw)
	return nil
}

// Reset discards the draft for templateID.
func (s *Store) Reset(ctx context.Context, templateID string) {
	s.sessions.Remove(ctx, key(templateID))
}
