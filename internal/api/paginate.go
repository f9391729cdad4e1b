package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/joestump/prompt-builder/internal/catalog"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// errBadCursor is returned for a cursor that does not name a catalog template.
var errBadCursor = errors.New("invalid cursor")

// page is a parsed ?cursor=&limit= pair. after is the id of the last template
// on the previous page.
type page struct {
	after string
	limit int
}

// parsePage reads cursor and limit from the query. limit defaults to 50 and
// is silently capped at 200; a malformed cursor is an error.
func parsePage(r *http.Request) (page, error) {
	q := r.URL.Query()
	p := page{limit: defaultLimit}

	if l := q.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			p.limit = min(parsed, maxLimit)
		}
	}

	if c := q.Get("cursor"); c != "" {
		b, err := base64.RawURLEncoding.DecodeString(c)
		if err != nil || catalog.ValidateID(string(b)) != nil {
			return page{}, errBadCursor
		}
		p.after = string(b)
	}
	return p, nil
}

// encodeCursor makes the opaque cursor that resumes after template id.
func encodeCursor(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// slice returns the entries on this page and the cursor for the next one, or
// nil on the last page. A cursor naming a template that is no longer in the
// catalog (removed by a reload) is rejected rather than restarting the list.
func (p page) slice(entries []*catalog.Entry) ([]*catalog.Entry, *string, error) {
	start := 0
	if p.after != "" {
		start = -1
		for i, e := range entries {
			if e.ID == p.after {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, nil, errBadCursor
		}
	}

	end := min(start+p.limit, len(entries))
	if end < len(entries) {
		next := encodeCursor(entries[end-1].ID)
		return entries[start:end], &next, nil
	}
	return entries[start:end], nil, nil
}
