package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrIDEmpty is returned when a manifest entry has no id.
	ErrIDEmpty = errors.New("template id must not be empty")

	// ErrIDFormat is returned when an id does not match the required pattern.
	ErrIDFormat = errors.New("template id must contain only lowercase alphanumeric characters and hyphens, and must not start or end with a hyphen")

	// ErrIDDuplicate is returned when two manifest entries share an id.
	ErrIDDuplicate = errors.New("duplicate template id")

	// idPattern matches a single lowercase alphanumeric character or a string
	// of lowercase alphanumeric characters and hyphens that does not start or
	// end with a hyphen. IDs appear in URLs as /t/{id}.
	idPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)
)

// ValidateID checks that id is usable as a URL path segment.
func ValidateID(id string) error {
	if id == "" {
		return ErrIDEmpty
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrIDFormat, id)
	}
	return nil
}
