package tracker

import (
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from a name and
// timestamp. Uniqueness holds even for identical names created within the
// same nanosecond; see ids.GenerateUnique.
func GenerateID(name string, timestamp time.Time) string {
	return ids.GenerateUnique(name, timestamp, ids.DefaultLength)
}

// IDIndex indexes entity IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a slice of entity ids.
func NewIDIndex(entityIDs []string) IDIndex {
	return IDIndex{ids: ids.NormalizeUnique(entityIDs)}
}

// Resolve returns the full entity ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}
