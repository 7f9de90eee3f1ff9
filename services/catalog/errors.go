package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned (wrapped) when an identifier is not in the catalog.
var ErrNotFound = errors.New("not found")

// ErrUnknownKind is returned for a collection name the store does not hold.
var ErrUnknownKind = errors.New("unknown catalog kind")

// ConfigError collects every invariant violation found while loading.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

func (e *ConfigError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func notFound(kind Kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
