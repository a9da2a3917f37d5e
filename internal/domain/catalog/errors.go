package catalog

import (
	"errors"
	"fmt"
)

// Sentinel kinds for catalog errors.
var (
	ErrConfigNotFound = errors.New("catalog entry not found")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Lookup kinds reported by ConfigNotFoundError.
const (
	KindPosition = "position"
	KindProfile  = "profile"
)

// ConfigNotFoundError is returned when a position or profile is not in the catalog.
type ConfigNotFoundError struct {
	Kind string
	Name string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.Name)
}

// Unwrap lets errors.Is match ErrConfigNotFound.
func (e *ConfigNotFoundError) Unwrap() error { return ErrConfigNotFound }
