package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientMetrics is matched by InsufficientMetricsError.
var ErrInsufficientMetrics = errors.New("insufficient metrics")

// ErrNilDataset is returned when scoring is asked to run without a dataset.
var ErrNilDataset = errors.New("dataset is nil")

// InsufficientMetricsError reports a profile with too few metrics present in the dataset.
// It is recoverable: the caller shows the missing metrics and lets the user choose again.
type InsufficientMetricsError struct {
	Profile   string
	Available []string
	Missing   []string
	Required  int
}

func (e *InsufficientMetricsError) Error() string {
	return fmt.Sprintf("profile %q has %d of %d required metrics available (missing: %s)",
		e.Profile, len(e.Available), e.Required, strings.Join(e.Missing, ", "))
}

// Unwrap lets errors.Is match ErrInsufficientMetrics.
func (e *InsufficientMetricsError) Unwrap() error { return ErrInsufficientMetrics }
