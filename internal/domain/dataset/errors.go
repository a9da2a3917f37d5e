package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for dataset errors.
var (
	ErrDataLoad      = errors.New("dataset load failed")
	ErrMissingColumn = errors.New("required column missing")
)

// DataLoadError reports input that cannot be read as a table.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load dataset %q: %v", e.Source, e.Err)
}

// Is matches ErrDataLoad.
func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

func (e *DataLoadError) Unwrap() error { return e.Err }

// MissingColumnError lists every required column absent from a dataset.
type MissingColumnError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset %q is missing required columns: %s", e.Source, strings.Join(e.Columns, ", "))
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }
