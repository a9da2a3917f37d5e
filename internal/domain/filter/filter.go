// Package filter selects the player pool an analysis runs on.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
)

// ByPosition keeps the rows whose position-code cell contains any of the position's codes.
// Matching is a case-sensitive substring search, so "RCB" and "RCB/LCB" both match "CB".
// A missing column or a blank or non-text cell never matches.
func ByPosition(ds *dataset.Dataset, p catalog.Position) *dataset.Dataset {
	return byRegexp(ds, p.Regexp())
}

// ByPattern is ByPosition for a raw regular expression such as "CB|RCB|LCB".
func ByPattern(ds *dataset.Dataset, pattern string) (*dataset.Dataset, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile position pattern %q: %w", pattern, err)
	}
	return byRegexp(ds, re), nil
}

func byRegexp(ds *dataset.Dataset, re *regexp.Regexp) *dataset.Dataset {
	return ds.Where(func(r dataset.Row) bool {
		code, ok := r.Text(dataset.ColumnPosition)
		return ok && re.MatchString(code)
	})
}

// Criteria narrows the pool before position filtering. Nil bounds and an empty passport are
// ignored. A criterion is skipped when the dataset has no column for it.
type Criteria struct {
	MinAge     *float64
	MaxAge     *float64
	MinMinutes *float64
	MaxMinutes *float64
	Passport   string
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.MinAge == nil && c.MaxAge == nil && c.MinMinutes == nil && c.MaxMinutes == nil &&
		strings.TrimSpace(c.Passport) == ""
}

// Apply returns the rows satisfying every applicable criterion, preserving order.
func (c Criteria) Apply(ds *dataset.Dataset) *dataset.Dataset {
	if c.IsZero() {
		return ds
	}
	age := ds.HasColumn(dataset.ColumnAge) && (c.MinAge != nil || c.MaxAge != nil)
	minutes := ds.HasColumn(dataset.ColumnMinutes) && (c.MinMinutes != nil || c.MaxMinutes != nil)
	passport := strings.ToLower(strings.TrimSpace(c.Passport))
	if !ds.HasColumn(dataset.ColumnPassport) {
		passport = ""
	}

	return ds.Where(func(r dataset.Row) bool {
		if age && !within(r, dataset.ColumnAge, c.MinAge, c.MaxAge) {
			return false
		}
		if minutes && !within(r, dataset.ColumnMinutes, c.MinMinutes, c.MaxMinutes) {
			return false
		}
		if passport != "" {
			v, ok := r.Display(dataset.ColumnPassport)
			if !ok || !strings.Contains(strings.ToLower(v), passport) {
				return false
			}
		}
		return true
	})
}

func within(r dataset.Row, column string, lo, hi *float64) bool {
	v, ok := r.Number(column)
	if !ok {
		return false
	}
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}
