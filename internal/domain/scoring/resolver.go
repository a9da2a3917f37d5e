package scoring

import "github.com/okian/scout/internal/domain/catalog"

// ColumnSet is the part of a dataset the resolver needs.
type ColumnSet interface {
	HasColumn(name string) bool
}

// Resolution splits a profile's metrics by presence in a dataset, in profile order.
type Resolution struct {
	Available []catalog.MetricSpec
	Missing   []catalog.MetricSpec
}

// Resolve matches metric names against columns exactly.
func Resolve(cols ColumnSet, specs []catalog.MetricSpec) Resolution {
	var r Resolution
	for _, m := range specs {
		if cols.HasColumn(m.Name) {
			r.Available = append(r.Available, m)
		} else {
			r.Missing = append(r.Missing, m)
		}
	}
	return r
}

// Names returns the metric names of specs in order.
func Names(specs []catalog.MetricSpec) []string {
	out := make([]string, len(specs))
	for i, m := range specs {
		out[i] = m.Name
	}
	return out
}
