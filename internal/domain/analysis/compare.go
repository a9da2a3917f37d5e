package analysis

import (
	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/scoring"
)

// DefaultCompareMetrics caps the metrics of a comparison.
const DefaultCompareMetrics = 8

// Series is one player's normalized values in a comparison.
type Series struct {
	Name   string    `json:"name"`
	Score  float64   `json:"score"`
	Values []float64 `json:"values"`
}

// Comparison places a few players side by side on the leading metrics of a profile.
type Comparison struct {
	Metrics []string `json:"metrics"`
	Series  []Series `json:"series"`
}

// Compare normalizes the first limit metrics against the compared players only, so the
// best of the group reaches 1 on each axis. Inverted metrics are not flipped: the values
// show where each player sits on the raw scale.
func Compare(players []scoring.ScoredPlayer, metrics []catalog.MetricSpec, limit int) Comparison {
	if limit <= 0 || limit > len(metrics) {
		limit = len(metrics)
	}
	metrics = metrics[:limit]

	cmp := Comparison{Metrics: scoring.Names(metrics), Series: make([]Series, len(players))}
	for i, p := range players {
		cmp.Series[i] = Series{Name: p.Name, Score: p.Score, Values: make([]float64, len(metrics))}
	}
	for j, m := range metrics {
		vals, ok := column(players, m.Name)
		if !ok {
			continue
		}
		lo, hi := scoring.Bounds(vals)
		for i, v := range vals {
			cmp.Series[i].Values[j] = scoring.Normalize(v, lo, hi, false)
		}
	}
	return cmp
}
