// Package scoring turns a filtered player pool and a tactical profile into a ranked table
// of 0-10 scores.
//
// Every metric is min-max normalized against the pool being scored, so scores are only
// comparable within one run. The engine holds no mutable state and may be shared across
// goroutines.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
	"github.com/okian/scout/pkg/logger"
)

// DefaultMinMetrics is the smallest number of available metrics a profile is scored with.
const DefaultMinMetrics = 3

// Option configures an Engine.
type Option func(*Engine)

// WithMinMetrics sets the available-metric threshold below which scoring is refused.
func WithMinMetrics(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minMetrics = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine scores player pools against the profiles of one catalog.
type Engine struct {
	catalog    *catalog.Catalog
	minMetrics int
	log        logger.Logger
}

// NewEngine builds an engine over an immutable catalog.
func NewEngine(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:    c,
		minMetrics: DefaultMinMetrics,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine scores with.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// MinMetrics returns the available-metric threshold.
func (e *Engine) MinMetrics() int { return e.minMetrics }

// Result is one scored run. Players are sorted by descending score.
type Result struct {
	Profile   string
	Players   []ScoredPlayer
	Available []catalog.MetricSpec
	Missing   []catalog.MetricSpec
}

// Score ranks every row of ds under the named profile. ds is normally the output of the
// position filter. An empty pool yields a result without players.
func (e *Engine) Score(ctx context.Context, ds *dataset.Dataset, profile string) (*Result, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	specs, err := e.catalog.MetricsFor(profile)
	if err != nil {
		return nil, err
	}

	res := Resolve(ds, specs)
	if len(res.Missing) > 0 {
		e.log.Warn(ctx, "profile metrics missing from dataset",
			logger.String("profile", profile),
			logger.Strings("missing", Names(res.Missing)))
	}
	if len(res.Available) < e.minMetrics {
		return nil, &InsufficientMetricsError{
			Profile:   profile,
			Available: Names(res.Available),
			Missing:   Names(res.Missing),
			Required:  e.minMetrics,
		}
	}

	out := &Result{Profile: profile, Available: res.Available, Missing: res.Missing}
	if ds.Len() == 0 {
		return out, nil
	}

	scores, normalized, values, err := aggregate(ds, res.Available)
	if err != nil {
		return nil, fmt.Errorf("score profile %q: %w", profile, err)
	}
	out.Players = project(ds, res.Available, values, normalized, scores)

	e.log.Debug(ctx, "profile scored",
		logger.String("profile", profile),
		logger.Int("players", len(out.Players)),
		logger.Int("metrics", len(res.Available)))
	return out, nil
}

// aggregate computes the weighted, rescaled score of every row. values and normalized are
// indexed [metric][row].
func aggregate(ds *dataset.Dataset, metrics []catalog.MetricSpec) (scores []float64, normalized, values [][]float64, err error) {
	n := ds.Len()
	raw := make([]float64, n)
	normalized = make([][]float64, len(metrics))
	values = make([][]float64, len(metrics))

	var total float64
	for j, m := range metrics {
		col := ds.Numbers(m.Name)
		if len(col) != n {
			return nil, nil, nil, fmt.Errorf("metric %q: column not found", m.Name)
		}
		lo, hi := Bounds(col)
		w := math.Abs(m.Weight)
		norm := make([]float64, n)
		for i, v := range col {
			norm[i] = Normalize(v, lo, hi, m.Negative())
			raw[i] += norm[i] * w
		}
		total += w
		values[j] = col
		normalized[j] = norm
	}

	scores = make([]float64, n)
	if total == 0 {
		return scores, normalized, values, nil
	}
	for i, r := range raw {
		scores[i] = Round2(r / total * MaxScore)
	}
	return scores, normalized, values, nil
}
