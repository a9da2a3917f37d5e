package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/scoring"
)

// Summary describes one metric across the scored pool.
type Summary struct {
	Metric string  `json:"metric"`
	Weight float64 `json:"weight"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summaries returns mean, min and max of every metric over players, in metric order.
func Summaries(players []scoring.ScoredPlayer, metrics []catalog.MetricSpec) []Summary {
	if len(players) == 0 {
		return nil
	}
	out := make([]Summary, 0, len(metrics))
	for _, m := range metrics {
		vals, ok := column(players, m.Name)
		if !ok {
			continue
		}
		out = append(out, Summary{
			Metric: m.Name,
			Weight: m.Weight,
			Mean:   stat.Mean(vals, nil),
			Min:    floats.Min(vals),
			Max:    floats.Max(vals),
		})
	}
	return out
}

// Strength labels a correlation coefficient.
type Strength string

// Correlation strengths.
const (
	StrongPositive   Strength = "strong positive"
	ModeratePositive Strength = "moderate positive"
	WeakPositive     Strength = "weak positive"
	None             Strength = "none"
	WeakNegative     Strength = "weak negative"
	ModerateNegative Strength = "moderate negative"
	StrongNegative   Strength = "strong negative"
)

// StrengthOf labels r with thresholds at 0.3 and 0.7.
func StrengthOf(r float64) Strength {
	switch {
	case r > 0.7:
		return StrongPositive
	case r > 0.3:
		return ModeratePositive
	case r > 0:
		return WeakPositive
	case r < -0.7:
		return StrongNegative
	case r < -0.3:
		return ModerateNegative
	case r < 0:
		return WeakNegative
	default:
		return None
	}
}

// Point is one player in a correlation scatter.
type Point struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Correlation is the Pearson coefficient of two metrics over a set of players.
type Correlation struct {
	X           string   `json:"x"`
	Y           string   `json:"y"`
	Coefficient float64  `json:"coefficient"`
	Strength    Strength `json:"strength"`
	Points      []Point  `json:"points"`
}

// Correlate computes the correlation of metrics x and y over players.
func Correlate(players []scoring.ScoredPlayer, x, y string) (*Correlation, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: %d players", ErrUndefinedCorrelation, len(players))
	}
	xs, ok := column(players, x)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, x)
	}
	ys, ok := column(players, y)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, y)
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("%w: %q or %q has no variance", ErrUndefinedCorrelation, x, y)
	}

	points := make([]Point, len(players))
	for i, p := range players {
		points[i] = Point{Name: p.Name, Score: p.Score, X: xs[i], Y: ys[i]}
	}
	return &Correlation{X: x, Y: y, Coefficient: r, Strength: StrengthOf(r), Points: points}, nil
}

// column extracts a metric's raw values. ok is false when players is empty or any player
// lacks the metric.
func column(players []scoring.ScoredPlayer, name string) ([]float64, bool) {
	if len(players) == 0 {
		return nil, false
	}
	out := make([]float64, len(players))
	for i, p := range players {
		m, ok := p.Metric(name)
		if !ok {
			return nil, false
		}
		out[i] = m.Value
	}
	return out, true
}
