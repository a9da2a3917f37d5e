package scoring

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Neutral is the normalized value of a metric every player shares.
const Neutral = 0.5

// MaxScore is the score of a player who is best in pool on every metric.
const MaxScore = 10

// Bounds returns the pool minimum and maximum. An empty pool yields zeros.
func Bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return floats.Min(values), floats.Max(values)
}

// Normalize maps v into [0,1] relative to the pool bounds. Inverted metrics score 1 at the
// pool minimum. A pool without spread yields Neutral.
func Normalize(v, lo, hi float64, inverted bool) float64 {
	if hi == lo {
		return Neutral
	}
	n := (v - lo) / (hi - lo)
	if inverted {
		return 1 - n
	}
	return n
}

// Round2 rounds to two decimals, half to even.
func Round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
