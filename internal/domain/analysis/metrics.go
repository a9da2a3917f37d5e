// Package analysis derives the secondary views of a scored ranking: headline metrics,
// metric categories, pool summaries, correlations and player comparisons.
package analysis

import (
	"math"
	"slices"
	"strings"

	"github.com/okian/scout/internal/domain/catalog"
)

// DefaultPrimaryMetrics is how many headline metrics are reported.
const DefaultPrimaryMetrics = 5

// PrimaryMetrics returns the first n available metrics with their weight magnitude.
func PrimaryMetrics(available []catalog.MetricSpec, n int) []catalog.MetricSpec {
	if n <= 0 || n > len(available) {
		n = len(available)
	}
	out := make([]catalog.MetricSpec, n)
	for i, m := range available[:n] {
		out[i] = catalog.MetricSpec{Name: m.Name, Weight: math.Abs(m.Weight)}
	}
	return out
}

// Category groups metrics for display.
type Category string

// Metric categories in display order.
const (
	Offensive   Category = "Offensive"
	Defensive   Category = "Defensive"
	Passing     Category = "Passing"
	Goalkeeping Category = "Goalkeeping"
	Other       Category = "Other"
)

var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{Offensive, []string{"Goles", "xG", "Remates", "Asistencias", "Toques", "Centros", "xA", "Tiros"}},
	{Defensive, []string{"Duelos defensivos", "Interceptaciones", "Acciones defensivas", "Entrada", "Duelos aéreos", "Recuperaciones"}},
	{Passing, []string{"Pases", "Precisión pases", "Pases progresivos", "Pases al área", "Pases en el último tercio"}},
	{Goalkeeping, []string{"Paradas", "Goles evitados", "Porterías imbatidas", "Goles recibidos"}},
}

// Group is one category with its metrics sorted by name. Weights keep their sign.
type Group struct {
	Category Category             `json:"category"`
	Metrics  []catalog.MetricSpec `json:"metrics"`
}

// CategoryOf returns the first category with a keyword contained in the metric name.
func CategoryOf(metric string) Category {
	for _, c := range categoryKeywords {
		for _, k := range c.keywords {
			if strings.Contains(metric, k) {
				return c.category
			}
		}
	}
	return Other
}

// Categorize groups metrics by category. Empty categories are omitted.
func Categorize(metrics []catalog.MetricSpec) []Group {
	buckets := make(map[Category][]catalog.MetricSpec)
	for _, m := range metrics {
		c := CategoryOf(m.Name)
		buckets[c] = append(buckets[c], m)
	}

	order := []Category{Offensive, Defensive, Passing, Goalkeeping, Other}
	var out []Group
	for _, c := range order {
		ms := buckets[c]
		if len(ms) == 0 {
			continue
		}
		slices.SortFunc(ms, func(a, b catalog.MetricSpec) int { return strings.Compare(a.Name, b.Name) })
		out = append(out, Group{Category: c, Metrics: ms})
	}
	return out
}
