package scoring

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
)

// Fallbacks for identity columns absent from the dataset.
const (
	PlayerPlaceholder = "Jugador"
	NoTeam            = "Sin equipo"
)

// MetricValue is one metric of a scored player.
type MetricValue struct {
	Name       string  `json:"name"`
	Weight     float64 `json:"weight"`
	Value      float64 `json:"value"`
	Normalized float64 `json:"normalized"`
}

// ScoredPlayer is one row of a ranked table. Row is the player's index in the uploaded
// dataset.
type ScoredPlayer struct {
	Rank    int           `json:"rank"`
	Name    string        `json:"name"`
	Team    string        `json:"team"`
	Age     float64       `json:"age"`
	Score   float64       `json:"score"`
	Metrics []MetricValue `json:"metrics"`
	Row     int           `json:"row"`
}

// Metric returns the named metric of the player.
func (p ScoredPlayer) Metric(name string) (MetricValue, bool) {
	for _, m := range p.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricValue{}, false
}

func project(ds *dataset.Dataset, metrics []catalog.MetricSpec, values, normalized [][]float64, scores []float64) []ScoredPlayer {
	players := make([]ScoredPlayer, ds.Len())
	for i, r := range ds.Rows() {
		p := ScoredPlayer{
			Name:    playerName(ds, r, i),
			Team:    team(ds, r),
			Score:   scores[i],
			Row:     r.Index(),
			Metrics: make([]MetricValue, len(metrics)),
		}
		if age, ok := r.Number(dataset.ColumnAge); ok {
			p.Age = age
		}
		for j, m := range metrics {
			p.Metrics[j] = MetricValue{
				Name:       m.Name,
				Weight:     m.Weight,
				Value:      values[j][i],
				Normalized: normalized[j][i],
			}
		}
		players[i] = p
	}
	Sort(players)
	return players
}

// Sort orders players by descending score, breaking ties by original input order, and
// assigns 1-based ranks.
func Sort(players []ScoredPlayer) {
	slices.SortFunc(players, func(a, b ScoredPlayer) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
	for i := range players {
		players[i].Rank = i + 1
	}
}

// TopN returns a copy of the first n players. n <= 0 returns every player.
func TopN(players []ScoredPlayer, n int) []ScoredPlayer {
	if n <= 0 || n > len(players) {
		n = len(players)
	}
	return slices.Clone(players[:n])
}

// playerName falls back on the column, not the cell: a blank name stays blank when the
// dataset has a name column.
func playerName(ds *dataset.Dataset, r dataset.Row, pos int) string {
	if ds.HasColumn(dataset.ColumnPlayer) {
		v, _ := r.Display(dataset.ColumnPlayer)
		return v
	}
	return PlayerPlaceholder + " " + strconv.Itoa(pos+1)
}

func team(ds *dataset.Dataset, r dataset.Row) string {
	for _, c := range []string{dataset.ColumnTeamPeriod, dataset.ColumnTeam} {
		if ds.HasColumn(c) {
			v, _ := r.Display(c)
			return v
		}
	}
	return NoTeam
}
