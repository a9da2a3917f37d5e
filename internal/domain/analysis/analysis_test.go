package analysis_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/scout/internal/domain/analysis"
	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func player(name string, score float64, values map[string]float64, order ...string) scoring.ScoredPlayer {
	p := scoring.ScoredPlayer{Name: name, Score: score}
	for _, m := range order {
		p.Metrics = append(p.Metrics, scoring.MetricValue{Name: m, Value: values[m]})
	}
	return p
}

func TestPrimaryMetrics(t *testing.T) {
	Convey("Given a profile with negative weights", t, func() {
		metrics, err := catalog.Default().MetricsFor("Portero con Muchas paradas")
		So(err, ShouldBeNil)

		primary := analysis.PrimaryMetrics(metrics, analysis.DefaultPrimaryMetrics)

		So(primary, ShouldHaveLength, 5)
		So(primary[0], ShouldResemble, catalog.MetricSpec{Name: "Goles recibidos/90", Weight: 0.5})
		So(primary[1].Weight, ShouldEqual, 0.373)

		Convey("And fewer metrics than asked are all returned", func() {
			So(analysis.PrimaryMetrics(metrics[:3], 5), ShouldHaveLength, 3)
		})
	})
}

func TestCategorize(t *testing.T) {
	Convey("Given a mixed metric list", t, func() {
		metrics := []catalog.MetricSpec{
			{Name: "Pases/90", Weight: 0.2},
			{Name: "Goles/90", Weight: 0.3},
			{Name: "Duelos aéreos en los 90", Weight: 0.1},
			{Name: "Asistencias/90", Weight: 0.1},
			{Name: "Faltas/90", Weight: -0.1},
			{Name: "Goles recibidos/90", Weight: -0.5},
		}

		groups := analysis.Categorize(metrics)

		Convey("Then first keyword match wins and names are sorted", func() {
			So(groups, ShouldHaveLength, 4)
			So(groups[0].Category, ShouldEqual, analysis.Offensive)
			So(scoring.Names(groups[0].Metrics), ShouldResemble, []string{"Asistencias/90", "Goles recibidos/90", "Goles/90"})
			So(groups[1].Category, ShouldEqual, analysis.Defensive)
			So(groups[2].Category, ShouldEqual, analysis.Passing)
			So(groups[3].Category, ShouldEqual, analysis.Other)
			So(groups[3].Metrics[0].Weight, ShouldEqual, -0.1)
		})

		Convey("Then keyword lookup is exposed", func() {
			So(analysis.CategoryOf("Paradas, %"), ShouldEqual, analysis.Goalkeeping)
			So(analysis.CategoryOf("Entradas/90"), ShouldEqual, analysis.Defensive)
			So(analysis.CategoryOf("Velocidad"), ShouldEqual, analysis.Other)
		})
	})
}

func TestSummaries(t *testing.T) {
	Convey("Given scored players", t, func() {
		order := []string{"a", "b"}
		players := []scoring.ScoredPlayer{
			player("p1", 9, map[string]float64{"a": 1, "b": 10}, order...),
			player("p2", 5, map[string]float64{"a": 2, "b": 20}, order...),
			player("p3", 1, map[string]float64{"a": 6, "b": 30}, order...),
		}
		metrics := []catalog.MetricSpec{{Name: "a", Weight: 1}, {Name: "b", Weight: -1}, {Name: "z", Weight: 1}}

		sums := analysis.Summaries(players, metrics)

		So(sums, ShouldHaveLength, 2)
		So(sums[0], ShouldResemble, analysis.Summary{Metric: "a", Weight: 1, Mean: 3, Min: 1, Max: 6})
		So(sums[1].Mean, ShouldEqual, 20.0)
		So(analysis.Summaries(nil, metrics), ShouldBeNil)
	})
}

func TestCorrelate(t *testing.T) {
	Convey("Given players with linear metrics", t, func() {
		order := []string{"a", "b", "c", "flat"}
		players := []scoring.ScoredPlayer{
			player("p1", 9, map[string]float64{"a": 1, "b": 2, "c": 9, "flat": 4}, order...),
			player("p2", 5, map[string]float64{"a": 2, "b": 4, "c": 7, "flat": 4}, order...),
			player("p3", 1, map[string]float64{"a": 3, "b": 6, "c": 2, "flat": 4}, order...),
		}

		Convey("When metrics move together", func() {
			c, err := analysis.Correlate(players, "a", "b")
			So(err, ShouldBeNil)
			So(math.Abs(c.Coefficient-1), ShouldBeLessThan, 1e-9)
			So(c.Strength, ShouldEqual, analysis.StrongPositive)
			So(c.Points, ShouldHaveLength, 3)
			So(c.Points[2], ShouldResemble, analysis.Point{Name: "p3", Score: 1, X: 3, Y: 6})
		})

		Convey("When metrics move apart", func() {
			c, err := analysis.Correlate(players, "a", "c")
			So(err, ShouldBeNil)
			So(c.Coefficient, ShouldBeLessThan, -0.7)
			So(c.Strength, ShouldEqual, analysis.StrongNegative)
		})

		Convey("When a metric has no variance", func() {
			_, err := analysis.Correlate(players, "a", "flat")
			So(errors.Is(err, analysis.ErrUndefinedCorrelation), ShouldBeTrue)
		})

		Convey("When there is a single player", func() {
			_, err := analysis.Correlate(players[:1], "a", "b")
			So(errors.Is(err, analysis.ErrUndefinedCorrelation), ShouldBeTrue)
		})

		Convey("When a metric is unknown", func() {
			_, err := analysis.Correlate(players, "a", "nope")
			So(errors.Is(err, analysis.ErrUnknownMetric), ShouldBeTrue)
		})
	})

	Convey("Given coefficients at the thresholds", t, func() {
		So(analysis.StrengthOf(0.71), ShouldEqual, analysis.StrongPositive)
		So(analysis.StrengthOf(0.7), ShouldEqual, analysis.ModeratePositive)
		So(analysis.StrengthOf(0.3), ShouldEqual, analysis.WeakPositive)
		So(analysis.StrengthOf(0), ShouldEqual, analysis.None)
		So(analysis.StrengthOf(-0.3), ShouldEqual, analysis.WeakNegative)
		So(analysis.StrengthOf(-0.5), ShouldEqual, analysis.ModerateNegative)
		So(analysis.StrengthOf(-0.9), ShouldEqual, analysis.StrongNegative)
	})
}

func TestCompare(t *testing.T) {
	Convey("Given three players", t, func() {
		order := []string{"a", "b", "c"}
		players := []scoring.ScoredPlayer{
			player("p1", 9, map[string]float64{"a": 4, "b": 1, "c": 5}, order...),
			player("p2", 5, map[string]float64{"a": 2, "b": 3, "c": 5}, order...),
			player("p3", 1, map[string]float64{"a": 0, "b": 2, "c": 5}, order...),
		}
		metrics := []catalog.MetricSpec{{Name: "a", Weight: 1}, {Name: "b", Weight: -1}, {Name: "c", Weight: 1}}

		cmp := analysis.Compare(players, metrics, 2)

		So(cmp.Metrics, ShouldResemble, []string{"a", "b"})
		So(cmp.Series, ShouldHaveLength, 3)
		So(cmp.Series[0].Values, ShouldResemble, []float64{1, 0})
		So(cmp.Series[1].Values, ShouldResemble, []float64{0.5, 1})
		So(cmp.Series[2].Values, ShouldResemble, []float64{0, 0.5})

		Convey("And a flat metric sits in the middle", func() {
			all := analysis.Compare(players, metrics, 0)
			So(all.Series[0].Values[2], ShouldEqual, 0.5)
		})
	})
}
