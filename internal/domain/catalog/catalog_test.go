package catalog_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the default catalog", t, func() {
		c := catalog.Default()

		Convey("Then it lists the eight positions in order", func() {
			positions := c.Positions()
			So(positions, ShouldHaveLength, 8)
			So(positions[0].Name, ShouldEqual, "Portero")
			So(positions[1].Name, ShouldEqual, "Defensa Central")
			So(positions[1].Pattern(), ShouldEqual, "CB|RCB|LCB")
			So(positions[7].Name, ShouldEqual, "Delantero")
			So(positions[7].Pattern(), ShouldEqual, "CF|ST")
		})

		Convey("Then it holds sixteen profiles", func() {
			So(c.Profiles(), ShouldHaveLength, 16)
		})

		Convey("Then full-back sides share their profiles", func() {
			left, err := c.ProfilesFor("Lateral Izquierdo")
			So(err, ShouldBeNil)
			right, err := c.ProfilesFor("Lateral Derecho")
			So(err, ShouldBeNil)
			So(left, ShouldResemble, []string{"Lateral Defensivo", "Lateral Ofensivo"})
			So(right, ShouldResemble, left)
		})

		Convey("Then duel-winning centre-back weights are preserved exactly", func() {
			metrics, err := c.MetricsFor("Central ganador de Duelos")
			So(err, ShouldBeNil)
			So(metrics, ShouldResemble, []catalog.MetricSpec{
				{Name: "Duelos/90", Weight: 0.1579},
				{Name: "Duelos ganados, %", Weight: 0.2105},
				{Name: "Duelos defensivos/90", Weight: 0.1053},
				{Name: "Duelos defensivos ganados, %", Weight: 0.2632},
				{Name: "Duelos aéreos en los 90", Weight: 0.1053},
				{Name: "Duelos aéreos ganados, %", Weight: 0.1579},
			})
		})

		Convey("Then negative weights survive", func() {
			metrics, err := c.MetricsFor("Portero con Muchas paradas")
			So(err, ShouldBeNil)
			So(metrics, ShouldHaveLength, 8)
			So(metrics[0], ShouldResemble, catalog.MetricSpec{Name: "Goles recibidos/90", Weight: -0.5})
			So(metrics[1].Weight, ShouldEqual, -0.373)
			So(metrics[1].Negative(), ShouldBeTrue)
			So(metrics[3].Negative(), ShouldBeFalse)

			physical, err := c.MetricsFor("Mediocentro Defensivo (Fisico)")
			So(err, ShouldBeNil)
			So(physical[6], ShouldResemble, catalog.MetricSpec{Name: "Faltas/90", Weight: -0.0968})
		})

		Convey("Then the long profiles keep their length and tails", func() {
			offensive, err := c.MetricsFor("Lateral Ofensivo")
			So(err, ShouldBeNil)
			So(offensive, ShouldHaveLength, 22)
			So(offensive[21], ShouldResemble, catalog.MetricSpec{Name: "Precisión pases progresivos, %", Weight: 0.0313})

			keeper, err := c.MetricsFor("Portero Bueno con los Pies")
			So(err, ShouldBeNil)
			So(keeper, ShouldHaveLength, 19)
			So(keeper[2].Weight, ShouldEqual, 0.1251)
		})

		Convey("Then descriptions are available", func() {
			d, ok := c.DescriptionFor("Central Rapido")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, "Defensa central con buena velocidad, ideal para equipos con línea alta.")
			_, ok = c.DescriptionFor("Libero")
			So(ok, ShouldBeFalse)
		})

		Convey("When asking for an unknown profile", func() {
			_, err := c.MetricsFor("Libero")

			Convey("Then a ConfigNotFoundError is returned", func() {
				So(errors.Is(err, catalog.ErrConfigNotFound), ShouldBeTrue)
				var nf *catalog.ConfigNotFoundError
				So(errors.As(err, &nf), ShouldBeTrue)
				So(nf.Kind, ShouldEqual, catalog.KindProfile)
				So(nf.Name, ShouldEqual, "Libero")
			})
		})

		Convey("When asking for an unknown position", func() {
			_, err := c.ProfilesFor("Carrilero")
			So(errors.Is(err, catalog.ErrConfigNotFound), ShouldBeTrue)
		})

		Convey("When a caller mutates returned slices", func() {
			metrics, _ := c.MetricsFor("Central Rapido")
			metrics[0].Weight = 99
			positions := c.Positions()
			positions[0].Codes[0] = "XX"

			Convey("Then the catalog is unchanged", func() {
				again, _ := c.MetricsFor("Central Rapido")
				So(again[0].Weight, ShouldEqual, 0.16)
				p, _ := c.Position("Portero")
				So(p.Codes, ShouldResemble, []string{"GK"})
			})
		})
	})
}

func TestNewCatalog(t *testing.T) {
	Convey("Given fixture catalog inputs", t, func() {
		profiles := []catalog.Profile{{
			Name:    "Stopper",
			Metrics: []catalog.MetricSpec{{Name: "Entradas/90", Weight: 1}},
		}}

		Convey("When a position declares no profiles", func() {
			libero := catalog.Profile{Name: "Libero", Metrics: []catalog.MetricSpec{{Name: "Interceptaciones/90", Weight: 1}}}
			c, err := catalog.New([]catalog.Position{{Name: "Libero", Codes: []string{"SW"}}}, append(profiles, libero))
			So(err, ShouldBeNil)

			Convey("Then the position is its own profile", func() {
				names, err := c.ProfilesFor("Libero")
				So(err, ShouldBeNil)
				So(names, ShouldResemble, []string{"Libero"})
			})

			Convey("Then its players can be scored", func() {
				ds, err := dataset.New("libero.csv",
					[]string{dataset.ColumnPlayer, dataset.ColumnPosition, "Interceptaciones/90"},
					[][]any{{"Franz", "SW", 9.0}, {"Gaetano", "SW", 3.0}, {"Ruud", "ST", 1.0}})
				So(err, ShouldBeNil)
				pos, err := c.Position("Libero")
				So(err, ShouldBeNil)
				offered, err := c.ProfilesFor(pos.Name)
				So(err, ShouldBeNil)

				engine := scoring.NewEngine(c, scoring.WithMinMetrics(1))
				res, err := engine.Score(context.Background(), filter.ByPosition(ds, pos), offered[0])
				So(err, ShouldBeNil)
				So(res.Players, ShouldHaveLength, 2)
				So(res.Players[0].Name, ShouldEqual, "Franz")
				So(res.Players[0].Score, ShouldEqual, 10.0)
			})
		})

		Convey("When a position declares no profiles and none is named after it", func() {
			_, err := catalog.New([]catalog.Position{{Name: "Libero", Codes: []string{"SW"}}}, profiles)
			So(errors.Is(err, catalog.ErrInvalidCatalog), ShouldBeTrue)
		})

		Convey("When a profile repeats a metric", func() {
			dup := []catalog.Profile{{
				Name: "Stopper",
				Metrics: []catalog.MetricSpec{
					{Name: "Entradas/90", Weight: 1},
					{Name: "Entradas/90", Weight: 2},
				},
			}}
			_, err := catalog.New(nil, dup)
			So(errors.Is(err, catalog.ErrInvalidCatalog), ShouldBeTrue)
		})

		Convey("When a position references an unknown profile", func() {
			_, err := catalog.New([]catalog.Position{{Name: "CB", Codes: []string{"CB"}, Profiles: []string{"Ghost"}}}, profiles)
			So(errors.Is(err, catalog.ErrInvalidCatalog), ShouldBeTrue)
		})

		Convey("When a position has no codes", func() {
			_, err := catalog.New([]catalog.Position{{Name: "CB"}}, profiles)
			So(errors.Is(err, catalog.ErrInvalidCatalog), ShouldBeTrue)
		})
	})
}

func TestPositionRegexp(t *testing.T) {
	Convey("Given the centre-back position", t, func() {
		p, err := catalog.Default().Position("Defensa Central")
		So(err, ShouldBeNil)
		re := p.Regexp()

		So(re.MatchString("RCB"), ShouldBeTrue)
		So(re.MatchString("RCB/LCB"), ShouldBeTrue)
		So(re.MatchString("ST"), ShouldBeFalse)
		So(re.MatchString("cb"), ShouldBeFalse)
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML catalog file", t, func() {
		ctx := context.Background()
		content := `
positions:
  - name: Defensa Central
    codes: [CB, RCB, LCB]
    profiles: [Central Liga 1]
profiles:
  - name: Central Liga 1
    description: Centre-back weighted for the local league
    metrics:
      - name: "Duelos/90"
        weight: 0.4
      - name: "Duelos ganados, %"
        weight: 0.6
      - name: "Faltas/90"
        weight: -0.2
`
		path := writeTemp(content)
		defer func() { _ = os.Remove(path) }()

		c, err := catalog.LoadFile(ctx, path)

		Convey("Then it decodes positions and profiles", func() {
			So(err, ShouldBeNil)
			names, err := c.ProfilesFor("Defensa Central")
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"Central Liga 1"})
			metrics, err := c.MetricsFor("Central Liga 1")
			So(err, ShouldBeNil)
			So(metrics, ShouldResemble, []catalog.MetricSpec{
				{Name: "Duelos/90", Weight: 0.4},
				{Name: "Duelos ganados, %", Weight: 0.6},
				{Name: "Faltas/90", Weight: -0.2},
			})
		})

		Convey("And a missing file fails", func() {
			_, err := catalog.LoadFile(ctx, "/non/existent/catalog.yaml")
			So(err, ShouldNotBeNil)
		})

		Convey("And an empty document fails validation", func() {
			empty := writeTemp("profiles: []\n")
			defer func() { _ = os.Remove(empty) }()
			_, err := catalog.LoadFile(ctx, empty)
			So(errors.Is(err, catalog.ErrInvalidCatalog), ShouldBeTrue)
		})
	})
}

func writeTemp(content string) string {
	f, err := os.CreateTemp("", "scout-catalog-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}
	return f.Name()
}
