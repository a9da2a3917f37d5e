package filter_test

import (
	"testing"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
	"github.com/okian/scout/internal/domain/filter"
	. "github.com/smartystreets/goconvey/convey"
)

func players(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New("pool", []string{
		dataset.ColumnPlayer, dataset.ColumnPosition, dataset.ColumnAge,
		dataset.ColumnMinutes, dataset.ColumnPassport,
	}, [][]any{
		{"Ana", "RCB", 22, 1500, "Spain"},
		{"Bea", "ST", 30, 2200, "Argentina, Italy"},
		{"Cris", "RCB/LCB", 27, 900, "spain"},
		{"Dani", nil, 25, 2000, "France"},
		{"Eli", 4, 19, "n/a", nil},
		{"Fer", "CB", "unknown", 3000, "Italy"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func names(ds *dataset.Dataset) []string {
	out := make([]string, 0, ds.Len())
	for _, r := range ds.Rows() {
		n, _ := r.Text(dataset.ColumnPlayer)
		out = append(out, n)
	}
	return out
}

func ptr(v float64) *float64 { return &v }

func TestByPosition(t *testing.T) {
	Convey("Given a mixed pool", t, func() {
		ds := players(t)
		cb, err := catalog.Default().Position("Defensa Central")
		So(err, ShouldBeNil)

		Convey("When filtering centre-backs", func() {
			out := filter.ByPosition(ds, cb)

			Convey("Then compound codes match and order is kept", func() {
				So(names(out), ShouldResemble, []string{"Ana", "Cris", "Fer"})
			})

			Convey("Then the source dataset is untouched", func() {
				So(ds.Len(), ShouldEqual, 6)
			})
		})

		Convey("When the position column is absent", func() {
			bare, err := dataset.New("bare", []string{dataset.ColumnPlayer}, [][]any{{"Ana"}})
			So(err, ShouldBeNil)
			So(filter.ByPosition(bare, cb).Len(), ShouldEqual, 0)
		})

		Convey("When nothing matches", func() {
			gk, _ := catalog.Default().Position("Portero")
			So(filter.ByPosition(ds, gk).Len(), ShouldEqual, 0)
		})
	})
}

func TestByPattern(t *testing.T) {
	Convey("Given a raw pattern", t, func() {
		ds := players(t)

		Convey("Then it behaves like a position", func() {
			out, err := filter.ByPattern(ds, "CF|ST")
			So(err, ShouldBeNil)
			So(names(out), ShouldResemble, []string{"Bea"})
		})

		Convey("Then an invalid expression is reported", func() {
			_, err := filter.ByPattern(ds, "CB(")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCriteria(t *testing.T) {
	Convey("Given pool criteria", t, func() {
		ds := players(t)

		Convey("When no criterion is set", func() {
			So(filter.Criteria{}.Apply(ds), ShouldEqual, ds)
		})

		Convey("When bounding age", func() {
			out := filter.Criteria{MinAge: ptr(22), MaxAge: ptr(27)}.Apply(ds)

			Convey("Then bounds are inclusive and unparsable ages drop out", func() {
				So(names(out), ShouldResemble, []string{"Ana", "Cris", "Dani"})
			})
		})

		Convey("When bounding minutes", func() {
			out := filter.Criteria{MinMinutes: ptr(2000)}.Apply(ds)
			So(names(out), ShouldResemble, []string{"Bea", "Dani", "Fer"})
		})

		Convey("When matching a passport", func() {
			out := filter.Criteria{Passport: "SPAIN"}.Apply(ds)
			So(names(out), ShouldResemble, []string{"Ana", "Cris"})

			dual := filter.Criteria{Passport: "italy"}.Apply(ds)
			So(names(dual), ShouldResemble, []string{"Bea", "Fer"})
		})

		Convey("When the dataset lacks the criterion columns", func() {
			bare, err := dataset.New("bare", []string{dataset.ColumnPlayer}, [][]any{{"Ana"}, {"Bea"}})
			So(err, ShouldBeNil)
			out := filter.Criteria{MinAge: ptr(40), Passport: "Peru"}.Apply(bare)
			So(out.Len(), ShouldEqual, 2)
		})
	})
}
