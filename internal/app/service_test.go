package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/analysis"
	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const playersCSV = `Jugador,Posición específica,Equipo,Edad,Minutos jugados,Pasaporte,Duelos/90,"Duelos ganados, %",Duelos defensivos/90,"Duelos defensivos ganados, %",Duelos aéreos en los 90,"Duelos aéreos ganados, %"
Carla,CB,Betis,24,1800,Spain,9,50,6,65,5,55
Ana,RCB,Sevilla,27,2500,Spain,12,60,8,75,6,70
Eva,LCB,Cádiz,31,900,Portugal,6,40,4,50,2,40
Bea,CB,Málaga,22,2100,Argentina,10,55,7,70,4,60
Dora,RCB/LCB,Getafe,29,1500,Spain,8,52,5,60,3,50
Sofía,ST,Elche,25,2000,Spain,1,1,1,1,1,1
`

func ptr(v float64) *float64 { return &v }

func startedService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	svc := service.New(append([]service.Option{service.WithLogger(logger.Nop())}, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithLogger(logger.Nop()))

		Convey("When it is not started", func() {
			_, err := svc.LoadDataset(ctx, "players.csv", strings.NewReader(playersCSV))

			Convey("Then dataset operations are refused", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When starting and stopping", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.GetStats()["started"], ShouldEqual, true)
			So(svc.GetStats()["profiles"], ShouldEqual, 16)

			svc.Stop()
			svc.Stop()

			Convey("Then it is marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When the sweep schedule is invalid", func() {
			bad := service.New(service.WithLogger(logger.Nop()), service.WithSweepSchedule("whenever"))
			So(bad.Start(ctx), ShouldNotBeNil)
		})
	})
}

func TestService_Datasets(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		Convey("When a CSV export is uploaded", func() {
			info, err := svc.LoadDataset(ctx, "players.csv", strings.NewReader(playersCSV))

			Convey("Then it is described with per-position counts", func() {
				So(err, ShouldBeNil)
				So(info.ID, ShouldNotBeEmpty)
				So(info.Name, ShouldEqual, "players.csv")
				So(info.Rows, ShouldEqual, 6)
				So(info.Positions["Defensa Central"], ShouldEqual, 5)
				So(info.Positions["Delantero"], ShouldEqual, 1)
				So(info.Positions["Portero"], ShouldEqual, 0)
				So(svc.GetStats()["activeSessions"], ShouldEqual, 1)
			})

			Convey("Then it can be fetched and deleted", func() {
				again, err := svc.DatasetInfo(ctx, info.ID)
				So(err, ShouldBeNil)
				So(again.Rows, ShouldEqual, 6)

				So(svc.DeleteDataset(ctx, info.ID), ShouldBeNil)
				_, err = svc.DatasetInfo(ctx, info.ID)
				So(errors.Is(err, service.ErrSessionNotFound), ShouldBeTrue)
			})
		})

		Convey("When the position column is missing", func() {
			_, err := svc.LoadDataset(ctx, "bad.csv", strings.NewReader("Jugador,Edad\nAna,20\n"))
			So(errors.Is(err, dataset.ErrMissingColumn), ShouldBeTrue)
		})

		Convey("When the file cannot be parsed", func() {
			_, err := svc.LoadDataset(ctx, "players.json", strings.NewReader("{}"))
			So(errors.Is(err, dataset.ErrDataLoad), ShouldBeTrue)
		})

		Convey("When the session is unknown", func() {
			So(errors.Is(svc.DeleteDataset(ctx, "nope"), service.ErrSessionNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a service holding one session at most", t, func() {
		ctx := context.Background()
		svc := startedService(t, service.WithSessionCapacity(1), service.WithSessionTTL(time.Hour))
		defer svc.Stop()

		first, err := svc.LoadDataset(ctx, "a.csv", strings.NewReader(playersCSV))
		So(err, ShouldBeNil)
		_, err = svc.LoadDataset(ctx, "b.csv", strings.NewReader(playersCSV))
		So(err, ShouldBeNil)

		_, err = svc.DatasetInfo(ctx, first.ID)
		So(errors.Is(err, service.ErrSessionNotFound), ShouldBeTrue)
	})
}

func TestService_Analyze(t *testing.T) {
	Convey("Given an uploaded dataset", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		info, err := svc.LoadDataset(ctx, "players.csv", strings.NewReader(playersCSV))
		So(err, ShouldBeNil)
		req := service.AnalysisRequest{DatasetID: info.ID, Position: "Defensa Central", Profile: "Central ganador de Duelos"}

		Convey("When analysing centre-backs for duels", func() {
			out, err := svc.Analyze(ctx, req)

			Convey("Then the ranking and report are built", func() {
				So(err, ShouldBeNil)
				So(out.PoolSize, ShouldEqual, 5)
				So(out.NoPlayers, ShouldBeFalse)
				So(out.Players, ShouldHaveLength, 5)
				So(out.Players[0].Name, ShouldEqual, "Ana")
				So(out.Players[0].Score, ShouldEqual, 10.0)
				So(out.Players[4].Name, ShouldEqual, "Eva")
				So(out.Players[4].Score, ShouldEqual, 0.0)
				So(out.Description, ShouldNotBeEmpty)
				So(out.Missing, ShouldBeEmpty)
				So(out.Primary, ShouldHaveLength, 5)
				So(out.Categories, ShouldHaveLength, 2)
				So(out.Categories[0].Category, ShouldEqual, analysis.Defensive)
				So(out.Summaries, ShouldHaveLength, 6)
				So(out.Comparison.Metrics, ShouldHaveLength, 6)
				So(out.Comparison.Series, ShouldHaveLength, 5)
			})
		})

		Convey("When the ranking is capped", func() {
			req.TopN = 2
			out, err := svc.Analyze(ctx, req)
			So(err, ShouldBeNil)
			So(out.Players, ShouldHaveLength, 2)
			So(out.PoolSize, ShouldEqual, 5)
			So(out.Summaries[0].Min, ShouldEqual, 6.0)
		})

		Convey("When pool criteria apply", func() {
			req.Criteria = filter.Criteria{MinAge: ptr(25), Passport: "spain"}
			out, err := svc.Analyze(ctx, req)
			So(err, ShouldBeNil)
			So(out.PoolSize, ShouldEqual, 2)
			So(out.Players[0].Name, ShouldEqual, "Ana")
			So(out.Players[1].Name, ShouldEqual, "Dora")
		})

		Convey("When the profile is omitted", func() {
			req.Profile = ""
			out, err := svc.Analyze(ctx, req)
			So(err, ShouldBeNil)
			So(out.Profile, ShouldEqual, "Central ganador de Duelos")
		})

		Convey("When no player fits the position", func() {
			req.Position, req.Profile = "Extremo", ""
			out, err := svc.Analyze(ctx, req)

			Convey("Then an empty result is returned, not an error", func() {
				So(err, ShouldBeNil)
				So(out.NoPlayers, ShouldBeTrue)
				So(out.Players, ShouldBeEmpty)
			})
		})

		Convey("When the dataset lacks the profile metrics", func() {
			req.Profile = "Central Rapido"
			_, err := svc.Analyze(ctx, req)
			So(errors.Is(err, scoring.ErrInsufficientMetrics), ShouldBeTrue)
		})

		Convey("When the profile belongs to another position", func() {
			req.Profile = "Delantero Killer"
			_, err := svc.Analyze(ctx, req)
			So(errors.Is(err, service.ErrProfileNotOffered), ShouldBeTrue)
		})

		Convey("When the profile or position is unknown", func() {
			req.Profile = "Libero"
			_, err := svc.Analyze(ctx, req)
			So(errors.Is(err, catalog.ErrConfigNotFound), ShouldBeTrue)

			req.Position = "Carrilero"
			_, err = svc.Analyze(ctx, req)
			So(errors.Is(err, catalog.ErrConfigNotFound), ShouldBeTrue)
		})

		Convey("When the request is incomplete", func() {
			_, err := svc.Analyze(ctx, service.AnalysisRequest{DatasetID: info.ID})
			So(errors.Is(err, service.ErrInvalidRequest), ShouldBeTrue)
		})

		Convey("When correlating two duel metrics", func() {
			c, err := svc.Correlate(ctx, req, "Duelos/90", "Duelos ganados, %")
			So(err, ShouldBeNil)
			So(c.Coefficient, ShouldBeGreaterThan, 0.7)
			So(c.Strength, ShouldEqual, analysis.StrongPositive)
			So(c.Points, ShouldHaveLength, 5)

			_, err = svc.Correlate(ctx, req, "Duelos/90", "")
			So(errors.Is(err, service.ErrInvalidRequest), ShouldBeTrue)
		})
	})
}
