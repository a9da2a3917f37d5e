package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/scout/internal/adapters/scheduler"
	"github.com/okian/scout/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScheduler(t *testing.T) {
	Convey("Given a scheduler", t, func() {
		s := scheduler.New(logger.Nop())
		var runs atomic.Int32
		job := scheduler.JobFunc{JobName: "count", Fn: func(context.Context) error {
			runs.Add(1)
			return nil
		}}

		Convey("When a job is registered with a valid schedule", func() {
			So(s.AddJob("@every 1h", job), ShouldBeNil)

			Convey("Then it can be run immediately", func() {
				So(s.RunNow(job), ShouldBeNil)
				So(runs.Load(), ShouldEqual, int32(1))
			})

			Convey("Then start and stop complete", func() {
				s.Start()
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				So(s.Stop(ctx), ShouldBeNil)
			})
		})

		Convey("When the schedule is invalid", func() {
			err := s.AddJob("every now and then", job)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "count")
		})

		Convey("When a job fails", func() {
			failing := scheduler.JobFunc{JobName: "fail", Fn: func(context.Context) error { return errors.New("boom") }}
			So(s.RunNow(failing), ShouldNotBeNil)
		})
	})
}
