package logger_test

import (
	"context"
	"testing"

	"github.com/parkfit/parkfit/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			// Must not panic with arbitrary fields.
			l.Info(context.Background(), "test message",
				logger.String("k", "v"),
				logger.Int("n", 42),
				logger.Float64("f", 1.5),
				logger.Bool("b", true),
			)
		})

		Convey("Named returns a scoped child logger", func() {
			l := logger.Named("scoring")
			So(l, ShouldNotBeNil)
			l.Debug(context.Background(), "scoped message")
		})

		Convey("SetLevelString accepts known levels", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("info"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("ERROR"), ShouldBeNil)
		})

		Convey("SetLevelString rejects unknown levels", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
