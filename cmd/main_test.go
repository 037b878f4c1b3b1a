package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/parkfit/parkfit/internal/adapters/http/api"
	app "github.com/parkfit/parkfit/internal/app"
	"github.com/parkfit/parkfit/internal/config"
	"github.com/parkfit/parkfit/internal/provider"
	"github.com/parkfit/parkfit/internal/sample"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PARKFIT_ADDR", ":8080")
			_ = os.Setenv("PARKFIT_QUEUE_SIZE", "1000")
			_ = os.Setenv("PARKFIT_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("PARKFIT_ADDR")
				_ = os.Unsetenv("PARKFIT_QUEUE_SIZE")
				_ = os.Unsetenv("PARKFIT_WORKER_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 1000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And with custom options", func() {
				svc := app.New(
					app.WithWorkerCount(8),
					app.WithQueueSize(2000),
					app.WithDedupeSize(1000),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When wiring the HTTP server end to end", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			src := provider.NewStaticSource(sample.Profiles(sample.Config{Hitters: 3, Seed: 1}))
			svc := app.New(
				app.WithWorkerCount(2),
				app.WithSource(src),
			)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			api.NewServer(svc, svc).Register(ctx, mux)

			convey.Convey("Then routes are registered", func() {
				convey.So(mux, convey.ShouldNotBeNil)
			})
		})
	})
}
