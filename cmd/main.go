package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/parkfit/parkfit/internal/adapters/export"
	"github.com/parkfit/parkfit/internal/adapters/http/api"
	app "github.com/parkfit/parkfit/internal/app"
	"github.com/parkfit/parkfit/internal/config"
	"github.com/parkfit/parkfit/internal/domain/match"
	"github.com/parkfit/parkfit/internal/provider"
	"github.com/parkfit/parkfit/internal/sample"
	"github.com/parkfit/parkfit/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Profile source: a JSON file when configured, synthetic sample data
	// otherwise.
	var source provider.Source
	if cfg.ProfilesFile != "" {
		log.Info(ctx, "using file profile source", logger.String("path", cfg.ProfilesFile))
		source = provider.NewFileSource(cfg.ProfilesFile)
	} else {
		log.Info(ctx, "using synthetic profile source", logger.Int("hitters", cfg.SampleHitters))
		source = provider.NewStaticSource(sample.Profiles(sample.Config{
			Hitters: cfg.SampleHitters,
			Seed:    cfg.SampleSeed,
		}))
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.QueueSize),
		app.WithDedupeSize(cfg.DedupeSize),
		app.WithBatchBudget(time.Duration(cfg.BatchBudgetMS)*time.Millisecond),
		app.WithSource(source),
		app.WithEvaluatorOptions(
			match.WithWeights(cfg.Weights()),
			match.WithAnchors(cfg.Anchors()),
		),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Score the full cross product in the background; the read API serves
	// results as soon as the batch settles.
	go runBatch(ctx, cfg, svc, log)

	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}).Handler(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

func runBatch(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) {
	summary, err := svc.RunBatch(ctx, provider.Query{
		Year:       cfg.Year,
		MinPA:      cfg.MinPA,
		NameFilter: cfg.NameFilter,
		TopN:       cfg.TopN,
	})
	if err != nil {
		log.Error(ctx, "batch run failed", logger.Error(err))
		return
	}
	log.Info(ctx, "batch complete",
		logger.String("runID", summary.RunID),
		logger.Int("hitters", summary.Hitters),
		logger.Int("pairsScored", summary.PairsScored),
	)

	if cfg.OutputFile == "" {
		return
	}
	results, err := svc.Results(ctx)
	if err != nil {
		log.Error(ctx, "reading results for export failed", logger.Error(err))
		return
	}
	if err := export.WriteFile(cfg.OutputFile, results); err != nil {
		log.Error(ctx, "csv export failed", logger.Error(err))
		return
	}
	log.Info(ctx, "results exported",
		logger.String("path", cfg.OutputFile),
		logger.Int("rows", len(results)),
	)
}
