package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/csg33k/underwriteai/internal/adapters/memory"
	"github.com/csg33k/underwriteai/internal/adapters/pdf"
	"github.com/csg33k/underwriteai/internal/adapters/settings"
	"github.com/csg33k/underwriteai/internal/adapters/simulator"
	sqliteadapter "github.com/csg33k/underwriteai/internal/adapters/sqlite"
	"github.com/csg33k/underwriteai/internal/config"
	"github.com/csg33k/underwriteai/internal/handlers"
	"github.com/csg33k/underwriteai/internal/intake"
	"github.com/csg33k/underwriteai/internal/mockdata"
	"github.com/csg33k/underwriteai/internal/ports"
	"github.com/csg33k/underwriteai/internal/templates"
)

const shutdownTimeout = 10 * time.Second

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		return err
	}

	h := handlers.New(handlers.Config{
		Repo:           repo,
		Intake:         intake.New(simulator.NewExtractor(cfg.ExtractionDelay), simulator.NewScorer(cfg.ScoringDelay), logger),
		Settings:       store,
		Reports:        pdf.New(cfg.Location),
		Views:          templates.MustNew(cfg.Location),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("UnderwriteAI running", "url", "http://localhost:"+cfg.Port, "store", cfg.StoreDriver, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openRepository(ctx context.Context, cfg config.Config) (ports.SubmissionRepository, func(), error) {
	if cfg.StoreDriver != config.DriverSQLite {
		return memory.NewSeeded(), func() {}, nil
	}
	repo, err := sqliteadapter.New(ctx, cfg.DBPath, mockdata.SeedSubmissions())
	if err != nil {
		return nil, nil, err
	}
	slog.Info("database opened", "path", cfg.DBPath)
	return repo, func() { repo.Close() }, nil
}
