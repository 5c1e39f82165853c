package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// ledger is a store that can also be funded by the seeder.
type ledger interface {
	port.LedgerStore
	db.Funder
}

// main is the entry point of the crowdfund service. It loads configuration,
// opens the configured ledger store, optionally seeds demo accounts, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	if err := run(); err != nil {
		slog.Error("crowdfund stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store ledger
	if cfg.Ledger.UsesMemory() {
		logger.Warn("using in-memory ledger store; state is lost on exit")
		store = memory.NewStore()
	} else {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		store = postgres.NewLedgerStore(pool)
	}

	if cfg.Ledger.Seed {
		opened, err := db.Seed(ctx, store, cfg.Ledger.SeedIdentities, cfg.Ledger.SeedBalance)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("seeded accounts",
			slog.Any("identities", cfg.Ledger.SeedIdentities),
			slog.Int("opened", opened),
			slog.Uint64("balance", cfg.Ledger.SeedBalance),
		)
	}

	svc := usecase.NewCrowdfundingUseCase(store,
		usecase.WithLogger(logger),
		usecase.WithCampaignReserve(cfg.Ledger.CampaignReserve),
	)
	if err = svc.SyncMetrics(ctx); err != nil {
		return err
	}

	limiter := httpadapter.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, logger)
	handler := httpadapter.NewHandler(svc, logger, limiter)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if limiter != nil {
		g.Go(func() error {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					limiter.Sweep()
				}
			}
		})
	}
	return g.Wait()
}
