package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/plumbbid/backend/api/routes"
	"github.com/plumbbid/backend/internal/biditems"
	"github.com/plumbbid/backend/internal/contractors"
	"github.com/plumbbid/backend/internal/fixtures"
	"github.com/plumbbid/backend/internal/jobs"
	"github.com/plumbbid/backend/pkg/config"
	"github.com/plumbbid/backend/pkg/db"
	"github.com/plumbbid/backend/pkg/logger"
	"github.com/plumbbid/backend/pkg/metrics"
	"github.com/plumbbid/backend/pkg/migrate"
	"github.com/plumbbid/backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis is optional: without it the API runs with idempotency disabled.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency disabled")
	}
	defer func() {
		var closeErr error
		closeErr = multierr.Append(closeErr, dbClient.Close())
		if redisClient != nil {
			closeErr = multierr.Append(closeErr, redisClient.Close())
		}
		if closeErr != nil {
			logg.Error(context.Background(), "error closing resources", closeErr)
		}
	}()

	conn := dbClient.DB()

	bidItemRepo := biditems.NewRepository(conn)
	fixtureRepo := fixtures.NewRepository(conn)
	contractorRepo := contractors.NewRepository(conn)
	jobRepo := jobs.NewRepository(conn)
	optionRepo := jobs.NewOptionRepository(conn)

	bidItemService, err := biditems.NewService(bidItemRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create bid item service", err)
		os.Exit(1)
	}
	fixtureService, err := fixtures.NewService(fixtureRepo, bidItemRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create fixture service", err)
		os.Exit(1)
	}
	contractorService, err := contractors.NewService(contractorRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create contractor service", err)
		os.Exit(1)
	}
	jobService, err := jobs.NewService(jobRepo, optionRepo, fixtureRepo, contractorRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create job service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	requestMetrics := metrics.NewRequestMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			requestMetrics,
			bidItemService,
			fixtureService,
			contractorService,
			jobService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
