package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/plumbbid/backend/pkg/config"
	"github.com/plumbbid/backend/pkg/db"
	"github.com/plumbbid/backend/pkg/logger"
	"github.com/plumbbid/backend/pkg/migrate"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up, down, status, version, create, validate")
	dir := flag.String("dir", migrate.DefaultDir, "directory holding migration files")
	name := flag.String("name", "", "migration name (create only)")
	version := flag.String("version", "", "target version (version only)")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "migrate"})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"cmd": *cmd,
		"dir": *dir,
	})

	// create and validate operate on the filesystem only
	switch *cmd {
	case "create":
		if *name == "" {
			logg.Error(ctx, "missing -name for create", nil)
			os.Exit(1)
		}
		path, err := migrate.CreateSQLMigration(*dir, *name)
		if err != nil {
			logg.Error(ctx, "failed to create migration", err)
			os.Exit(1)
		}
		logg.Info(logg.WithField(ctx, "path", path), "migration created")
		return
	case "validate":
		if err := migrate.ValidateDir(*dir); err != nil {
			logg.Error(ctx, "migration directory invalid", err)
			os.Exit(1)
		}
		logg.Info(ctx, "migration directory valid")
		return
	}

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(context.Background(), map[string]any{
		"cmd": *cmd,
		"dir": *dir,
		"env": cfg.App.Env,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logg.Error(ctx, "error closing database", closeErr)
		}
	}()

	sqlDB, err := dbClient.DB().DB()
	requireResource(ctx, logg, "sql connection", err)

	switch *cmd {
	case "up", "down", "status":
		err = migrate.Run(ctx, sqlDB, *dir, *cmd)
	case "version":
		if *version == "" {
			logg.Error(ctx, "missing -version for version command", nil)
			os.Exit(1)
		}
		err = migrate.MigrateToVersion(ctx, sqlDB, *dir, *version)
	default:
		logg.Error(ctx, "unknown migration command", nil)
		os.Exit(1)
	}
	if err != nil {
		logg.Error(ctx, "migration command failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "migration command complete")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(logg.WithField(ctx, "resource", resource), "failed to initialize resource", err)
	os.Exit(1)
}
