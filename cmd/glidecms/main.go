// Package main is the operational entry point for the GlideCMS slider
// subsystem. It loads configuration, connects to services and runs one of
// the maintenance commands:
//
//	glidecms migrate   apply pending schema migrations
//	glidecms seed      migrate, then seed demo content in development
//	glidecms warm      prime the Valkey payload cache for every tenant
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"glidecms/internal/cache"
	"glidecms/internal/config"
	"glidecms/internal/database"
	"glidecms/internal/models"
	"glidecms/internal/slider"
	"glidecms/internal/store"
)

func main() {
	// Structured logger — text output for operators.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: glidecms <migrate|seed|warm>")
		os.Exit(2)
	}
	command := os.Args[1]

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "command", command)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	switch command {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

	case "seed":
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		if !cfg.IsDev() {
			slog.Error("seed is a development-only command", "env", cfg.Env)
			os.Exit(1)
		}
		if err := slider.Seed(store.NewSliderStore(db)); err != nil {
			slog.Error("failed to seed slider", "error", err)
			os.Exit(1)
		}

	case "warm":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := warm(ctx, cfg, db); err != nil {
			slog.Error("failed to warm slider cache", "error", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: glidecms <migrate|seed|warm>\n", command)
		os.Exit(2)
	}

	slog.Info("done", "command", command)
}

// warm renders and caches the active slider payload for the global config
// and every tenant that has one. Tenants without an active slider are
// skipped; any other failure aborts the run.
func warm(ctx context.Context, cfg *config.Config, db *sql.DB) error {
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return err
	}
	defer valkeyClient.Close()

	st := store.NewSliderStore(db)
	svc := slider.NewService(st, cache.NewSliderCache(valkeyClient, cache.DefaultSliderTTL))

	tenants, err := st.ListTenants()
	if err != nil {
		return err
	}

	warmed := 0
	ok, err := warmOne(ctx, svc, nil)
	if err != nil {
		return err
	}
	if ok {
		warmed++
	}
	for i := range tenants {
		ok, err := warmOne(ctx, svc, &tenants[i])
		if err != nil {
			return err
		}
		if ok {
			warmed++
		}
	}
	slog.Info("slider cache warmed", "tenants", len(tenants), "warmed", warmed)
	return nil
}

// warmOne primes one tenant's payload. A tenant without an active slider
// is not a failure; anything else is.
func warmOne(ctx context.Context, svc *slider.Service, tenantID *uuid.UUID) (bool, error) {
	if _, err := svc.ActiveView(ctx, tenantID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			slog.Debug("no active slider to warm", "tenant", cache.TenantKey(tenantID))
			return false, nil
		}
		return false, fmt.Errorf("warm tenant %s: %w", cache.TenantKey(tenantID), err)
	}
	return true, nil
}
