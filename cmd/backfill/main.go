// Command backfill repairs mirror state for existing contributions: it
// re-runs the rule resolver and upsert executor over every contribution
// (optionally scoped to one user) and creates any missing mirrors. The pass
// is additive and idempotent, so it is safe to invoke from cron or by hand.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres"
	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres/audit"
	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres/contribution"
	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres/lifearea"
	mirrorrepo "github.com/evergrove/fulfillment-backend/internal/adapter/postgres/mirror"
	"github.com/evergrove/fulfillment-backend/internal/app"
	"github.com/evergrove/fulfillment-backend/internal/config"
	"github.com/evergrove/fulfillment-backend/internal/service/mirror"
)

func main() {
	userFlag := flag.String("user", "", "restrict backfill to one user id (uuid)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	var userID *uuid.UUID
	if *userFlag != "" {
		id, err := uuid.Parse(*userFlag)
		if err != nil {
			logger.Error("invalid -user flag", slog.String("value", *userFlag))
			os.Exit(1)
		}
		userID = &id
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mirror.BackfillTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	contributions := contribution.New(pool)

	engine := mirror.NewService(
		logger,
		lifearea.New(pool),
		mirrorrepo.New(pool),
		contributions,
		audit.New(pool),
		mirror.WithBackfillPageSize(cfg.Mirror.BackfillPageSize),
	)

	total, err := contributions.Count(ctx, userID)
	if err != nil {
		logger.Error("count contributions", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("backfill starting", slog.Int("contributions", total))

	result, err := engine.Backfill(ctx, userID)
	if err != nil {
		logger.Error("backfill failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("backfill finished",
		slog.Int("processed", result.Processed),
	)
}
