// Command seed-catalog inserts or refreshes the canonical life-area catalog.
// The catalog is otherwise administered externally; this tool exists so a
// fresh environment has the slugs the mirror rule set targets. Idempotent:
// rerunning updates display names and never duplicates slugs.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres"
	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres/lifearea"
	"github.com/evergrove/fulfillment-backend/internal/app"
	"github.com/evergrove/fulfillment-backend/internal/config"
	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// canonicalAreas is the seed catalog, ordered for stable logs.
var canonicalAreas = []struct {
	slug string
	name string
}{
	{domain.SlugWorkPurpose, "Work & Purpose"},
	{domain.SlugCreativityExpression, "Creativity & Expression"},
	{domain.SlugCommunityContribution, "Community & Contribution"},
	{"health-vitality", "Health & Vitality"},
	{"relationships-connection", "Relationships & Connection"},
	{"inner-peace-spirituality", "Inner Peace & Spirituality"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := lifearea.New(pool)

	for _, area := range canonicalAreas {
		if _, err := repo.Upsert(ctx, area.slug, area.name); err != nil {
			logger.Error("seed life area failed",
				slog.String("slug", area.slug),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("catalog seeded", slog.Int("areas", len(canonicalAreas)))
}
