package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// CanonicalLifeAreas is the catalog seeded into test databases. The first
// three slugs are the ones the mirror rule set targets.
var CanonicalLifeAreas = map[string]string{
	domain.SlugWorkPurpose:           "Work & Purpose",
	domain.SlugCreativityExpression:  "Creativity & Expression",
	domain.SlugCommunityContribution: "Community & Contribution",
	"health-vitality":                "Health & Vitality",
	"relationships-connection":       "Relationships & Connection",
	"inner-peace-spirituality":       "Inner Peace & Spirituality",
}

// SeedLifeAreas inserts the canonical catalog (idempotently) and returns a
// slug -> LifeArea lookup for the whole catalog.
func SeedLifeAreas(t *testing.T, pool *pgxpool.Pool) map[string]domain.LifeArea {
	t.Helper()
	ctx := context.Background()

	for slug, name := range CanonicalLifeAreas {
		_, err := pool.Exec(ctx,
			`INSERT INTO life_areas (slug, name) VALUES ($1, $2)
			 ON CONFLICT (slug) DO NOTHING`,
			slug, name,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedLifeAreas insert %s: %v", slug, err)
		}
	}

	rows, err := pool.Query(ctx, `SELECT id, slug, name, created_at FROM life_areas`)
	if err != nil {
		t.Fatalf("testhelper: SeedLifeAreas select: %v", err)
	}
	defer rows.Close()

	areas := make(map[string]domain.LifeArea)
	for rows.Next() {
		var area domain.LifeArea
		if err := rows.Scan(&area.ID, &area.Slug, &area.Name, &area.CreatedAt); err != nil {
			t.Fatalf("testhelper: SeedLifeAreas scan: %v", err)
		}
		areas[area.Slug] = area
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: SeedLifeAreas rows: %v", err)
	}

	return areas
}

// SeedContribution inserts a contribution row directly, bypassing the service
// layer and the mirroring path. Used to exercise backfill.
func SeedContribution(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category domain.ContributionCategory, tags []string) domain.Contribution {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Contribution{
		ID:         uuid.New(),
		UserID:     userID,
		Category:   category,
		Title:      "Seeded contribution " + suffix,
		Bullets:    []string{},
		Tags:       domain.NormalizeTags(tags),
		Visibility: domain.VisibilityPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contributions (id, user_id, category, title, bullets, tags, visibility, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.UserID, string(c.Category), c.Title, c.Bullets, c.Tags, string(c.Visibility), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContribution insert: %v", err)
	}

	return c
}
