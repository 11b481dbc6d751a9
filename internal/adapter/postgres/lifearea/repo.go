// Package lifearea implements the read side of the life-area catalog using
// PostgreSQL. The catalog is owned externally: the mirror engine only looks
// areas up by slug and must treat a missing slug as a normal condition.
package lifearea

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/evergrove/fulfillment-backend/internal/adapter/postgres"
	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// Repo provides life-area catalog access backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new life-area repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getBySlugSQL = `
SELECT id, slug, name, created_at
FROM life_areas
WHERE slug = $1`

const listSQL = `
SELECT id, slug, name, created_at
FROM life_areas
ORDER BY slug`

const upsertSQL = `
INSERT INTO life_areas (slug, name)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id, slug, name, created_at`

// GetBySlug returns the catalog entry for a slug.
// Returns domain.ErrNotFound when the slug is absent — callers on the
// mirroring path are expected to treat that as skip-and-continue.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.LifeArea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var area domain.LifeArea
	err := querier.QueryRow(ctx, getBySlugSQL, slug).
		Scan(&area.ID, &area.Slug, &area.Name, &area.CreatedAt)
	if err != nil {
		return nil, mapError(err, "life_area", slug)
	}

	return &area, nil
}

// List returns all catalog entries ordered by slug.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.LifeArea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list life_areas: %w", err)
	}
	defer rows.Close()

	areas := []domain.LifeArea{}
	for rows.Next() {
		var area domain.LifeArea
		if err := rows.Scan(&area.ID, &area.Slug, &area.Name, &area.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan life_area: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list life_areas: %w", err)
	}

	return areas, nil
}

// Upsert inserts a catalog entry or refreshes its display name.
// Used by the seeding tool; idempotent by slug.
func (r *Repo) Upsert(ctx context.Context, slug, name string) (*domain.LifeArea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var area domain.LifeArea
	err := querier.QueryRow(ctx, upsertSQL, slug, name).
		Scan(&area.ID, &area.Slug, &area.Name, &area.CreatedAt)
	if err != nil {
		return nil, mapError(err, "life_area", slug)
	}

	return &area, nil
}

// Delete removes a catalog entry by slug. Not an error if the slug is absent
// (0 rows affected is OK) — mirrors referencing the area are removed by the
// storage layer, and the engine degrades to fewer targets on the next pass.
func (r *Repo) Delete(ctx context.Context, slug string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM life_areas WHERE slug = $1`, slug); err != nil {
		return mapError(err, "life_area", slug)
	}

	return nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, slug string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, slug, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, slug, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, slug, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, slug, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, slug, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, slug, err)
}
