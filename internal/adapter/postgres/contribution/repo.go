// Package contribution implements the Contribution repository using
// PostgreSQL. It provides CRUD persistence for the surrounding application
// layer plus the paged listing the backfill reconciler iterates over.
package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/evergrove/fulfillment-backend/internal/adapter/postgres"
	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// Repo provides contribution persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contribution repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const contributionColumns = `id, user_id, category, title, description, bullets, impact, commitment, tags, visibility, created_at, updated_at`

const createSQL = `
INSERT INTO contributions (id, user_id, category, title, description, bullets, impact, commitment, tags, visibility)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + contributionColumns

const getByIDSQL = `
SELECT ` + contributionColumns + `
FROM contributions
WHERE id = $1 AND user_id = $2`

const updateSQL = `
UPDATE contributions
SET title = $3, description = $4, bullets = $5, impact = $6, commitment = $7, tags = $8, visibility = $9, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + contributionColumns

const deleteSQL = `DELETE FROM contributions WHERE id = $1 AND user_id = $2`

// Create inserts a new contribution and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c domain.Contribution) (*domain.Contribution, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	row := querier.QueryRow(ctx, createSQL,
		c.ID, c.UserID, string(c.Category), c.Title, ptrToPgText(c.Description),
		c.Bullets, ptrToPgText(c.Impact), ptrToPgText(c.Commitment),
		domain.NormalizeTags(c.Tags), string(c.Visibility),
	)

	created, err := scanContribution(row)
	if err != nil {
		return nil, mapError(err, "contribution", c.ID)
	}

	return created, nil
}

// GetByID returns a contribution by primary key scoped to its owner.
// Returns domain.ErrNotFound if absent or owned by another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Contribution, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContribution(querier.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, mapError(err, "contribution", id)
	}

	return c, nil
}

// Update applies partial updates to a contribution's displayed fields and
// returns the updated record. Category is never written: it is immutable
// after creation.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.ContributionUpdateParams) (*domain.Contribution, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanContribution(querier.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, mapError(err, "contribution", id)
	}

	title := current.Title
	if params.Title != nil {
		title = *params.Title
	}
	description := current.Description
	if params.Description != nil {
		description = params.Description
	}
	bullets := current.Bullets
	if params.Bullets != nil {
		bullets = params.Bullets
	}
	impact := current.Impact
	if params.Impact != nil {
		impact = params.Impact
	}
	commitment := current.Commitment
	if params.Commitment != nil {
		commitment = params.Commitment
	}
	tags := current.Tags
	if params.Tags != nil {
		tags = params.Tags
	}
	visibility := current.Visibility
	if params.Visibility != nil {
		visibility = *params.Visibility
	}

	updated, err := scanContribution(querier.QueryRow(ctx, updateSQL,
		id, userID, title, ptrToPgText(description), bullets,
		ptrToPgText(impact), ptrToPgText(commitment),
		domain.NormalizeTags(tags), string(visibility),
	))
	if err != nil {
		return nil, mapError(err, "contribution", id)
	}

	return updated, nil
}

// Delete removes a contribution.
// Returns domain.ErrNotFound if absent or owned by another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return mapError(err, "contribution", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contribution %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListPage returns one page of contributions in stable (created_at, id) order,
// optionally scoped to a single user. The backfill reconciler walks pages
// until it receives fewer rows than the limit.
func (r *Repo) ListPage(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]domain.Contribution, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "user_id", "category", "title", "description", "bullets",
			"impact", "commitment", "tags", "visibility", "created_at", "updated_at").
		From("contributions").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	result := []domain.Contribution{}
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	return result, nil
}

// Count returns the number of contributions, optionally scoped to one user.
func (r *Repo) Count(ctx context.Context, userID *uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select("count(*)").From("contributions")
	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contributions: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var (
		c           domain.Contribution
		category    string
		description pgtype.Text
		impact      pgtype.Text
		commitment  pgtype.Text
		visibility  string
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := row.Scan(&c.ID, &c.UserID, &category, &c.Title, &description,
		&c.Bullets, &impact, &commitment, &c.Tags, &visibility, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	c.Category = domain.ContributionCategory(category)
	c.Description = pgTextToPtr(description)
	c.Impact = pgTextToPtr(impact)
	c.Commitment = pgTextToPtr(commitment)
	c.Visibility = domain.Visibility(visibility)
	c.Tags = domain.NormalizeTags(c.Tags)
	if c.Bullets == nil {
		c.Bullets = []string{}
	}
	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt

	return &c, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// pgTextToPtr converts a pgtype.Text to *string (NULL -> nil).
func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
