// Package mirror implements the FulfillmentMirror repository using
// PostgreSQL. The source-tuple unique constraint on the table plus the
// ON CONFLICT upsert here are the engine's only concurrency control:
// N concurrent upserts against one tuple converge to exactly one row.
package mirror

import (
	"context"
	"encoding/json"
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

// Repo provides fulfillment-mirror persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mirror repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const mirrorColumns = `id, user_id, life_area_id, source_type, source_id, title, description, priority, metadata, created_at, updated_at`

// (xmax = 0) distinguishes a fresh insert from a conflict-update:
// an updated row carries the deleting transaction id of its old version.
const upsertSQL = `
INSERT INTO fulfillment_mirrors (id, user_id, life_area_id, source_type, source_id, title, description, priority, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT ON CONSTRAINT fulfillment_mirrors_source_tuple_key DO UPDATE SET
    title       = EXCLUDED.title,
    description = EXCLUDED.description,
    priority    = EXCLUDED.priority,
    metadata    = EXCLUDED.metadata,
    updated_at  = now()
RETURNING ` + mirrorColumns + `, (xmax = 0) AS inserted`

const insertSQL = `
INSERT INTO fulfillment_mirrors (id, user_id, life_area_id, source_type, source_id, title, description, priority, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + mirrorColumns

const deleteBySourceSQL = `
DELETE FROM fulfillment_mirrors
WHERE user_id = $1 AND source_type = $2 AND source_id = $3`

const getBySourceSQL = `
SELECT ` + mirrorColumns + `
FROM fulfillment_mirrors
WHERE user_id = $1 AND source_type = $2 AND source_id = $3
ORDER BY priority DESC, created_at ASC`

// Upsert inserts a mirror or, when the source tuple already has a row,
// refreshes that row's content fields (last write wins). Row identity is
// preserved on conflict: the returned mirror keeps the original id.
// The second return value reports whether a new row was inserted.
func (r *Repo) Upsert(ctx context.Context, m domain.FulfillmentMirror) (*domain.FulfillmentMirror, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	metadata, err := json.Marshal(m.Metadata)
	if err != nil {
		return nil, false, fmt.Errorf("mirror marshal metadata: %w", err)
	}

	row := querier.QueryRow(ctx, upsertSQL,
		m.ID, m.UserID, m.LifeAreaID, string(m.SourceType), m.SourceID,
		m.Title, ptrToPgText(m.Description), m.Priority, metadata,
	)

	var (
		result   domain.FulfillmentMirror
		inserted bool
	)
	if err := scanMirrorInto(row, &result, &inserted); err != nil {
		return nil, false, mapError(err, "mirror", m.ID)
	}

	return &result, inserted, nil
}

// Create inserts a mirror without conflict handling. A duplicate source tuple
// surfaces as domain.ErrAlreadyExists — this is the rejected-operation path
// for writes that bypass the upsert protocol.
func (r *Repo) Create(ctx context.Context, m domain.FulfillmentMirror) (*domain.FulfillmentMirror, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	metadata, err := json.Marshal(m.Metadata)
	if err != nil {
		return nil, fmt.Errorf("mirror marshal metadata: %w", err)
	}

	row := querier.QueryRow(ctx, insertSQL,
		m.ID, m.UserID, m.LifeAreaID, string(m.SourceType), m.SourceID,
		m.Title, ptrToPgText(m.Description), m.Priority, metadata,
	)

	var result domain.FulfillmentMirror
	if err := scanMirrorInto(row, &result, nil); err != nil {
		return nil, mapError(err, "mirror", m.ID)
	}

	return &result, nil
}

// DeleteBySource removes every mirror derived from one source record,
// regardless of life area. Returns the number of rows deleted.
func (r *Repo) DeleteBySource(ctx context.Context, userID uuid.UUID, sourceType domain.SourceType, sourceID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteBySourceSQL, userID, string(sourceType), sourceID)
	if err != nil {
		return 0, mapError(err, "mirror", sourceID)
	}

	return int(tag.RowsAffected()), nil
}

// GetBySource returns all mirrors derived from one source record, highest
// priority first. Returns an empty slice (not nil) when there are none.
func (r *Repo) GetBySource(ctx context.Context, userID uuid.UUID, sourceType domain.SourceType, sourceID uuid.UUID) ([]domain.FulfillmentMirror, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getBySourceSQL, userID, string(sourceType), sourceID)
	if err != nil {
		return nil, fmt.Errorf("get mirrors by source: %w", err)
	}
	defer rows.Close()

	return scanMirrors(rows)
}

// List returns a user's mirrors narrowed by the optional filter fields,
// highest priority first. This is the query surface for downstream readers.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.MirrorFilter) ([]domain.FulfillmentMirror, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "user_id", "life_area_id", "source_type", "source_id",
			"title", "description", "priority", "metadata", "created_at", "updated_at").
		From("fulfillment_mirrors").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("priority DESC", "updated_at DESC", "id ASC")

	if filter.LifeAreaID != nil {
		builder = builder.Where(sq.Eq{"life_area_id": *filter.LifeAreaID})
	}
	if filter.SourceType != nil {
		builder = builder.Where(sq.Eq{"source_type": string(*filter.SourceType)})
	}
	if filter.SourceID != nil {
		builder = builder.Where(sq.Eq{"source_id": *filter.SourceID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mirrors: %w", err)
	}
	defer rows.Close()

	return scanMirrors(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanMirrorInto scans one mirror row. When inserted is non-nil the query is
// expected to project the trailing (xmax = 0) column.
func scanMirrorInto(row pgx.Row, m *domain.FulfillmentMirror, inserted *bool) error {
	var (
		sourceType  string
		description pgtype.Text
		metadata    []byte
		createdAt   time.Time
		updatedAt   time.Time
	)

	dest := []any{
		&m.ID, &m.UserID, &m.LifeAreaID, &sourceType, &m.SourceID,
		&m.Title, &description, &m.Priority, &metadata, &createdAt, &updatedAt,
	}
	if inserted != nil {
		dest = append(dest, inserted)
	}

	if err := row.Scan(dest...); err != nil {
		return err
	}

	m.SourceType = domain.SourceType(sourceType)
	m.Description = pgTextToPtr(description)
	m.CreatedAt = createdAt
	m.UpdatedAt = updatedAt

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &m.Metadata); err != nil {
			return fmt.Errorf("mirror %s unmarshal metadata: %w", m.ID, err)
		}
	}
	if m.Metadata.Bullets == nil {
		m.Metadata.Bullets = []string{}
	}
	if m.Metadata.Tags == nil {
		m.Metadata.Tags = []string{}
	}

	return nil
}

func scanMirrors(rows pgx.Rows) ([]domain.FulfillmentMirror, error) {
	result := []domain.FulfillmentMirror{}
	for rows.Next() {
		var m domain.FulfillmentMirror
		if err := scanMirrorInto(rows, &m, nil); err != nil {
			return nil, fmt.Errorf("scan mirror: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan mirrors: %w", err)
	}

	return result, nil
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
