// Package audit implements the audit-log repository using PostgreSQL.
// It provides append-only operations for mirroring-decision records.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/evergrove/fulfillment-backend/internal/adapter/postgres"
	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, user_id, event, entity_type, entity_id, payload, created_at`

const createSQL = `
INSERT INTO audit_log (id, user_id, event, entity_type, entity_id, payload)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + auditColumns

const getByUserSQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const getByEntitySQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
//
// The insert always runs on the pool, never on a transaction from the
// context: audit is best-effort, and joining the caller's transaction would
// let a failed audit INSERT poison it and roll back the mutation it
// describes.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal payload: %w", err)
	}

	row := r.pool.QueryRow(ctx, createSQL,
		record.ID, record.UserID, string(record.Event),
		string(record.EntityType), uuidPtrToPgUUID(record.EntityID), payload,
	)

	result, err := scanAuditRecord(row)
	if err != nil {
		return domain.AuditRecord{}, mapError(err, "audit_record", record.ID)
	}

	return result, nil
}

// Log creates an audit record without returning it (fire-and-forget).
// Satisfies the mirror service's auditLogger interface.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByUser returns audit records for a user, ordered by created_at DESC
// with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by user: %w", err)
	}
	defer rows.Close()

	return scanAuditRecords(rows)
}

// GetByEntity returns the decision history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	return scanAuditRecords(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		record   domain.AuditRecord
		event    string
		entType  string
		entityID pgtype.UUID
		payload  []byte
		created  time.Time
	)

	err := row.Scan(&record.ID, &record.UserID, &event, &entType, &entityID, &payload, &created)
	if err != nil {
		return domain.AuditRecord{}, err
	}

	record.Event = domain.AuditEvent(event)
	record.EntityType = domain.EntityType(entType)
	record.CreatedAt = created

	if entityID.Valid {
		id := uuid.UUID(entityID.Bytes)
		record.EntityID = &id
	}

	if len(payload) > 0 {
		values := make(map[string]any)
		if err := json.Unmarshal(payload, &values); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal payload: %w", record.ID, err)
		}
		record.Payload = values
	}

	return record, nil
}

func scanAuditRecords(rows pgx.Rows) ([]domain.AuditRecord, error) {
	records := []domain.AuditRecord{}
	for rows.Next() {
		record, err := scanAuditRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan audit_records: %w", err)
	}

	return records, nil
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

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
