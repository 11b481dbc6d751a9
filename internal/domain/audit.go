package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an immutable log entry describing one mirroring decision.
// Records are append-only: the engine never mutates or deletes them.
//
// The payload snapshots the decision (target slugs, counts, skipped slugs)
// so "what was this contribution mirrored to, and when" stays answerable
// after the contribution itself is deleted.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Event      AuditEvent
	EntityType EntityType
	EntityID   *uuid.UUID
	Payload    map[string]any
	CreatedAt  time.Time
}
