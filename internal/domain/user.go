package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user. Authentication and organization
// management live in the surrounding application; the engine only needs a
// stable owning-user id for scoping mirrors and audit records.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
