package domain

import (
	"time"

	"github.com/google/uuid"
)

// Canonical life-area slugs used by the mirror rule set.
const (
	SlugWorkPurpose           = "work-purpose"
	SlugCreativityExpression  = "creativity-expression"
	SlugCommunityContribution = "community-contribution"
)

// LifeArea is a canonical reference entity from the life-area catalog.
// The catalog is seeded and managed externally; the engine only reads it
// and must tolerate a slug disappearing at any time.
type LifeArea struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	CreatedAt time.Time
}
