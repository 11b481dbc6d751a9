package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contribution is a user-authored record of a discrete activity.
// The mirror engine never originates contributions; it only reacts to their
// lifecycle (create/update/delete) as driven by the surrounding CRUD layer.
type Contribution struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    ContributionCategory
	Title       string
	Description *string
	Bullets     []string
	Impact      *string
	Commitment  *string
	Tags        []string
	Visibility  Visibility
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTag reports whether the contribution carries the given tag.
// Matching is exact and case-sensitive.
func (c *Contribution) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContributionUpdateParams describes a partial update of a contribution's
// displayed fields. Category is deliberately absent: it is immutable after
// creation as far as the mirror engine is concerned.
type ContributionUpdateParams struct {
	Title       *string
	Description *string
	Bullets     []string
	Impact      *string
	Commitment  *string
	Tags        []string
	Visibility  *Visibility
}
