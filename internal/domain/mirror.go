package domain

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentMirror is a derived projection of one contribution into one life
// area. At most one mirror exists per (user, life area, source type, source id)
// tuple; that uniqueness constraint is what makes mirroring idempotent.
type FulfillmentMirror struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	LifeAreaID  uuid.UUID
	SourceType  SourceType
	SourceID    uuid.UUID
	Title       string
	Description *string
	Priority    int
	Metadata    MirrorMetadata
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MirrorMetadata is the free-form bag copied from the source contribution.
// Field values are carried verbatim; the engine performs no sanitization
// or truncation.
type MirrorMetadata struct {
	Bullets    []string `json:"bullets"`
	Tags       []string `json:"tags"`
	Impact     *string  `json:"impact,omitempty"`
	Commitment *string  `json:"commitment,omitempty"`
	Source     string   `json:"source"`
}

// MirrorSource marks mirrors produced by the contribution pipeline.
const MirrorSource = "contribution_mirror"

// MirrorFilter narrows ListMirrors results. Nil fields are ignored.
type MirrorFilter struct {
	LifeAreaID *uuid.UUID
	SourceType *SourceType
	SourceID   *uuid.UUID
}

// ProjectionResult summarizes one mirroring pass for a contribution.
type ProjectionResult struct {
	MirrorsCreated int
	MirrorsUpdated int
	// SkippedSlugs lists resolved slugs that had no catalog entry at
	// projection time. A skip is not an error; it is recorded here and in
	// the audit payload only.
	SkippedSlugs []string
}

// RetractionResult summarizes a mirror retraction for a deleted contribution.
type RetractionResult struct {
	MirrorsDeleted int
}

// BackfillResult summarizes one backfill run. Processed counts contributions
// visited, not mirrors created.
type BackfillResult struct {
	Processed int
}
