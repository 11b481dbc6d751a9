// Package mirror implements the projection engine that keeps the
// fulfillment-mirror index in sync with contributions: rule resolution,
// the idempotent upsert pass, audit recording, and batch backfill.
package mirror

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

type lifeAreaRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.LifeArea, error)
}

type mirrorRepo interface {
	Upsert(ctx context.Context, m domain.FulfillmentMirror) (*domain.FulfillmentMirror, bool, error)
	DeleteBySource(ctx context.Context, userID uuid.UUID, sourceType domain.SourceType, sourceID uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MirrorFilter) ([]domain.FulfillmentMirror, error)
}

type contributionRepo interface {
	ListPage(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]domain.Contribution, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

const defaultBackfillPageSize = 100

// Service is the mirror projection engine. It is invoked synchronously from
// the surrounding request path (ProjectContribution / OnContributionUpdated /
// RetractContribution) and on demand for batch repair (Backfill). It holds no
// locks of its own; per-tuple atomicity comes from the storage layer's
// source-tuple constraint.
type Service struct {
	areas            lifeAreaRepo
	mirrors          mirrorRepo
	contributions    contributionRepo
	audit            auditLogger
	log              *slog.Logger
	backfillPageSize int
}

// Option customizes a Service.
type Option func(*Service)

// WithBackfillPageSize overrides the number of contributions fetched per
// backfill page.
func WithBackfillPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.backfillPageSize = n
		}
	}
}

// NewService creates the mirror projection engine.
func NewService(
	log *slog.Logger,
	areas lifeAreaRepo,
	mirrors mirrorRepo,
	contributions contributionRepo,
	audit auditLogger,
	opts ...Option,
) *Service {
	s := &Service{
		areas:            areas,
		mirrors:          mirrors,
		contributions:    contributions,
		audit:            audit,
		log:              log.With("service", "mirror"),
		backfillPageSize: defaultBackfillPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// recordAudit writes one audit record in its own error boundary. Audit is
// best-effort: a failed write is logged at warn level and never propagated,
// so it cannot unwind the mirror mutation it describes.
func (s *Service) recordAudit(ctx context.Context, record domain.AuditRecord) {
	if err := s.audit.Log(ctx, record); err != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("event", record.Event.String()),
			slog.String("user_id", record.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}
