// Package contribution implements the CRUD layer around contribution records.
// Every mutation synchronously notifies the mirror projection engine, so the
// fulfillment index tracks the contribution lifecycle without an event bus.
package contribution

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

type contributionRepo interface {
	Create(ctx context.Context, c domain.Contribution) (*domain.Contribution, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Contribution, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.ContributionUpdateParams) (*domain.Contribution, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListPage(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]domain.Contribution, error)
}

// mirrorEngine is the projection engine notified on every lifecycle event.
type mirrorEngine interface {
	ProjectContribution(ctx context.Context, c domain.Contribution) (domain.ProjectionResult, error)
	OnContributionUpdated(ctx context.Context, c domain.Contribution, changedFields []string) (domain.ProjectionResult, error)
	RetractContribution(ctx context.Context, userID, contributionID uuid.UUID) (domain.RetractionResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides contribution management operations.
type Service struct {
	contributions contributionRepo
	engine        mirrorEngine
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new contribution service.
func NewService(
	log *slog.Logger,
	contributions contributionRepo,
	engine mirrorEngine,
	tx txManager,
) *Service {
	return &Service{
		contributions: contributions,
		engine:        engine,
		tx:            tx,
		log:           log.With("service", "contribution"),
	}
}
