package contribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
	"github.com/evergrove/fulfillment-backend/pkg/ctxutil"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// GetContribution returns one contribution owned by the authenticated user.
func (s *Service) GetContribution(ctx context.Context, id uuid.UUID) (*domain.Contribution, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	c, err := s.contributions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get contribution: %w", err)
	}

	return c, nil
}

// ListContributions returns one page of the authenticated user's
// contributions in stable creation order.
func (s *Service) ListContributions(ctx context.Context, limit, offset int) ([]domain.Contribution, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("user_id", "required")
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	page, err := s.contributions.ListPage(ctx, &userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	return page, nil
}
