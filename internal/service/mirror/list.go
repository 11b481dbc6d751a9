package mirror

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// ListMirrors is the query surface for downstream readers: a user's mirrors
// narrowed by the optional filter fields, highest priority first.
func (s *Service) ListMirrors(ctx context.Context, userID uuid.UUID, filter domain.MirrorFilter) ([]domain.FulfillmentMirror, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	mirrors, err := s.mirrors.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list mirrors: %w", err)
	}

	return mirrors, nil
}
