package contribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
	"github.com/evergrove/fulfillment-backend/pkg/ctxutil"
)

// DeleteContribution removes a contribution and retracts all of its mirrors
// in the same transaction. Mirrors of other contributions are untouched.
func (s *Service) DeleteContribution(ctx context.Context, id uuid.UUID) (domain.RetractionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.RetractionResult{}, domain.NewValidationError("user_id", "required")
	}
	if id == uuid.Nil {
		return domain.RetractionResult{}, domain.NewValidationError("id", "required")
	}

	var retraction domain.RetractionResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.contributions.Delete(txCtx, userID, id); deleteErr != nil {
			return fmt.Errorf("delete contribution: %w", deleteErr)
		}

		var retractErr error
		retraction, retractErr = s.engine.RetractContribution(txCtx, userID, id)
		if retractErr != nil {
			return fmt.Errorf("retract mirrors: %w", retractErr)
		}

		return nil
	})
	if err != nil {
		return domain.RetractionResult{}, err
	}

	s.log.InfoContext(ctx, "contribution deleted",
		slog.String("user_id", userID.String()),
		slog.String("contribution_id", id.String()),
		slog.Int("mirrors_deleted", retraction.MirrorsDeleted),
	)

	return retraction, nil
}
