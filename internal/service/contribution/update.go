package contribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evergrove/fulfillment-backend/internal/domain"
	"github.com/evergrove/fulfillment-backend/pkg/ctxutil"
)

// UpdateContribution applies a partial update to a contribution's displayed
// fields and re-projects it. Re-projection is additive: a tag change can grow
// the mirror set, but existing mirrors are never retracted here.
func (s *Service) UpdateContribution(ctx context.Context, input UpdateContributionInput) (*domain.Contribution, domain.ProjectionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ProjectionResult{}, domain.NewValidationError("user_id", "required")
	}

	if err := input.Validate(); err != nil {
		return nil, domain.ProjectionResult{}, err
	}

	var (
		updated    *domain.Contribution
		projection domain.ProjectionResult
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.contributions.Update(txCtx, userID, input.ID, domain.ContributionUpdateParams{
			Title:       input.Title,
			Description: input.Description,
			Bullets:     input.Bullets,
			Impact:      input.Impact,
			Commitment:  input.Commitment,
			Tags:        input.Tags,
			Visibility:  input.Visibility,
		})
		if updateErr != nil {
			return fmt.Errorf("update contribution: %w", updateErr)
		}

		projection, updateErr = s.engine.OnContributionUpdated(txCtx, *updated, input.changedFields())
		if updateErr != nil {
			return fmt.Errorf("re-project contribution: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, domain.ProjectionResult{}, err
	}

	s.log.InfoContext(ctx, "contribution updated",
		slog.String("user_id", userID.String()),
		slog.String("contribution_id", updated.ID.String()),
		slog.Int("mirrors_created", projection.MirrorsCreated),
		slog.Int("mirrors_updated", projection.MirrorsUpdated),
	)

	return updated, projection, nil
}
