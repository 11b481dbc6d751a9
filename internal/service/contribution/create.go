package contribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evergrove/fulfillment-backend/internal/domain"
	"github.com/evergrove/fulfillment-backend/pkg/ctxutil"
)

// CreateContribution persists a new contribution and projects it into the
// fulfillment index in the same transaction. The projection may produce fewer
// mirrors than the rule set targets when the catalog is incomplete; that is
// observable only through mirror counts, never as an error.
func (s *Service) CreateContribution(ctx context.Context, input CreateContributionInput) (*domain.Contribution, domain.ProjectionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ProjectionResult{}, domain.NewValidationError("user_id", "required")
	}

	if err := input.Validate(); err != nil {
		return nil, domain.ProjectionResult{}, err
	}

	visibility := domain.VisibilityPrivate
	if input.Visibility != nil {
		visibility = *input.Visibility
	}

	var (
		created    *domain.Contribution
		projection domain.ProjectionResult
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.contributions.Create(txCtx, domain.Contribution{
			UserID:      userID,
			Category:    input.Category,
			Title:       input.Title,
			Description: input.Description,
			Bullets:     input.Bullets,
			Impact:      input.Impact,
			Commitment:  input.Commitment,
			Tags:        domain.NormalizeTags(input.Tags),
			Visibility:  visibility,
		})
		if createErr != nil {
			return fmt.Errorf("create contribution: %w", createErr)
		}

		projection, createErr = s.engine.ProjectContribution(txCtx, *created)
		if createErr != nil {
			return fmt.Errorf("project contribution: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return nil, domain.ProjectionResult{}, err
	}

	s.log.InfoContext(ctx, "contribution created",
		slog.String("user_id", userID.String()),
		slog.String("contribution_id", created.ID.String()),
		slog.String("category", created.Category.String()),
		slog.Int("mirrors_created", projection.MirrorsCreated),
	)

	return created, projection, nil
}
