package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// RetractContribution removes every mirror derived from a deleted
// contribution, regardless of life area. This is the only path that removes
// mirror rows outside direct row manipulation.
func (s *Service) RetractContribution(ctx context.Context, userID, contributionID uuid.UUID) (domain.RetractionResult, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if contributionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contribution_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.RetractionResult{}, domain.NewValidationErrors(errs)
	}

	deleted, err := s.mirrors.DeleteBySource(ctx, userID, domain.SourceTypeContribution, contributionID)
	if err != nil {
		return domain.RetractionResult{}, fmt.Errorf("delete mirrors: %w", err)
	}

	s.recordAudit(ctx, domain.AuditRecord{
		UserID:     userID,
		Event:      domain.AuditEventDeleted,
		EntityType: domain.EntityTypeContribution,
		EntityID:   &contributionID,
		Payload: map[string]any{
			"mirrors_deleted": deleted,
			"occurred_at":     time.Now().UTC().Format(time.RFC3339Nano),
		},
	})

	s.log.InfoContext(ctx, "contribution retracted",
		slog.String("user_id", userID.String()),
		slog.String("contribution_id", contributionID.String()),
		slog.Int("deleted", deleted),
	)

	return domain.RetractionResult{MirrorsDeleted: deleted}, nil
}
