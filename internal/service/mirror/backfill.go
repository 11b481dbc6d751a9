package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// Backfill re-runs the resolver+upsert pass over existing contributions,
// optionally scoped to one user, creating any missing mirrors. The pass is
// additive only: mirrors outside the currently resolved target set — left by
// an earlier rule version or added by hand — are never pruned. Running it
// twice in a row is a no-op on the second pass.
//
// Processed counts contributions visited, not mirrors created.
func (s *Service) Backfill(ctx context.Context, userID *uuid.UUID) (domain.BackfillResult, error) {
	processed := 0
	created := 0
	offset := 0

	for {
		page, err := s.contributions.ListPage(ctx, userID, s.backfillPageSize, offset)
		if err != nil {
			return domain.BackfillResult{}, fmt.Errorf("list contributions: %w", err)
		}

		for _, c := range page {
			result, targets, err := s.applyTargets(ctx, c)
			if err != nil {
				return domain.BackfillResult{}, fmt.Errorf("backfill contribution %s: %w", c.ID, err)
			}
			processed++
			created += result.MirrorsCreated

			// Audit only passes that changed something, so a repeated
			// backfill leaves no trace of its no-op second run.
			if result.MirrorsCreated > 0 {
				contributionID := c.ID
				s.recordAudit(ctx, domain.AuditRecord{
					UserID:     c.UserID,
					Event:      domain.AuditEventMirrored,
					EntityType: domain.EntityTypeContribution,
					EntityID:   &contributionID,
					Payload: map[string]any{
						"backfill":        true,
						"target_slugs":    targetSlugs(targets),
						"skipped_slugs":   result.SkippedSlugs,
						"mirrors_created": result.MirrorsCreated,
						"mirrors_updated": result.MirrorsUpdated,
						"occurred_at":     time.Now().UTC().Format(time.RFC3339Nano),
					},
				})
			}
		}

		if len(page) < s.backfillPageSize {
			break
		}
		offset += len(page)
	}

	s.log.InfoContext(ctx, "backfill completed",
		slog.Int("processed", processed),
		slog.Int("mirrors_created", created),
	)

	return domain.BackfillResult{Processed: processed}, nil
}
