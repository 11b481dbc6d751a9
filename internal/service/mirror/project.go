package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// ProjectContribution mirrors a newly created contribution into its resolved
// life areas. Safe to invoke repeatedly for the same contribution: every pass
// converges to the same mirror set.
func (s *Service) ProjectContribution(ctx context.Context, c domain.Contribution) (domain.ProjectionResult, error) {
	return s.project(ctx, c, domain.AuditEventMirrored, nil)
}

// OnContributionUpdated re-projects a contribution after its displayed fields
// changed. The target set is recomputed from the current tag set (gaining the
// community tag grows the mirror set) but the pass is additive only: mirrors
// outside the newly resolved set are left untouched. changedFields is recorded
// in the audit payload.
func (s *Service) OnContributionUpdated(ctx context.Context, c domain.Contribution, changedFields []string) (domain.ProjectionResult, error) {
	return s.project(ctx, c, domain.AuditEventUpdated, changedFields)
}

func (s *Service) project(ctx context.Context, c domain.Contribution, event domain.AuditEvent, changedFields []string) (domain.ProjectionResult, error) {
	if err := validateContribution(c); err != nil {
		return domain.ProjectionResult{}, err
	}

	result, targets, err := s.applyTargets(ctx, c)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	payload := map[string]any{
		"target_slugs":    targetSlugs(targets),
		"skipped_slugs":   result.SkippedSlugs,
		"mirrors_created": result.MirrorsCreated,
		"mirrors_updated": result.MirrorsUpdated,
		"occurred_at":     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if changedFields != nil {
		payload["changed_fields"] = changedFields
	}

	contributionID := c.ID
	s.recordAudit(ctx, domain.AuditRecord{
		UserID:     c.UserID,
		Event:      event,
		EntityType: domain.EntityTypeContribution,
		EntityID:   &contributionID,
		Payload:    payload,
	})

	s.log.InfoContext(ctx, "contribution projected",
		slog.String("user_id", c.UserID.String()),
		slog.String("contribution_id", c.ID.String()),
		slog.String("event", event.String()),
		slog.Int("created", result.MirrorsCreated),
		slog.Int("updated", result.MirrorsUpdated),
		slog.Int("skipped", len(result.SkippedSlugs)),
	)

	return result, nil
}

// applyTargets runs one resolver+upsert pass for a contribution. A resolved
// slug missing from the catalog is skipped, not an error: the pass degrades
// to fewer mirrors. The catalog may shrink concurrently, so a slug can
// disappear between resolution and lookup — that is the same skip.
func (s *Service) applyTargets(ctx context.Context, c domain.Contribution) (domain.ProjectionResult, []Target, error) {
	tags := domain.NormalizeTags(c.Tags)
	targets := ResolveTargets(c.Category, tags)

	result := domain.ProjectionResult{SkippedSlugs: []string{}}

	for _, target := range targets {
		area, err := s.areas.GetBySlug(ctx, target.Slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				result.SkippedSlugs = append(result.SkippedSlugs, target.Slug)
				continue
			}
			return domain.ProjectionResult{}, nil, fmt.Errorf("lookup life area %s: %w", target.Slug, err)
		}

		_, inserted, err := s.mirrors.Upsert(ctx, domain.FulfillmentMirror{
			UserID:      c.UserID,
			LifeAreaID:  area.ID,
			SourceType:  domain.SourceTypeContribution,
			SourceID:    c.ID,
			Title:       c.Title,
			Description: c.Description,
			Priority:    target.Priority,
			Metadata: domain.MirrorMetadata{
				Bullets:    normalizeBullets(c.Bullets),
				Tags:       tags,
				Impact:     c.Impact,
				Commitment: c.Commitment,
				Source:     domain.MirrorSource,
			},
		})
		if err != nil {
			return domain.ProjectionResult{}, nil, fmt.Errorf("upsert mirror %s: %w", target.Slug, err)
		}

		if inserted {
			result.MirrorsCreated++
		} else {
			result.MirrorsUpdated++
		}
	}

	return result, targets, nil
}

// validateContribution rejects malformed input before resolution runs.
// No mirrors are touched when validation fails.
func validateContribution(c domain.Contribution) error {
	var errs []domain.FieldError
	if c.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if c.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !c.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of Doing, Being, Having, Creating, Transforming"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func targetSlugs(targets []Target) []string {
	slugs := make([]string, len(targets))
	for i, t := range targets {
		slugs[i] = t.Slug
	}
	return slugs
}

func normalizeBullets(bullets []string) []string {
	if bullets == nil {
		return []string{}
	}
	return bullets
}
