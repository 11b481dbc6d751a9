package contribution

import (
	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// CreateContributionInput carries the fields for creating a contribution.
// Category is required and immutable afterwards; title and tags may be empty.
type CreateContributionInput struct {
	Category    domain.ContributionCategory
	Title       string
	Description *string
	Bullets     []string
	Impact      *string
	Commitment  *string
	Tags        []string
	Visibility  *domain.Visibility
}

// Validate checks the input before any storage is touched.
func (in *CreateContributionInput) Validate() error {
	var errs []domain.FieldError
	if in.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !in.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of Doing, Being, Having, Creating, Transforming"})
	}
	if in.Visibility != nil && !in.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be one of private, shared, public"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateContributionInput carries a partial update of displayed fields.
// There is deliberately no Category field: category cannot change after
// creation, so the mirror engine never recomputes targets from it.
type UpdateContributionInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Bullets     []string
	Impact      *string
	Commitment  *string
	Tags        []string
	Visibility  *domain.Visibility
}

// Validate checks the input before any storage is touched.
func (in *UpdateContributionInput) Validate() error {
	var errs []domain.FieldError
	if in.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if in.Visibility != nil && !in.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be one of private, shared, public"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// changedFields lists the displayed fields a partial update touches,
// for the audit payload.
func (in *UpdateContributionInput) changedFields() []string {
	fields := []string{}
	if in.Title != nil {
		fields = append(fields, "title")
	}
	if in.Description != nil {
		fields = append(fields, "description")
	}
	if in.Bullets != nil {
		fields = append(fields, "bullets")
	}
	if in.Impact != nil {
		fields = append(fields, "impact")
	}
	if in.Commitment != nil {
		fields = append(fields, "commitment")
	}
	if in.Tags != nil {
		fields = append(fields, "tags")
	}
	if in.Visibility != nil {
		fields = append(fields, "visibility")
	}
	return fields
}
