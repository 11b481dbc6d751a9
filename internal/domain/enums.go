package domain

// ContributionCategory classifies the kind of activity a contribution records.
type ContributionCategory string

const (
	CategoryDoing        ContributionCategory = "Doing"
	CategoryBeing        ContributionCategory = "Being"
	CategoryHaving       ContributionCategory = "Having"
	CategoryCreating     ContributionCategory = "Creating"
	CategoryTransforming ContributionCategory = "Transforming"
)

func (c ContributionCategory) String() string { return string(c) }

func (c ContributionCategory) IsValid() bool {
	switch c {
	case CategoryDoing, CategoryBeing, CategoryHaving, CategoryCreating, CategoryTransforming:
		return true
	}
	return false
}

// Visibility controls who can see a contribution.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
	VisibilityPublic  Visibility = "public"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic:
		return true
	}
	return false
}

// SourceType identifies the kind of record a fulfillment mirror was derived from.
// The contribution pipeline always writes SourceTypeContribution; the type exists
// so other projection pipelines can share the mirror table.
type SourceType string

const (
	SourceTypeContribution SourceType = "contribution"
)

func (s SourceType) String() string { return string(s) }

func (s SourceType) IsValid() bool {
	return s == SourceTypeContribution
}

// AuditEvent represents the kind of mirroring decision recorded in the audit log.
type AuditEvent string

const (
	AuditEventMirrored AuditEvent = "contribution_mirrored"
	AuditEventUpdated  AuditEvent = "contribution_updated"
	AuditEventDeleted  AuditEvent = "contribution_deleted"
)

func (a AuditEvent) String() string { return string(a) }

func (a AuditEvent) IsValid() bool {
	switch a {
	case AuditEventMirrored, AuditEventUpdated, AuditEventDeleted:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity an audit record refers to.
type EntityType string

const (
	EntityTypeContribution EntityType = "CONTRIBUTION"
	EntityTypeMirror       EntityType = "MIRROR"
	EntityTypeLifeArea     EntityType = "LIFE_AREA"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeContribution, EntityTypeMirror, EntityTypeLifeArea:
		return true
	}
	return false
}
