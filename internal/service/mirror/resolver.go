package mirror

import (
	"github.com/evergrove/fulfillment-backend/internal/domain"
)

// Target is one resolved (life-area slug, priority) pair.
type Target struct {
	Slug     string
	Priority int
}

// communityTag is the only tag that affects target selection. Matching is
// exact and case-sensitive; all other tags pass through into mirror metadata
// untouched.
const communityTag = "community"

// baseTargets maps a contribution category to its base life-area slugs.
var baseTargets = map[domain.ContributionCategory][]string{
	domain.CategoryDoing: {
		domain.SlugWorkPurpose,
		domain.SlugCreativityExpression,
		domain.SlugCommunityContribution,
	},
	domain.CategoryBeing: {
		domain.SlugWorkPurpose,
		domain.SlugCreativityExpression,
	},
	domain.CategoryHaving: {
		domain.SlugWorkPurpose,
		domain.SlugCreativityExpression,
	},
	domain.CategoryCreating: {
		domain.SlugWorkPurpose,
		domain.SlugCreativityExpression,
	},
	domain.CategoryTransforming: {
		domain.SlugWorkPurpose,
		domain.SlugCreativityExpression,
	},
}

// slugPriority assigns the fixed priority for a resolved slug.
// Pure function of the slug, independent of category.
func slugPriority(slug string) int {
	if slug == domain.SlugWorkPurpose {
		return 4
	}
	return 3
}

// ResolveTargets computes the life areas a contribution mirrors into.
//
// Referentially transparent: the same (category, tags) pair always yields the
// same target set. The result never exceeds three targets — every category
// resolves to the same two-slug base except Doing, which adds
// community-contribution, and the community tag adds it for the rest.
// An unknown category resolves to no targets.
func ResolveTargets(category domain.ContributionCategory, tags []string) []Target {
	base, ok := baseTargets[category]
	if !ok {
		return []Target{}
	}

	slugs := make([]string, 0, len(base)+1)
	slugs = append(slugs, base...)

	if hasCommunityTag(tags) && !containsSlug(slugs, domain.SlugCommunityContribution) {
		slugs = append(slugs, domain.SlugCommunityContribution)
	}

	targets := make([]Target, len(slugs))
	for i, slug := range slugs {
		targets[i] = Target{Slug: slug, Priority: slugPriority(slug)}
	}

	return targets
}

func hasCommunityTag(tags []string) bool {
	for _, t := range tags {
		if t == communityTag {
			return true
		}
	}
	return false
}

func containsSlug(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}
