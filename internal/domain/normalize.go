package domain

// NormalizeTags enforces the boundary invariant that a tag set may be empty
// but never nil. Tag values themselves are passed through unchanged: rule
// matching is exact and case-sensitive, and mirror metadata carries the
// original strings verbatim.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
