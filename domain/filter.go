package domain

import "strings"

// Regional is any entity carrying a region tag.
type Regional interface {
	RegionTag() Region
}

// Searchable is any entity exposing the text fields free-text search inspects.
type Searchable interface {
	SearchFields() []string
}

// FilterByRegion returns the order-preserving subsequence of items whose
// region matches the selection. "All" returns the input unchanged.
func FilterByRegion[T Regional](items []T, selection RegionSelection) []T {
	if selection.IsAll() {
		return items
	}
	want := Region(selection)
	var out []T
	for _, item := range items {
		if item.RegionTag() == want {
			out = append(out, item)
		}
	}
	return out
}

// NormalizeQuery trims and lowercases a raw search query.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// MatchQuery returns the order-preserving subsequence of items where any
// search field contains the normalized query as a substring. Matching is
// plain containment, no tokenization or ranking.
func MatchQuery[T Searchable](items []T, query string) []T {
	q := NormalizeQuery(query)
	var out []T
	for _, item := range items {
		for _, field := range item.SearchFields() {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
