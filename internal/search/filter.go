package search

import "strings"

// IsVisible decides whether a block with the given digest is shown for query.
// An empty query shows everything. Otherwise the lowercased digest must
// contain the lowercased query as a literal substring.
func IsVisible(digest, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(digest), strings.ToLower(query))
}

// Filter returns the items whose digest is visible for query, in their
// original order. Each item is judged on its own.
func Filter[T any](items []T, digest func(T) string, query string) []T {
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if IsVisible(digest(it), query) {
			out = append(out, it)
		}
	}
	return out
}
