package filter

import "strings"

// Transform returns the subsequence of items whose field contains query,
// ignoring case. An empty or blank query returns items unchanged. The input
// slice is never modified.
func Transform[T any](items []T, query string, field func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(field(item)), q) {
			out = append(out, item)
		}
	}
	return out
}
