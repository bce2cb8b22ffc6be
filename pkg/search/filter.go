// Package search implements the literal-substring matching used by the
// extracted-data views: case-insensitive, with user input always treated
// as text, never as a pattern.
package search

import "strings"

// MatchLiteral reports whether query occurs in s, case-insensitively.
// An empty query matches everything.
func MatchLiteral(s, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// FilterList returns the items containing query. The result is always a
// fresh non-nil slice; the input is never mutated. Filtering is
// idempotent: filtering an already-filtered list with the same query
// returns an equal list.
func FilterList(items []string, query string) []string {
	filtered := []string{}
	for _, item := range items {
		if MatchLiteral(item, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
