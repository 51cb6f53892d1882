package search

import (
	"slices"
	"strings"

	"github.com/mmcdole/movielist/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Filter narrows entries to those whose name fuzzy-matches query.
// Matching is case-insensitive and the result keeps the input order,
// so a sorted view stays sorted.
func Filter(query string, entries []domain.MovieEntry) []domain.MovieEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	lowerNames := make([]string, len(entries))
	for i, e := range entries {
		lowerNames[i] = strings.ToLower(e.Name)
	}

	matches := fuzzy.Find(strings.ToLower(query), lowerNames)

	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	slices.Sort(idx)

	results := make([]domain.MovieEntry, len(idx))
	for i, j := range idx {
		results[i] = entries[j]
	}
	return results
}
