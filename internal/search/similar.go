package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// minSubsequenceLen is the shortest name that may match by subsequence.
// Shorter names only match by edit distance.
const minSubsequenceLen = 3

// Similar returns up to limit existing names that look like name:
// same name in another case, a small typo away, or containing it as a
// subsequence. The exact name is excluded since adding it overwrites.
// Results are ordered closest first.
func Similar(name string, names []string, limit int) []string {
	name = strings.TrimSpace(name)
	if name == "" || limit <= 0 {
		return nil
	}

	type ranked struct {
		name     string
		distance int
	}

	lowerName := strings.ToLower(name)
	maxEdits := 2
	if utf8.RuneCountInString(name) <= 4 {
		maxEdits = 1
	}

	var candidates []ranked
	for _, n := range names {
		if n == name {
			continue
		}

		best := -1
		if d := fuzzy.LevenshteinDistance(lowerName, strings.ToLower(n)); d <= maxEdits {
			best = d
		}
		if utf8.RuneCountInString(name) >= minSubsequenceLen {
			if d := fuzzy.RankMatchFold(name, n); d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			candidates = append(candidates, ranked{name: n, distance: best})
		}
	}

	slices.SortStableFunc(candidates, func(a, b ranked) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	results := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		results = append(results, c.name)
	}
	return results
}
