package movies

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mmcdole/movielist/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewNameCollator returns the case-insensitive collator used for name sorting
func NewNameCollator(locale language.Tag) *collate.Collator {
	return collate.New(locale, collate.IgnoreCase)
}

// Sort orders entries in place for mode using a stable sort.
// Entries that compare equal keep their relative order.
func Sort(entries []domain.MovieEntry, mode domain.SortMode, collator *collate.Collator) error {
	compare, err := comparator(mode, collator)
	if err != nil {
		return err
	}
	slices.SortStableFunc(entries, compare)
	return nil
}

func comparator(mode domain.SortMode, collator *collate.Collator) (func(a, b domain.MovieEntry) int, error) {
	switch mode {
	case domain.SortNameAsc:
		return func(a, b domain.MovieEntry) int {
			return compareNames(collator, a.Name, b.Name)
		}, nil
	case domain.SortNameDesc:
		return func(a, b domain.MovieEntry) int {
			return compareNames(collator, b.Name, a.Name)
		}, nil
	case domain.SortRatingAsc:
		return func(a, b domain.MovieEntry) int {
			return cmp.Compare(a.Rating, b.Rating)
		}, nil
	case domain.SortRatingDesc:
		return func(a, b domain.MovieEntry) int {
			return cmp.Compare(b.Rating, a.Rating)
		}, nil
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSortMode, int(mode))
}

// compareNames collates case-insensitively, then falls back to byte order so
// names that collate equal ("alien", "Alien") still have a total order.
func compareNames(collator *collate.Collator, a, b string) int {
	if r := collator.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
