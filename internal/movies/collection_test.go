package movies

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/movielist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestCollection() *Collection {
	return NewCollection(language.Und, nil)
}

func names(entries []domain.MovieEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestAdd_DuplicateOverwrites(t *testing.T) {
	c := newTestCollection()
	c.Add("Alien", 8)
	c.Add("Brazil", 9)
	c.Add("Alien", 7)

	want := []domain.MovieEntry{
		{Name: "Alien", Rating: 7},
		{Name: "Brazil", Rating: 9},
	}
	if diff := cmp.Diff(want, c.SortedEntries()); diff != "" {
		t.Errorf("SortedEntries() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, c.Len())
}

func TestAdd_StoresUnvalidatedValues(t *testing.T) {
	c := newTestCollection()
	c.Add("", math.NaN())
	c.Add("Negative", -3)

	r, ok := c.Get("")
	require.True(t, ok)
	assert.True(t, math.IsNaN(r))

	r, ok = c.Get("Negative")
	require.True(t, ok)
	assert.Equal(t, -3.0, r)
}

func TestRemove(t *testing.T) {
	c := newTestCollection()
	c.Add("Alien", 8)
	c.Add("Brazil", 9)

	c.Remove("Missing")
	assert.Equal(t, []string{"Alien", "Brazil"}, names(c.SortedEntries()))

	c.Remove("Alien")
	assert.Equal(t, []string{"Brazil"}, names(c.SortedEntries()))
	_, ok := c.Get("Alien")
	assert.False(t, ok)

	c.Remove("Alien")
	assert.Equal(t, 1, c.Len())
}

func TestRemove_NameIsCaseSensitive(t *testing.T) {
	c := newTestCollection()
	c.Add("Alien", 8)

	c.Remove("alien")
	assert.Equal(t, 1, c.Len())
}

func TestSortedEntries_NameToggle(t *testing.T) {
	c := newTestCollection()
	c.Add("Zoo", 5)
	c.Add("Amy", 5)

	assert.Equal(t, domain.SortNameAsc, c.SortMode())
	assert.Equal(t, []string{"Amy", "Zoo"}, names(c.SortedEntries()))

	assert.Equal(t, domain.SortNameDesc, c.Toggle(domain.ColumnName))
	assert.Equal(t, []string{"Zoo", "Amy"}, names(c.SortedEntries()))
}

func TestSortedEntries_NameIsCaseInsensitive(t *testing.T) {
	c := newTestCollection()
	c.Add("banana", 1)
	c.Add("Cherry", 2)
	c.Add("apple", 3)

	assert.Equal(t, []string{"apple", "banana", "Cherry"}, names(c.SortedEntries()))
}

func TestSortedEntries_NameDescIsExactReverse(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"banana", "Apple", "apple", "cherry", "Äpfel", "", "APPLE"} {
		c.Add(n, 1)
	}

	asc := names(c.SortedEntries())
	require.NoError(t, c.SetSortMode(domain.SortNameDesc))
	desc := names(c.SortedEntries())

	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestSortedEntries_LocaleCollation(t *testing.T) {
	c := NewCollection(language.Und, nil)
	c.Add("Zebra", 1)
	c.Add("Äpfel", 1)
	c.Add("banana", 1)
	assert.Equal(t, []string{"Äpfel", "banana", "Zebra"}, names(c.SortedEntries()))

	sv := NewCollection(language.Swedish, nil)
	sv.Add("Zebra", 1)
	sv.Add("Äpfel", 1)
	sv.Add("banana", 1)
	assert.Equal(t, []string{"banana", "Zebra", "Äpfel"}, names(sv.SortedEntries()))
}

func TestSortedEntries_RatingDescKeepsInsertionOrderOnTies(t *testing.T) {
	c := newTestCollection()
	c.Add("A", 3)
	c.Add("B", 9)
	c.Add("C", 9)
	require.NoError(t, c.SetSortMode(domain.SortRatingDesc))

	for range 3 {
		assert.Equal(t, []string{"B", "C", "A"}, names(c.SortedEntries()))
	}
}

func TestSortedEntries_RatingAsc(t *testing.T) {
	c := newTestCollection()
	c.Add("Ten", 10)
	c.Add("Minus", -1)
	c.Add("Half", 0.5)
	c.Add("AlsoTen", 10)
	require.NoError(t, c.SetSortMode(domain.SortRatingAsc))

	assert.Equal(t, []string{"Minus", "Half", "Ten", "AlsoTen"}, names(c.SortedEntries()))
}

func TestSortedEntries_OverwriteKeepsTiePosition(t *testing.T) {
	c := newTestCollection()
	c.Add("First", 5)
	c.Add("Second", 5)
	c.Add("First", 5)
	require.NoError(t, c.SetSortMode(domain.SortRatingAsc))

	assert.Equal(t, []string{"First", "Second"}, names(c.SortedEntries()))
}

func TestSortedEntries_NaNRatings(t *testing.T) {
	c := newTestCollection()
	c.Add("Five", 5)
	c.Add("Unknown", math.NaN())
	c.Add("One", 1)

	require.NoError(t, c.SetSortMode(domain.SortRatingAsc))
	assert.Equal(t, []string{"Unknown", "One", "Five"}, names(c.SortedEntries()))

	require.NoError(t, c.SetSortMode(domain.SortRatingDesc))
	assert.Equal(t, []string{"Five", "One", "Unknown"}, names(c.SortedEntries()))
}

func TestSetSortMode_Invalid(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.SetSortMode(domain.SortRatingAsc))

	err := c.SetSortMode(domain.SortMode(42))
	require.ErrorIs(t, err, domain.ErrInvalidSortMode)
	assert.Equal(t, domain.SortRatingAsc, c.SortMode())

	err = c.SetSortMode(domain.SortMode(-1))
	require.ErrorIs(t, err, domain.ErrInvalidSortMode)
}

func TestToggle_SingleActiveMode(t *testing.T) {
	c := newTestCollection()

	assert.Equal(t, domain.SortNameDesc, c.Toggle(domain.ColumnName))
	assert.Equal(t, domain.SortRatingDesc, c.Toggle(domain.ColumnRating))
	assert.Equal(t, domain.SortRatingAsc, c.Toggle(domain.ColumnRating))
	// name direction from before the rating sort is not remembered
	assert.Equal(t, domain.SortNameAsc, c.Toggle(domain.ColumnName))
}

func TestSorted_IsRestartable(t *testing.T) {
	c := newTestCollection()
	c.Add("B", 2)
	c.Add("A", 1)

	seq := c.Sorted()
	var first, second []string
	for e := range seq {
		first = append(first, e.Name)
	}
	for e := range seq {
		second = append(second, e.Name)
	}
	assert.Equal(t, []string{"A", "B"}, first)
	assert.Equal(t, first, second)

	c.Add("C", 3)
	var third []string
	for e := range seq {
		third = append(third, e.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, third)
}

func TestSorted_StopsEarly(t *testing.T) {
	c := newTestCollection()
	c.Add("A", 1)
	c.Add("B", 2)
	c.Add("C", 3)

	var got []string
	for e := range c.Sorted() {
		got = append(got, e.Name)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestSortedEntries_MatchesModelAfterRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []string{"Alien", "alien", "Brazil", "Casablanca", "Dune", "", "Éclair"}

	c := newTestCollection()
	model := make(map[string]float64)

	for i := range 500 {
		name := pool[rng.Intn(len(pool))]
		if rng.Intn(3) == 0 {
			c.Remove(name)
			delete(model, name)
		} else {
			rating := float64(rng.Intn(5))
			c.Add(name, rating)
			model[name] = rating
		}
		if i%50 == 0 {
			require.NoError(t, c.SetSortMode(domain.SortMode(rng.Intn(4))))
		}

		entries := c.SortedEntries()
		require.Len(t, entries, len(model))
		seen := make(map[string]bool)
		for _, e := range entries {
			require.False(t, seen[e.Name], "duplicate entry %q", e.Name)
			seen[e.Name] = true
			require.Equal(t, model[e.Name], e.Rating)
		}
	}
}

func TestSort_InvalidModeLeavesEntries(t *testing.T) {
	entries := []domain.MovieEntry{{Name: "B"}, {Name: "A"}}
	err := Sort(entries, domain.SortMode(9), NewNameCollator(language.Und))
	require.ErrorIs(t, err, domain.ErrInvalidSortMode)
	assert.Equal(t, []string{"B", "A"}, names(entries))
}
