package search

import (
	"testing"

	"github.com/mmcdole/movielist/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilter_KeepsInputOrder(t *testing.T) {
	entries := []domain.MovieEntry{
		{Name: "The Thing", Rating: 9},
		{Name: "Alien", Rating: 8},
		{Name: "Aliens", Rating: 8},
		{Name: "Brazil", Rating: 7},
	}

	got := Filter("ALIEN", entries)
	assert.Equal(t, []domain.MovieEntry{
		{Name: "Alien", Rating: 8},
		{Name: "Aliens", Rating: 8},
	}, got)
}

func TestFilter_Subsequence(t *testing.T) {
	entries := []domain.MovieEntry{{Name: "Blade Runner"}, {Name: "Brazil"}}

	got := Filter("bldrn", entries)
	assert.Equal(t, []domain.MovieEntry{{Name: "Blade Runner"}}, got)
}

func TestFilter_EmptyQuery(t *testing.T) {
	entries := []domain.MovieEntry{{Name: "B"}, {Name: "A"}}
	assert.Equal(t, entries, Filter("  ", entries))
}

func TestFilter_NoMatches(t *testing.T) {
	entries := []domain.MovieEntry{{Name: "Alien"}}
	assert.Empty(t, Filter("zzz", entries))
}

func TestSimilar(t *testing.T) {
	names := []string{"Alien", "Aliens", "Brazil", "alien", "Solaris"}

	got := Similar("Alien", names, 5)
	assert.Equal(t, []string{"alien", "Aliens"}, got)
}

func TestSimilar_Typo(t *testing.T) {
	got := Similar("Brasil", []string{"Brazil", "Solaris"}, 3)
	assert.Equal(t, []string{"Brazil"}, got)
}

func TestSimilar_Limit(t *testing.T) {
	got := Similar("Dune", []string{"Dune 2", "Dune 3", "Dunes"}, 2)
	assert.Len(t, got, 2)
}

func TestSimilar_Empty(t *testing.T) {
	assert.Nil(t, Similar("", []string{"Alien"}, 3))
	assert.Nil(t, Similar("Alien", []string{"Alien"}, 0))
	assert.Empty(t, Similar("Alien", []string{"Alien"}, 3))
}
