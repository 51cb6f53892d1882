package movies

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/mmcdole/movielist/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collection is the in-memory set of movie entries keyed by name.
//
// Only one sort mode is active at a time; ordering is computed on demand
// and never cached across mutations. Not safe for concurrent use: the TUI
// calls it from a single Update loop.
type Collection struct {
	ratings map[string]float64
	order   []string // first-add order, used as the stable tie-break
	mode    domain.SortMode

	collator *collate.Collator
	logger   *slog.Logger
}

// NewCollection creates an empty collection that collates names for locale
func NewCollection(locale language.Tag, logger *slog.Logger) *Collection {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection{
		ratings:  make(map[string]float64),
		mode:     domain.DefaultSortMode,
		collator: NewNameCollator(locale),
		logger:   logger,
	}
}

// Add inserts or overwrites the entry for name (last write wins).
// Overwriting keeps the entry's original tie-break position.
func (c *Collection) Add(name string, rating float64) {
	if _, exists := c.ratings[name]; !exists {
		c.order = append(c.order, name)
	}
	c.ratings[name] = rating
	c.logger.Debug("movie added", "name", name, "rating", rating, "total", len(c.ratings))
}

// Remove deletes the entry for name. Absent names are a no-op.
func (c *Collection) Remove(name string) {
	if _, exists := c.ratings[name]; !exists {
		return
	}
	delete(c.ratings, name)
	if i := slices.Index(c.order, name); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	c.logger.Debug("movie removed", "name", name, "total", len(c.ratings))
}

// Get returns the rating stored for name
func (c *Collection) Get(name string) (float64, bool) {
	r, ok := c.ratings[name]
	return r, ok
}

// Len returns the number of entries
func (c *Collection) Len() int {
	return len(c.ratings)
}

// Names returns entry names in insertion order
func (c *Collection) Names() []string {
	return slices.Clone(c.order)
}

// SortMode returns the active sort mode
func (c *Collection) SortMode() domain.SortMode {
	return c.mode
}

// SetSortMode changes the active sort mode.
// Values outside the four recognized modes are rejected and leave the mode unchanged.
func (c *Collection) SetSortMode(mode domain.SortMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSortMode, int(mode))
	}
	c.mode = mode
	c.logger.Debug("sort mode changed", "mode", mode.Key())
	return nil
}

// Toggle applies a header activation for column and returns the new mode
func (c *Collection) Toggle(column domain.SortColumn) domain.SortMode {
	c.mode = column.Toggle(c.mode)
	c.logger.Debug("sort mode toggled", "column", column.String(), "mode", c.mode.Key())
	return c.mode
}

// SortedEntries returns a fresh snapshot ordered by the active sort mode
func (c *Collection) SortedEntries() []domain.MovieEntry {
	entries := make([]domain.MovieEntry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, domain.MovieEntry{Name: name, Rating: c.ratings[name]})
	}
	// mode is validated by SetSortMode, so Sort cannot fail here
	_ = Sort(entries, c.mode, c.collator)
	return entries
}

// Sorted returns a restartable sequence over the sorted view.
// Each range re-sorts from the collection's current state.
func (c *Collection) Sorted() iter.Seq[domain.MovieEntry] {
	return func(yield func(domain.MovieEntry) bool) {
		for _, e := range c.SortedEntries() {
			if !yield(e) {
				return
			}
		}
	}
}
