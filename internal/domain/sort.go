package domain

import (
	"fmt"
	"strings"
)

// SortMode is the active ordering rule for a collection's sorted view
type SortMode int

const (
	SortNameAsc SortMode = iota
	SortNameDesc
	SortRatingAsc
	SortRatingDesc
)

// DefaultSortMode is the mode a new collection starts with
const DefaultSortMode = SortNameAsc

// String returns the display name for the sort mode
func (m SortMode) String() string {
	switch m {
	case SortNameAsc:
		return "Name ↑"
	case SortNameDesc:
		return "Name ↓"
	case SortRatingAsc:
		return "Rating ↑"
	case SortRatingDesc:
		return "Rating ↓"
	default:
		return "Unknown"
	}
}

// Key returns the config form of the mode (e.g. "name_asc")
func (m SortMode) Key() string {
	switch m {
	case SortNameAsc:
		return "name_asc"
	case SortNameDesc:
		return "name_desc"
	case SortRatingAsc:
		return "rating_asc"
	case SortRatingDesc:
		return "rating_desc"
	default:
		return ""
	}
}

// Valid reports whether m is one of the four recognized modes
func (m SortMode) Valid() bool {
	return m >= SortNameAsc && m <= SortRatingDesc
}

// Column returns the table column the mode sorts by
func (m SortMode) Column() SortColumn {
	if m == SortRatingAsc || m == SortRatingDesc {
		return ColumnRating
	}
	return ColumnName
}

// Descending reports whether the mode orders from high to low
func (m SortMode) Descending() bool {
	return m == SortNameDesc || m == SortRatingDesc
}

// ParseSortMode parses the config form of a sort mode, case-insensitively
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name_asc":
		return SortNameAsc, nil
	case "name_desc":
		return SortNameDesc, nil
	case "rating_asc":
		return SortRatingAsc, nil
	case "rating_desc":
		return SortRatingDesc, nil
	}
	return DefaultSortMode, fmt.Errorf("%w: %q", ErrInvalidSortMode, s)
}

// SortColumn identifies a sortable table column
type SortColumn int

const (
	ColumnName SortColumn = iota
	ColumnRating
)

// String returns the column header label
func (c SortColumn) String() string {
	switch c {
	case ColumnName:
		return "Name"
	case ColumnRating:
		return "Rating"
	default:
		return "Unknown"
	}
}

// DefaultMode returns the mode selected when switching to this column
func (c SortColumn) DefaultMode() SortMode {
	if c == ColumnRating {
		return SortRatingDesc // highest first
	}
	return SortNameAsc // A-Z
}

// Toggle returns the mode that follows current after the column's header is activated.
// Re-activating the active column flips direction; another column starts at its default.
func (c SortColumn) Toggle(current SortMode) SortMode {
	if !current.Valid() || current.Column() != c {
		return c.DefaultMode()
	}
	switch current {
	case SortNameAsc:
		return SortNameDesc
	case SortNameDesc:
		return SortNameAsc
	case SortRatingAsc:
		return SortRatingDesc
	default:
		return SortRatingAsc
	}
}
