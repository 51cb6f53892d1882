package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/movielist/internal/domain"
)

// Layout constants
const (
	RatingColumnWidth  = 10
	MinNameColumnWidth = 12

	// Horizontal padding the table adds around every cell
	cellPadding = 2

	// Rounded border around the table
	borderSize = 2
)

// tableWidth is the inner width available to table columns
func (m Model) tableWidth() int {
	return max(m.Width-borderSize, 0)
}

// columns builds the table columns; the active sort column carries an arrow
func (m Model) columns() []table.Column {
	nameWidth := max(m.tableWidth()-RatingColumnWidth-2*cellPadding, MinNameColumnWidth)
	return []table.Column{
		{Title: m.columnTitle(domain.ColumnName), Width: nameWidth},
		{Title: m.columnTitle(domain.ColumnRating), Width: RatingColumnWidth},
	}
}

func (m Model) columnTitle(column domain.SortColumn) string {
	mode := m.Movies.SortMode()
	if mode.Column() != column {
		return column.String()
	}
	if mode.Descending() {
		return column.String() + " ↓"
	}
	return column.String() + " ↑"
}

// filterVisible reports whether the filter line takes up a row
func (m Model) filterVisible() bool {
	return m.Filtering || m.FilterQuery != ""
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.Help.Width = m.Width

	chrome := lipgloss.Height(m.renderHeader()) + borderSize + lipgloss.Height(m.renderFooter())
	if m.filterVisible() {
		chrome++
	}

	m.Table.SetWidth(m.tableWidth())
	m.Table.SetHeight(max(m.Height-chrome, 3))
	m.Table.SetColumns(m.columns())
}
