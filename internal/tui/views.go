package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/movielist/internal/tui/styles"
)

// View implements tea.Model
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.AddForm.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.AddForm.View())
	}

	if m.SortModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	sections := []string{m.renderHeader()}
	if m.filterVisible() {
		sections = append(sections, m.renderFilter())
	}
	sections = append(sections,
		styles.TableBorder.Render(m.Table.View()),
		m.renderFooter(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with counts and the active sort
func (m Model) renderHeader() string {
	count := fmt.Sprintf("%d movies", m.Movies.Len())
	if m.FilterQuery != "" {
		count = fmt.Sprintf("%d of %d movies", len(m.Visible), m.Movies.Len())
	}

	return styles.TitleStyle.Render("Movies") + "  " +
		styles.DimStyle.Render(count+" · sorted by "+m.Movies.SortMode().String())
}

// renderFilter renders the filter prompt line
func (m Model) renderFilter() string {
	prompt := styles.FilterPromptStyle.Render("/ ")
	if m.Filtering {
		return prompt + m.FilterInput.View()
	}
	return prompt + styles.AccentStyle.Render(m.FilterQuery) + styles.DimStyle.Render("  (esc to clear)")
}

// renderFooter renders the status line above the key help
func (m Model) renderFooter() string {
	text, style := " ", styles.DimStyle
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		text, style = m.StatusMsg, styles.ErrorStyle
	case m.StatusMsg != "":
		text, style = m.StatusMsg, styles.SuccessStyle
	case m.Movies.Len() == 0:
		text = "No movies yet. Press a to add one."
	case len(m.Visible) == 0:
		text = "No matches"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(styles.Truncate(text, max(m.Width, 1))),
		m.Help.View(m.Keys),
	)
}
