package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/movielist/internal/domain"
	"github.com/mmcdole/movielist/internal/tui/styles"
)

// SortModes returns the modes offered by the sort modal, in display order
func SortModes() []domain.SortMode {
	return []domain.SortMode{
		domain.SortNameAsc,
		domain.SortNameDesc,
		domain.SortRatingAsc,
		domain.SortRatingDesc,
	}
}

// SortModal is a small popup for picking a sort mode directly
type SortModal struct {
	visible bool
	options []domain.SortMode
	cursor  int
	active  domain.SortMode
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: SortModes()}
}

// Show displays the modal with the cursor on the active mode
func (m *SortModal) Show(active domain.SortMode) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a mode.
func (m *SortModal) HandleKey(key string) (handled bool, selection *domain.SortMode) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case "esc", "s", "q":
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible {
		return ""
	}

	const lineWidth = 16

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		prefix := "  "
		if opt == m.active {
			prefix = "✓ "
		}
		text := lipgloss.NewStyle().Width(lineWidth).Render(prefix + opt.String())

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text))
		case opt == m.active:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.LightGray).Render(text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Amber).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
