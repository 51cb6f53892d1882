package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/movielist/internal/domain"
	"github.com/mmcdole/movielist/internal/tui/styles"
)

const (
	fieldName = iota
	fieldRating
	fieldCount
)

// AddForm is the modal form for adding a movie
type AddForm struct {
	visible bool
	focus   int
	name    textinput.Model
	rating  textinput.Model
	hints   []string
}

// NewAddForm creates a new add form
func NewAddForm() AddForm {
	name := textinput.New()
	name.Placeholder = "Movie name"
	name.CharLimit = 120
	name.Width = 30
	name.Prompt = ""
	name.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	name.PlaceholderStyle = styles.DimStyle

	rating := textinput.New()
	rating.Placeholder = "0-10"
	rating.CharLimit = 24
	rating.Width = 30
	rating.Prompt = ""
	rating.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	rating.PlaceholderStyle = styles.DimStyle

	return AddForm{
		name:   name,
		rating: rating,
	}
}

// Show displays the form with empty fields and the name focused
func (f *AddForm) Show() tea.Cmd {
	f.visible = true
	f.hints = nil
	f.name.SetValue("")
	f.rating.SetValue("")
	return f.setFocus(fieldName)
}

// Hide dismisses the form
func (f *AddForm) Hide() {
	f.visible = false
	f.name.Blur()
	f.rating.Blur()
}

// IsVisible returns whether the form is shown
func (f AddForm) IsVisible() bool {
	return f.visible
}

// Name returns the name as currently typed
func (f AddForm) Name() string {
	return f.name.Value()
}

// SetHints sets the near-duplicate names shown under the name field
func (f *AddForm) SetHints(hints []string) {
	f.hints = hints
}

func (f *AddForm) setFocus(field int) tea.Cmd {
	f.focus = field
	if field == fieldName {
		f.rating.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.rating.Focus()
}

// Update handles input events, returns (form, cmd, entry).
// entry is non-nil when the user submitted; the form hides itself.
func (f AddForm) Update(msg tea.Msg) (AddForm, tea.Cmd, *domain.MovieEntry) {
	if !f.visible {
		return f, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, AddFormKeys.Submit):
			entry := &domain.MovieEntry{
				Name:   f.name.Value(),
				Rating: domain.CoerceRating(f.rating.Value()),
			}
			f.Hide()
			return f, nil, entry
		case key.Matches(keyMsg, AddFormKeys.Cancel):
			f.Hide()
			return f, nil, nil
		case key.Matches(keyMsg, AddFormKeys.Next):
			cmd := f.setFocus((f.focus + 1) % fieldCount)
			return f, cmd, nil
		case key.Matches(keyMsg, AddFormKeys.Prev):
			cmd := f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, cmd, nil
		}
	}

	var cmd tea.Cmd
	if f.focus == fieldName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.rating, cmd = f.rating.Update(msg)
	}
	return f, cmd, nil
}

// View renders the add form
func (f AddForm) View() string {
	if !f.visible {
		return ""
	}

	label := func(text string, field int) string {
		if f.focus == field {
			return styles.FocusedLabelStyle.Render(text)
		}
		return styles.LabelStyle.Render(text)
	}

	lines := []string{
		styles.ModalTitleStyle.Render("Add movie"),
		lipgloss.JoinHorizontal(lipgloss.Top, label("Name", fieldName), f.name.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, label("Rating", fieldRating), f.rating.View()),
	}

	if len(f.hints) > 0 {
		lines = append(lines, "", styles.WarningStyle.Render("Similar: "+strings.Join(f.hints, ", ")))
	}

	lines = append(lines, "", styles.DimStyle.Render("enter add · tab next · esc cancel"))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
