package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/movielist/internal/domain"
	"github.com/mmcdole/movielist/internal/movies"
	"github.com/mmcdole/movielist/internal/search"
	"github.com/mmcdole/movielist/internal/tui/components"
	"github.com/mmcdole/movielist/internal/tui/styles"
)

// Model is the main Bubble Tea model for the application.
// It is the UI layer over a movies.Collection: every key press that
// mutates the collection is followed by a rebuild of the table rows.
type Model struct {
	Ready bool

	Movies *movies.Collection

	// UI Components
	Table       table.Model
	AddForm     components.AddForm
	SortModal   components.SortModal
	FilterInput textinput.Model
	Help        help.Model
	Keys        KeyMap

	// Filter state
	Filtering   bool   // filter input has focus
	FilterQuery string // applied query, kept after the input is accepted

	// Visible holds the entries behind the table rows, in row order
	Visible []domain.MovieEntry

	// Status
	StatusMsg   string
	StatusIsErr bool

	// Dimensions
	Width  int
	Height int

	similarLimit int
	logger       *slog.Logger
}

// NewModel creates the TUI model over collection.
// similarLimit caps the near-duplicate hints shown while adding.
func NewModel(collection *movies.Collection, similarLimit int, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	filter := textinput.New()
	filter.Prompt = ""
	filter.Placeholder = "filter by name"
	filter.CharLimit = 120
	filter.PlaceholderStyle = styles.DimStyle

	m := Model{
		Movies: collection,
		Table: table.New(
			table.WithFocused(true),
			table.WithKeyMap(components.DefaultTableKeyMap()),
			table.WithStyles(styles.TableStyles()),
		),
		AddForm:      components.NewAddForm(),
		SortModal:    components.NewSortModal(),
		FilterInput:  filter,
		Help:         help.New(),
		Keys:         DefaultKeyMap(),
		similarLimit: similarLimit,
		logger:       logger,
	}
	m.refresh("")
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blinks and other input-internal messages
	var cmd tea.Cmd
	switch {
	case m.AddForm.IsVisible():
		m.AddForm, cmd, _ = m.AddForm.Update(msg)
	case m.Filtering:
		m.FilterInput, cmd = m.FilterInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.AddForm.IsVisible() {
		return m.handleAddFormKey(msg)
	}
	if handled, selection := m.SortModal.HandleKey(msg.String()); handled {
		if selection != nil {
			m.applySortMode(*selection)
		}
		return m, nil
	}
	if m.Filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Add):
		m.clearStatus()
		cmd := m.AddForm.Show()
		return m, cmd

	case key.Matches(msg, m.Keys.Remove):
		m.removeSelected()
		return m, nil

	case key.Matches(msg, m.Keys.SortName):
		m.toggleSort(domain.ColumnName)
		return m, nil

	case key.Matches(msg, m.Keys.SortRating):
		m.toggleSort(domain.ColumnRating)
		return m, nil

	case key.Matches(msg, m.Keys.Sort):
		m.SortModal.Show(m.Movies.SortMode())
		return m, nil

	case key.Matches(msg, m.Keys.Filter):
		m.Filtering = true
		m.FilterInput.SetValue(m.FilterQuery)
		m.FilterInput.CursorEnd()
		cmd := m.FilterInput.Focus()
		m.updateLayout()
		return m, cmd

	case key.Matches(msg, m.Keys.Escape):
		if m.FilterQuery != "" {
			m.clearFilter()
		}
		return m, nil

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m Model) handleAddFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, entry := m.AddForm.Update(msg)
	m.AddForm = form

	if entry != nil {
		m.addMovie(*entry)
		return m, cmd
	}

	if m.AddForm.IsVisible() {
		m.AddForm.SetHints(search.Similar(m.AddForm.Name(), m.Movies.Names(), m.similarLimit))
	}
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Escape):
		m.clearFilter()
		return m, nil

	case key.Matches(msg, m.Keys.Accept):
		m.Filtering = false
		m.FilterInput.Blur()
		m.updateLayout()
		return m, nil

	case msg.Type == tea.KeyUp || msg.Type == tea.KeyDown:
		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)

	if query := m.FilterInput.Value(); query != m.FilterQuery {
		m.FilterQuery = query
		m.refresh("")
		// Reset cursor to first match
		m.Table.SetCursor(0)
		m.logger.Debug("filter changed", "query", query, "matches", len(m.Visible))
	}
	return m, cmd
}

// addMovie stores the submitted entry and selects it
func (m *Model) addMovie(entry domain.MovieEntry) {
	_, existed := m.Movies.Get(entry.Name)
	m.Movies.Add(entry.Name, entry.Rating)

	rating := domain.FormatRating(entry.Rating)
	if existed {
		m.setStatus(fmt.Sprintf("Updated %q to %s", entry.Name, rating), false)
	} else {
		m.setStatus(fmt.Sprintf("Added %q (%s)", entry.Name, rating), false)
	}
	m.refresh(entry.Name)
}

// removeSelected removes the movie on the selected row
func (m *Model) removeSelected() {
	name, ok := m.selectedName()
	if !ok {
		m.setStatus("Nothing to remove", true)
		return
	}

	cursor := m.Table.Cursor()
	m.Movies.Remove(name)
	m.setStatus(fmt.Sprintf("Removed %q", name), false)
	m.refresh("")

	if n := len(m.Visible); n > 0 {
		m.Table.SetCursor(min(cursor, n-1))
	}
}

// toggleSort applies a header activation, keeping the selected movie selected
func (m *Model) toggleSort(column domain.SortColumn) {
	name, _ := m.selectedName()
	mode := m.Movies.Toggle(column)
	m.setStatus("Sorted by "+mode.String(), false)
	m.refresh(name)
}

// applySortMode switches directly to mode, keeping the selected movie selected
func (m *Model) applySortMode(mode domain.SortMode) {
	name, _ := m.selectedName()
	if err := m.Movies.SetSortMode(mode); err != nil {
		m.logger.Error("failed to set sort mode", "error", err)
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Sorted by "+mode.String(), false)
	m.refresh(name)
}

func (m *Model) clearFilter() {
	name, _ := m.selectedName()
	m.Filtering = false
	m.FilterQuery = ""
	m.FilterInput.SetValue("")
	m.FilterInput.Blur()
	m.refresh(name)
	m.updateLayout()
}

// refresh rebuilds the table from the collection's sorted view.
// If selectName is visible afterwards, the cursor moves to it.
func (m *Model) refresh(selectName string) {
	m.Visible = search.Filter(m.FilterQuery, m.Movies.SortedEntries())

	rows := make([]table.Row, len(m.Visible))
	for i, e := range m.Visible {
		rows[i] = table.Row{e.Name, domain.FormatRating(e.Rating)}
	}

	m.Table.SetColumns(m.columns())
	m.Table.SetRows(rows)

	if selectName != "" {
		for i, e := range m.Visible {
			if e.Name == selectName {
				m.Table.SetCursor(i)
				return
			}
		}
	}
	if n := len(rows); n > 0 && m.Table.Cursor() >= n {
		m.Table.SetCursor(n - 1)
	}
}

// selectedName returns the name on the selected row
func (m Model) selectedName() (string, bool) {
	i := m.Table.Cursor()
	if i < 0 || i >= len(m.Visible) {
		return "", false
	}
	return m.Visible[i].Name, true
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
}

func (m *Model) clearStatus() {
	m.StatusMsg = ""
	m.StatusIsErr = false
}
