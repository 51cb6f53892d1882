package components

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(f AddForm, text string) AddForm {
	for _, r := range text {
		f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestAddForm_HiddenIgnoresInput(t *testing.T) {
	f := NewAddForm()
	f, _, entry := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, entry)
	assert.Empty(t, f.View())
}

func TestAddForm_Submit(t *testing.T) {
	f := NewAddForm()
	f.Show()

	f = typeInto(f, "Alien")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typeInto(f, " 8.5 ")
	f, _, entry := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, entry)
	assert.Equal(t, "Alien", entry.Name)
	assert.Equal(t, 8.5, entry.Rating)
	assert.False(t, f.IsVisible())
}

func TestAddForm_SubmitFromNameField(t *testing.T) {
	f := NewAddForm()
	f.Show()

	f = typeInto(f, "Brazil")
	_, _, entry := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, entry)
	assert.Equal(t, "Brazil", entry.Name)
	assert.Equal(t, 0.0, entry.Rating)
}

func TestAddForm_FieldCycling(t *testing.T) {
	f := NewAddForm()
	f.Show()

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	f = typeInto(f, "x")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typeInto(f, "Dune")
	_, _, entry := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, entry)
	assert.Equal(t, "Dune", entry.Name)
	assert.True(t, math.IsNaN(entry.Rating))
}

func TestAddForm_ShowResets(t *testing.T) {
	f := NewAddForm()
	f.Show()
	f = typeInto(f, "Alien")
	f.SetHints([]string{"Aliens"})
	assert.Contains(t, f.View(), "Similar: Aliens")

	f.Hide()
	f.Show()
	assert.Empty(t, f.Name())
	assert.NotContains(t, f.View(), "Similar")
}
