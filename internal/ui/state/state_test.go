package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carbitrage/internal/domain"
)

func TestSelectedVehicle(t *testing.T) {
	s := NewAppState()
	_, ok := s.SelectedVehicle()
	assert.False(t, ok, "no selection before results arrive")

	s.Results = &domain.ResultPage{Vehicles: []domain.Vehicle{
		{ID: "1"}, {ID: "2"},
	}}
	s.SelectedIndex = 1
	v, ok := s.SelectedVehicle()
	assert.True(t, ok)
	assert.Equal(t, "2", v.ID)

	s.SelectedIndex = 5
	_, ok = s.SelectedVehicle()
	assert.False(t, ok)
}

func TestClampSelection(t *testing.T) {
	s := NewAppState()
	s.Results = &domain.ResultPage{Vehicles: []domain.Vehicle{{ID: "1"}, {ID: "2"}}}

	s.SelectedIndex = 10
	s.ClampSelection()
	assert.Equal(t, 1, s.SelectedIndex)

	s.SelectedIndex = -3
	s.ClampSelection()
	assert.Equal(t, 0, s.SelectedIndex)

	// An empty page clamps to zero rather than a negative index
	s.Results = &domain.ResultPage{}
	s.SelectedIndex = 4
	s.ClampSelection()
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestToggleFavorite(t *testing.T) {
	s := NewAppState()

	assert.True(t, s.ToggleFavorite("1"))
	assert.True(t, s.Favorites["1"])
	assert.False(t, s.ToggleFavorite("1"))
	assert.False(t, s.Favorites["1"])
}

func TestFavoriteIDsAreSorted(t *testing.T) {
	s := NewAppState()
	s.ToggleFavorite("5")
	s.ToggleFavorite("1")
	s.ToggleFavorite("3")

	assert.Equal(t, []string{"1", "3", "5"}, s.FavoriteIDs())
}

func TestCloseOverlays(t *testing.T) {
	s := NewAppState()
	s.AutocompleteOpen = true
	s.SuggestionIndex = 2
	s.FilterPanelOpen = true
	s.ShowHelp = true

	s.CloseOverlays()
	assert.False(t, s.AutocompleteOpen)
	assert.Equal(t, -1, s.SuggestionIndex)
	assert.False(t, s.FilterPanelOpen)
	assert.False(t, s.ShowHelp)
}
