package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hollowbeak/playlift/internal/models"
)

func testModel() *pickerModel {
	m := newPickerModel([]models.Playlist{
		{ID: "a", Name: "Alpha", TrackCount: 3},
		{ID: "b", Name: "Beta", TrackCount: 5, Description: "gym mix"},
	})
	m.list.SetSize(80, 24)
	return m
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerItem(t *testing.T) {
	item := pickerItem{playlist: models.Playlist{Name: "Alpha", TrackCount: 3}}

	if !strings.Contains(item.Title(), "[ ]") {
		t.Errorf("expected unchecked marker, got %q", item.Title())
	}
	if item.Description() != "3 tracks" {
		t.Errorf("unexpected description %q", item.Description())
	}

	item.checked = true
	if !strings.Contains(item.Title(), "[x]") {
		t.Errorf("expected checked marker, got %q", item.Title())
	}

	item.playlist.Description = "gym mix"
	if !strings.Contains(item.Description(), "gym mix") {
		t.Errorf("expected playlist description included, got %q", item.Description())
	}
}

func TestPickerModel(t *testing.T) {
	t.Run("Toggle And Confirm", func(t *testing.T) {
		m := testModel()

		next, _ := m.Update(keyMsg(' '))
		m = next.(*pickerModel)

		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(*pickerModel)

		if !m.confirmed {
			t.Error("expected enter to confirm")
		}

		picked := m.picked()
		if len(picked) != 1 || picked[0].ID != "a" {
			t.Errorf("expected first playlist picked, got %v", picked)
		}
	})

	t.Run("Toggle Twice Unchecks", func(t *testing.T) {
		m := testModel()

		next, _ := m.Update(keyMsg(' '))
		m = next.(*pickerModel)
		next, _ = m.Update(keyMsg(' '))
		m = next.(*pickerModel)

		if picked := m.picked(); len(picked) != 0 {
			t.Errorf("expected nothing picked after double toggle, got %v", picked)
		}
	})

	t.Run("Quit Cancels", func(t *testing.T) {
		m := testModel()

		next, _ := m.Update(keyMsg('q'))
		m = next.(*pickerModel)

		if !m.cancelled {
			t.Error("expected q to cancel")
		}
	})
}
