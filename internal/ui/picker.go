// Package ui implements the interactive playlist picker used by the
// transfer command's interactive selection mode.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/shared"
)

var (
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// pickerItem wraps [models.Playlist] to implement [list.Item], carrying its
// toggle state.
type pickerItem struct {
	playlist models.Playlist
	checked  bool
}

func (i pickerItem) FilterValue() string { return i.playlist.Name }

func (i pickerItem) Title() string {
	if i.checked {
		return checkedStyle.Render("[x] ") + i.playlist.Name
	}
	return "[ ] " + i.playlist.Name
}

func (i pickerItem) Description() string {
	desc := fmt.Sprintf("%d tracks", i.playlist.TrackCount)
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

type pickerKeys struct {
	toggle  key.Binding
	confirm key.Binding
	quit    key.Binding
}

func newPickerKeys() pickerKeys {
	return pickerKeys{
		toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "transfer selected"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// pickerModel is the bubbletea model for multi-selecting playlists.
type pickerModel struct {
	list      list.Model
	keys      pickerKeys
	confirmed bool
	cancelled bool
}

func newPickerModel(playlists []models.Playlist) *pickerModel {
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = pickerItem{playlist: pl}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select playlists to transfer"
	l.SetShowStatusBar(false)

	return &pickerModel{list: l, keys: newPickerKeys()}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Filtering owns the keyboard while active.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.toggle):
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				item.checked = !item.checked
				return m, m.list.SetItem(m.list.Index(), item)
			}
		case key.Matches(msg, m.keys.confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.quit):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	return m.list.View() + "\n" + hintStyle.Render("space: toggle • enter: transfer selected • q: cancel")
}

// picked returns the checked playlists in listing order.
func (m *pickerModel) picked() []models.Playlist {
	var out []models.Playlist
	for _, item := range m.list.Items() {
		if pi, ok := item.(pickerItem); ok && pi.checked {
			out = append(out, pi.playlist)
		}
	}
	return out
}

// Pick runs the interactive picker and returns the chosen playlists. It
// satisfies [transfer.PickFunc]. Cancelling or confirming with nothing
// checked is a user input error.
func Pick(playlists []models.Playlist) ([]models.Playlist, error) {
	model := newPickerModel(playlists)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(*pickerModel)
	if !ok || m.cancelled {
		return nil, shared.ErrEmptySelection
	}

	picked := m.picked()
	if len(picked) == 0 {
		return nil, shared.ErrEmptySelection
	}

	return picked, nil
}
