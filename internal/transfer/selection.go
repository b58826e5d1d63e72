package transfer

import (
	"fmt"

	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/shared"
)

// Mode is how the user named the playlists to transfer.
type Mode int

const (
	// SelectAll transfers every playlist in the source listing.
	SelectAll Mode = iota
	// SelectByIDs transfers the playlists whose IDs were given explicitly.
	SelectByIDs
	// SelectInteractive delegates the choice to an interactive picker.
	SelectInteractive
)

// PickFunc is an interactive chooser over the full source listing. The ui
// package supplies the real one; tests inject stubs.
type PickFunc func(playlists []models.Playlist) ([]models.Playlist, error)

// Selection resolves a user's intent into a concrete playlist subset.
type Selection struct {
	Mode Mode
	IDs  []string
	Pick PickFunc
}

// Resolve produces the ordered sub-sequence of playlists to transfer,
// preserving source listing order.
//
// SelectByIDs reports requested IDs with no match via missing without
// failing. SelectInteractive treats an empty pick as a user input error.
func Resolve(playlists []models.Playlist, sel Selection) (chosen []models.Playlist, missing []string, err error) {
	switch sel.Mode {
	case SelectAll:
		return playlists, nil, nil

	case SelectByIDs:
		known := make(map[string]bool, len(playlists))
		requested := make(map[string]bool, len(sel.IDs))
		for _, id := range sel.IDs {
			requested[id] = true
		}
		for _, pl := range playlists {
			known[pl.ID] = true
			if requested[pl.ID] {
				chosen = append(chosen, pl)
			}
		}
		for _, id := range sel.IDs {
			if !known[id] {
				missing = append(missing, id)
			}
		}
		return chosen, missing, nil

	case SelectInteractive:
		if sel.Pick == nil {
			return nil, nil, fmt.Errorf("%w: no interactive picker configured", shared.ErrInvalidInput)
		}
		picked, err := sel.Pick(playlists)
		if err != nil {
			return nil, nil, err
		}
		if len(picked) == 0 {
			return nil, nil, shared.ErrEmptySelection
		}
		// Normalize to source listing order regardless of pick order.
		pickedIDs := make(map[string]bool, len(picked))
		for _, pl := range picked {
			pickedIDs[pl.ID] = true
		}
		for _, pl := range playlists {
			if pickedIDs[pl.ID] {
				chosen = append(chosen, pl)
			}
		}
		return chosen, nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown selection mode %d", shared.ErrInvalidArgument, sel.Mode)
	}
}
