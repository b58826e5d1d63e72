package transfer

import (
	"errors"
	"testing"

	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/shared"
)

func testPlaylists() []models.Playlist {
	return []models.Playlist{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
		{ID: "c", Name: "Gamma"},
	}
}

func TestResolve(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		chosen, missing, err := Resolve(testPlaylists(), Selection{Mode: SelectAll})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(chosen) != 3 || len(missing) != 0 {
			t.Fatalf("expected every playlist chosen, got %d chosen %d missing", len(chosen), len(missing))
		}
		if chosen[0].ID != "a" || chosen[2].ID != "c" {
			t.Errorf("expected source order preserved, got %v", chosen)
		}
	})

	t.Run("ByIDs", func(t *testing.T) {
		t.Run("Reports Missing Without Failing", func(t *testing.T) {
			chosen, missing, err := Resolve(testPlaylists(), Selection{
				Mode: SelectByIDs,
				IDs:  []string{"b", "z"},
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(chosen) != 1 || chosen[0].ID != "b" {
				t.Errorf("expected only 'b' chosen, got %v", chosen)
			}
			if len(missing) != 1 || missing[0] != "z" {
				t.Errorf("expected 'z' reported missing, got %v", missing)
			}
		})

		t.Run("Preserves Source Order", func(t *testing.T) {
			chosen, _, err := Resolve(testPlaylists(), Selection{
				Mode: SelectByIDs,
				IDs:  []string{"c", "a"},
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(chosen) != 2 || chosen[0].ID != "a" || chosen[1].ID != "c" {
				t.Errorf("expected source listing order, got %v", chosen)
			}
		})
	})

	t.Run("Interactive", func(t *testing.T) {
		t.Run("No Picker", func(t *testing.T) {
			_, _, err := Resolve(testPlaylists(), Selection{Mode: SelectInteractive})
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Empty Pick", func(t *testing.T) {
			_, _, err := Resolve(testPlaylists(), Selection{
				Mode: SelectInteractive,
				Pick: func([]models.Playlist) ([]models.Playlist, error) { return nil, nil },
			})
			if !errors.Is(err, shared.ErrEmptySelection) {
				t.Fatalf("expected ErrEmptySelection, got %v", err)
			}
		})

		t.Run("Normalizes Pick Order", func(t *testing.T) {
			chosen, _, err := Resolve(testPlaylists(), Selection{
				Mode: SelectInteractive,
				Pick: func(playlists []models.Playlist) ([]models.Playlist, error) {
					return []models.Playlist{playlists[2], playlists[0]}, nil
				},
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(chosen) != 2 || chosen[0].ID != "a" || chosen[1].ID != "c" {
				t.Errorf("expected source listing order, got %v", chosen)
			}
		})

		t.Run("Picker Error Propagates", func(t *testing.T) {
			wantErr := errors.New("terminal gone")
			_, _, err := Resolve(testPlaylists(), Selection{
				Mode: SelectInteractive,
				Pick: func([]models.Playlist) ([]models.Playlist, error) { return nil, wantErr },
			})
			if !errors.Is(err, wantErr) {
				t.Fatalf("expected picker error, got %v", err)
			}
		})
	})
}
