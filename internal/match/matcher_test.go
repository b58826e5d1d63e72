package match

import (
	"testing"

	"github.com/hollowbeak/playlift/internal/models"
)

func TestBuildQuery(t *testing.T) {
	t.Run("Title And Performers", func(t *testing.T) {
		got := BuildQuery("Song One", []string{"Artist A", "Artist B"})
		want := "Song One Artist A, Artist B"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Single Performer", func(t *testing.T) {
		got := BuildQuery("Song One", []string{"Artist A"})
		if got != "Song One Artist A" {
			t.Errorf("expected 'Song One Artist A', got %q", got)
		}
	})

	t.Run("No Performers", func(t *testing.T) {
		if got := BuildQuery("Song One", nil); got != "Song One" {
			t.Errorf("expected bare title, got %q", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		performers := []string{"B", "A"}
		first := BuildQuery("T", performers)
		second := BuildQuery("T", performers)
		if first != second {
			t.Errorf("expected identical queries, got %q and %q", first, second)
		}
		if first != "T B, A" {
			t.Errorf("expected performer order preserved, got %q", first)
		}
	})
}

func TestSelectBest(t *testing.T) {
	track := models.Track{Title: "Song One", Performers: []string{"Artist A"}}

	t.Run("Empty Window", func(t *testing.T) {
		if best := SelectBest(FirstResult{}, track, nil); best != nil {
			t.Errorf("expected nil for empty window, got %v", best)
		}
	})

	t.Run("First Result", func(t *testing.T) {
		candidates := []models.MatchCandidate{
			{VideoID: "vid1", Title: "Totally Unrelated"},
			{VideoID: "vid2", Title: "Song One - Artist A"},
		}
		best := SelectBest(FirstResult{}, track, candidates)
		if best == nil || best.VideoID != "vid1" {
			t.Errorf("expected the remote's first result, got %v", best)
		}
	})
}

func TestHeuristic(t *testing.T) {
	track := models.Track{Title: "Song One", Performers: []string{"Artist A"}}

	t.Run("Prefers Title And Channel Match", func(t *testing.T) {
		candidates := []models.MatchCandidate{
			{VideoID: "vid1", Title: "Unrelated Clip", Channel: "Random"},
			{VideoID: "vid2", Title: "Song One", Channel: "Artist A - Topic"},
			{VideoID: "vid3", Title: "Song One (Live)", Channel: "Fan Channel"},
		}

		ranked := Heuristic{}.Rank(track, candidates)
		if ranked[0].VideoID != "vid2" {
			t.Errorf("expected vid2 ranked first, got %s", ranked[0].VideoID)
		}
	})

	t.Run("Keeps Remote Order On Ties", func(t *testing.T) {
		candidates := []models.MatchCandidate{
			{VideoID: "vid1", Title: "Nothing Alike"},
			{VideoID: "vid2", Title: "Still Nothing"},
		}

		ranked := Heuristic{}.Rank(track, candidates)
		if ranked[0].VideoID != "vid1" || ranked[1].VideoID != "vid2" {
			t.Errorf("expected stable order on ties, got %v", ranked)
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		candidates := []models.MatchCandidate{
			{VideoID: "vid1", Title: "Unrelated"},
			{VideoID: "vid2", Title: "Song One", Channel: "Artist A"},
		}

		Heuristic{}.Rank(track, candidates)
		if candidates[0].VideoID != "vid1" {
			t.Errorf("input slice was reordered: %v", candidates)
		}
	})
}

func TestForName(t *testing.T) {
	if _, ok := ForName("heuristic").(Heuristic); !ok {
		t.Error("expected 'heuristic' to resolve to Heuristic")
	}
	if _, ok := ForName("first").(FirstResult); !ok {
		t.Error("expected 'first' to fall back to FirstResult")
	}
	if _, ok := ForName("").(FirstResult); !ok {
		t.Error("expected empty name to fall back to FirstResult")
	}
}
