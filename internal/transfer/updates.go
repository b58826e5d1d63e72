package transfer

import (
	"fmt"

	"github.com/hollowbeak/playlift/internal/models"
)

// ProgressUpdate represents a progress event during a transfer run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	FetchTracks Phase = iota
	CreatePlaylist
	TransferTrack
	Summary
)

func (p Phase) String() string {
	switch p {
	case FetchTracks:
		return "fetch_tracks"
	case CreatePlaylist:
		return "create_playlist"
	case TransferTrack:
		return "transfer_track"
	case Summary:
		return "summary"
	default:
		return ""
	}
}

func fetchingUpdate(pl models.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching tracks: %s", pl.Name),
	}
}

func fetchedUpdate(pl models.Playlist, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d tracks in %s", count, pl.Name),
	}
}

func creatingUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Creating destination playlist: %s", name),
	}
}

func trackUpdate(step, total int, track models.Track, outcome TrackOutcome) ProgressUpdate {
	var marker string
	switch outcome.Kind {
	case OutcomeAdded:
		marker = "✓"
		if outcome.AlreadyPresent {
			marker = "✓ (already present)"
		}
	case OutcomeNotFound:
		marker = "· no match"
	case OutcomeFailed:
		marker = "✗ " + outcome.Reason
	}

	return ProgressUpdate{
		Phase:   TransferTrack,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s %s", step, total, track.PerformerLine(), track.Title, marker),
		Data:    outcome,
	}
}

func summaryUpdate(report *Report) ProgressUpdate {
	return ProgressUpdate{
		Phase: Summary,
		Step:  1,
		Total: 1,
		Message: fmt.Sprintf("%s: %d added, %d not found, %d failed",
			report.PlaylistName, report.Added, report.NotFound, report.Failed),
		Data: report,
	}
}
