package services

import (
	"context"

	"github.com/hollowbeak/playlift/internal/models"
)

// SourceCatalog lists a user's playlists and their tracks on the source service.
type SourceCatalog interface {
	// ListPlaylists fetches all of the authenticated user's playlists,
	// draining pagination. Returns the complete listing in server order or
	// an error; never a partial result.
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)

	// ListPlaylistTracks fetches all tracks of a playlist in source order,
	// draining pagination and dropping entries whose underlying track is
	// null or unavailable.
	ListPlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error)

	// Name returns the service name (e.g. "Spotify")
	Name() string
}

// DestinationCatalog searches the destination service and writes playlists to it.
type DestinationCatalog interface {
	// Search issues one free-text query and returns up to the configured
	// window of candidates in remote relevance order. An empty slice means
	// no match; errors are returned explicitly and it is the caller's
	// policy whether to collapse them into "no match".
	Search(ctx context.Context, query string) ([]models.MatchCandidate, error)

	// CreatePlaylist creates a new private playlist and returns its ID.
	CreatePlaylist(ctx context.Context, title, description string) (string, error)

	// AddItem appends an item to a playlist, idempotently: a duplicate
	// insertion reports ItemAlreadyPresent rather than a failure.
	AddItem(ctx context.Context, playlistID, videoID string) AddResult

	// PlaylistURL returns the user-facing URL for a created playlist.
	PlaylistURL(playlistID string) string

	// Name returns the service name (e.g. "YouTube")
	Name() string
}

// AddStatus classifies the outcome of a single AddItem call.
type AddStatus int

const (
	// ItemAdded means the item was appended.
	ItemAdded AddStatus = iota
	// ItemAlreadyPresent means the destination reported a duplicate; callers
	// treat this as success.
	ItemAlreadyPresent
	// ItemAddFailed covers everything else: quota, rate limits, policy
	// rejects. Per-item failures never abort a transfer.
	ItemAddFailed
)

func (s AddStatus) String() string {
	switch s {
	case ItemAdded:
		return "added"
	case ItemAlreadyPresent:
		return "already_present"
	case ItemAddFailed:
		return "failed"
	default:
		return ""
	}
}

// AddResult is the classified outcome of an AddItem call.
type AddResult struct {
	Status AddStatus
	// Reason carries the remote error reason for failures, e.g.
	// "quotaExceeded" or "playlistItemsNotAccessible". The raw reason is
	// surfaced so the policy-reject heuristic can be confirmed against the
	// destination's actual error taxonomy later.
	Reason string
	Err    error
}
