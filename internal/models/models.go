package models

import "strings"

// Playlist represents a source playlist.
type Playlist struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	TrackCount  int
}

// Track represents a source track. Performers preserves the source ordering
// (primary performer first).
type Track struct {
	SourceID   string
	Title      string
	Performers []string
	Album      string
	DurationMS int
}

// PerformerLine renders the performer list the way it appears in queries and
// progress output: comma-joined, source order.
func (t Track) PerformerLine() string {
	return strings.Join(t.Performers, ", ")
}

// MatchCandidate represents a destination catalog item returned by search.
type MatchCandidate struct {
	VideoID string
	Title   string
	Channel string
}
