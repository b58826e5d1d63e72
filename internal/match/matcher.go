// Package match builds destination search queries and selects the best
// candidate from a search result window.
//
// Ranking is a pluggable, pure strategy behind the [Ranker] interface. The
// default [FirstResult] trusts the remote relevance engine and keeps the
// result order as-is; [Heuristic] layers cheap text signals on top without
// changing the Track → candidate contract the transfer engine depends on.
package match

import (
	"sort"
	"strings"

	"github.com/hollowbeak/playlift/internal/models"
)

// BuildQuery builds the free-text search query for a track: title first,
// then the comma-joined performer list, single space separated. Deterministic
// and pure.
func BuildQuery(title string, performers []string) string {
	line := strings.Join(performers, ", ")
	if line == "" {
		return title
	}
	return title + " " + line
}

// Ranker orders search candidates for a track, best first. Implementations
// must be pure: no I/O, no mutation of the input slice.
type Ranker interface {
	Rank(track models.Track, candidates []models.MatchCandidate) []models.MatchCandidate
}

// SelectBest applies the ranker and returns the top candidate, or nil when
// the window is empty.
func SelectBest(r Ranker, track models.Track, candidates []models.MatchCandidate) *models.MatchCandidate {
	if len(candidates) == 0 {
		return nil
	}
	ranked := r.Rank(track, candidates)
	if len(ranked) == 0 {
		return nil
	}
	best := ranked[0]
	return &best
}

// FirstResult is the identity ranker: the remote search relevance order is
// authoritative and the first candidate wins.
type FirstResult struct{}

func (FirstResult) Rank(_ models.Track, candidates []models.MatchCandidate) []models.MatchCandidate {
	return candidates
}

// Heuristic scores candidates on cheap text signals: exact/partial title
// containment, performer name appearing in the candidate title or channel,
// and an "official audio" style marker. Ties keep the remote order (stable
// sort), so with no signal at all it degrades to FirstResult.
type Heuristic struct{}

func (Heuristic) Rank(track models.Track, candidates []models.MatchCandidate) []models.MatchCandidate {
	ranked := make([]models.MatchCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return score(track, ranked[i]) > score(track, ranked[j])
	})

	return ranked
}

func score(track models.Track, c models.MatchCandidate) int {
	title := strings.ToLower(c.Title)
	channel := strings.ToLower(c.Channel)
	s := 0

	if strings.Contains(title, strings.ToLower(track.Title)) {
		s += 3
	}
	for _, p := range track.Performers {
		p = strings.ToLower(p)
		if strings.Contains(channel, p) {
			s += 2
			break
		}
		if strings.Contains(title, p) {
			s++
			break
		}
	}
	if strings.Contains(title, "official audio") || strings.Contains(channel, " - topic") {
		s++
	}

	return s
}

// ForName resolves a configured ranker name; unknown names fall back to the
// first-result baseline.
func ForName(name string) Ranker {
	if name == "heuristic" {
		return Heuristic{}
	}
	return FirstResult{}
}
